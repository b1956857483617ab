package accounts

import (
	"bytes"
	_ "embed"
	"fmt"

	"github.com/cleared-dev/coaseed/internal/model"
)

//go:embed data/restaurant.csv
var restaurantCSV []byte

// DefaultChart returns the bundled restaurant chart of accounts in file order.
func DefaultChart() []model.SeedRecord {
	recs, err := ReadRecords(bytes.NewReader(restaurantCSV))
	if err != nil {
		panic(fmt.Sprintf("embedded restaurant chart is malformed: %v", err))
	}
	return recs
}
