package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cleared-dev/coaseed/internal/model"
)

// Header is the CSV header for a chart seed file.
const Header = "account_code,level,account_name"

const (
	numFields = 3
	colCode   = 0
	colLevel  = 1
	colName   = 2
)

// ReadRecords reads a chart seed CSV (header row first).
func ReadRecords(r io.Reader) ([]model.SeedRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading chart CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}
	if err := checkHeader(records[0]); err != nil {
		return nil, fmt.Errorf("row 1: %w", err)
	}

	var recs []model.SeedRecord
	for i, row := range records[1:] {
		rec, err := UnmarshalRecord(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func checkHeader(row []string) error {
	want := strings.Split(Header, ",")
	for i, col := range want {
		if strings.TrimSpace(strings.TrimPrefix(row[i], "\ufeff")) != col {
			return fmt.Errorf("header must be %q, got %q", Header, strings.Join(row, ","))
		}
	}
	return nil
}

// WriteRecords writes a chart seed CSV including the header.
func WriteRecords(w io.Writer, recs []model.SeedRecord) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, rec := range recs {
		if err := cw.Write(MarshalRecord(rec)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// LoadFile reads a chart seed CSV from disk.
func LoadFile(path string) ([]model.SeedRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening chart %s: %w", path, err)
	}
	defer f.Close()

	recs, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("reading chart %s: %w", path, err)
	}
	return recs, nil
}

// MarshalRecord converts a SeedRecord to a CSV row.
func MarshalRecord(rec model.SeedRecord) []string {
	row := make([]string, numFields)
	row[colCode] = rec.Code
	row[colLevel] = strconv.Itoa(rec.Level)
	row[colName] = rec.Name
	return row
}

// UnmarshalRecord converts a CSV row to a SeedRecord. Codes are kept verbatim;
// leading zeros and width are checked by Validate, not here.
func UnmarshalRecord(row []string) (model.SeedRecord, error) {
	if len(row) != numFields {
		return model.SeedRecord{}, fmt.Errorf("expected %d fields, got %d", numFields, len(row))
	}

	level, err := strconv.Atoi(strings.TrimSpace(row[colLevel]))
	if err != nil {
		return model.SeedRecord{}, fmt.Errorf("parsing level %q: %w", row[colLevel], err)
	}

	return model.SeedRecord{
		Code:  strings.TrimSpace(row[colCode]),
		Level: level,
		Name:  row[colName],
	}, nil
}
