package accounts

import (
	"sort"

	"github.com/cleared-dev/coaseed/internal/model"
)

// Service provides in-memory lookup over a chart seed.
type Service struct {
	records []model.SeedRecord
	byCode  map[string]model.SeedRecord
}

// NewService creates a Service from records in file order. On duplicate
// codes the first record wins.
func NewService(records []model.SeedRecord) *Service {
	byCode := make(map[string]model.SeedRecord, len(records))
	for _, r := range records {
		if _, ok := byCode[r.Code]; !ok {
			byCode[r.Code] = r
		}
	}
	return &Service{records: records, byCode: byCode}
}

// All returns all records in file order.
func (s *Service) All() []model.SeedRecord {
	return s.records
}

// Get returns a record by code.
func (s *Service) Get(code string) (model.SeedRecord, bool) {
	r, ok := s.byCode[code]
	return r, ok
}

// Exists reports whether a code exists.
func (s *Service) Exists(code string) bool {
	_, ok := s.byCode[code]
	return ok
}

// Levels returns the distinct levels present, lowest first.
func (s *Service) Levels() []int {
	seen := make(map[int]bool)
	var levels []int
	for _, r := range s.records {
		if !seen[r.Level] {
			seen[r.Level] = true
			levels = append(levels, r.Level)
		}
	}
	sort.Ints(levels)
	return levels
}

// ByLevel returns the records at level, keeping their relative file order.
func (s *Service) ByLevel(level int) []model.SeedRecord {
	var result []model.SeedRecord
	for _, r := range s.records {
		if r.Level == level {
			result = append(result, r)
		}
	}
	return result
}

// ByType returns all records whose code classifies as accountType.
// Records with an unclassifiable code are skipped.
func (s *Service) ByType(accountType model.AccountType) []model.SeedRecord {
	var result []model.SeedRecord
	for _, r := range s.records {
		t, err := ClassifyType(r.Code)
		if err != nil {
			continue
		}
		if t == accountType {
			result = append(result, r)
		}
	}
	return result
}
