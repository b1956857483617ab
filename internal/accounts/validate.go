package accounts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cleared-dev/coaseed/internal/model"
)

// Check numbers reported in ValidationError.
const (
	CheckCodeFormat = 1
	CheckLevelRange = 2
	CheckLeadDigit  = 3
	CheckDuplicate  = 4
	CheckParent     = 5
	CheckName       = 6
)

// ValidationError describes a single problem with a chart record.
type ValidationError struct {
	Check       int
	Code        string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("check %d [%s]: %s", e.Check, e.Code, e.Description)
}

// Validate statically checks a chart. Generation never calls it; a missing
// parent only becomes a NULL parent_account_id when the seed is executed.
func Validate(recs []model.SeedRecord) []ValidationError {
	var errs []ValidationError

	svc := NewService(recs)
	seen := make(map[string]bool, len(recs))
	for _, r := range recs {
		if seen[r.Code] {
			errs = append(errs, ValidationError{
				Check:       CheckDuplicate,
				Code:        r.Code,
				Description: "duplicate account code",
			})
			continue
		}
		seen[r.Code] = true
	}

	for _, r := range recs {
		// Check 1: six ASCII digits.
		if !isCode(r.Code) {
			errs = append(errs, ValidationError{
				Check:       CheckCodeFormat,
				Code:        r.Code,
				Description: fmt.Sprintf("code must be %d digits", codeWidth),
			})
		}

		// Check 2: level 1..4.
		if r.Level < 1 || r.Level > model.PostableLevel {
			errs = append(errs, ValidationError{
				Check:       CheckLevelRange,
				Code:        r.Code,
				Description: fmt.Sprintf("level %d outside 1..%d", r.Level, model.PostableLevel),
			})
		}

		// Check 3: classifiable leading digit.
		if _, err := ClassifyType(r.Code); errors.Is(err, ErrUnknownLeadingDigit) {
			errs = append(errs, ValidationError{
				Check:       CheckLeadDigit,
				Code:        r.Code,
				Description: err.Error(),
			})
		}

		// Check 5: parent exists one level up.
		if parent, ok := ParentCode(r.Code, r.Level); ok {
			if !svc.Exists(parent) {
				errs = append(errs, ValidationError{
					Check:       CheckParent,
					Code:        r.Code,
					Description: fmt.Sprintf("parent %s not found", parent),
				})
			} else if p, _ := svc.Get(parent); p.Level != r.Level-1 {
				errs = append(errs, ValidationError{
					Check:       CheckParent,
					Code:        r.Code,
					Description: fmt.Sprintf("parent %s is at level %d, want %d", parent, p.Level, r.Level-1),
				})
			}
		}

		// Check 6: name present.
		if strings.TrimSpace(r.Name) == "" {
			errs = append(errs, ValidationError{
				Check:       CheckName,
				Code:        r.Code,
				Description: "account name is empty",
			})
		}
	}

	return errs
}

func isCode(s string) bool {
	if len(s) != codeWidth {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
