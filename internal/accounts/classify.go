package accounts

import (
	"errors"
	"fmt"
	"strings"

	"github.com/cleared-dev/coaseed/internal/model"
)

// ErrUnknownLeadingDigit is returned when a code does not start with 1..7.
var ErrUnknownLeadingDigit = errors.New("unrecognized account code leading digit")

// 6 (operating expenses) and 7 (non-operating) both fold into EXPENSE.
var typeByDigit = map[byte]model.AccountType{
	'1': model.AccountTypeAsset,
	'2': model.AccountTypeLiability,
	'3': model.AccountTypeEquity,
	'4': model.AccountTypeRevenue,
	'5': model.AccountTypeExpense,
	'6': model.AccountTypeExpense,
	'7': model.AccountTypeExpense,
}

var balanceByDigit = map[byte]model.NormalBalance{
	'1': model.NormalBalanceDebit,
	'2': model.NormalBalanceCredit,
	'3': model.NormalBalanceCredit,
	'4': model.NormalBalanceCredit,
	'5': model.NormalBalanceDebit,
	'6': model.NormalBalanceDebit,
	'7': model.NormalBalanceDebit,
}

// ClassifyType derives the account type from the first character of code.
func ClassifyType(code string) (model.AccountType, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnknownLeadingDigit)
	}
	t, ok := typeByDigit[code[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q in code %s", ErrUnknownLeadingDigit, code[0], code)
	}
	return t, nil
}

// ClassifyBalance derives the normal balance from the first character of code.
func ClassifyBalance(code string) (model.NormalBalance, error) {
	if code == "" {
		return "", fmt.Errorf("%w: empty code", ErrUnknownLeadingDigit)
	}
	b, ok := balanceByDigit[code[0]]
	if !ok {
		return "", fmt.Errorf("%w: %q in code %s", ErrUnknownLeadingDigit, code[0], code)
	}
	return b, nil
}

// ParentCode derives the parent's code from the prefix convention:
// level 2 keeps 1 digit, level 3 keeps 2, level 4 keeps 4, zero-padded to 6.
// Level 1 and out-of-range levels have no parent.
func ParentCode(code string, level int) (string, bool) {
	var keep int
	switch level {
	case 2:
		keep = 1
	case 3:
		keep = 2
	case 4:
		keep = 4
	default:
		return "", false
	}
	// Codes shorter than the kept prefix get no parent rather than a padded
	// guess; no six-digit row could match either way.
	if len(code) < keep {
		return "", false
	}
	return code[:keep] + strings.Repeat("0", codeWidth-keep), true
}

// codeWidth is the number of digits in an account code.
const codeWidth = 6
