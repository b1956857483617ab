package model

import "strings"

// AccountType classifies accounts in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeRevenue   AccountType = "REVENUE"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// ParseAccountType matches s case-insensitively against the known types.
func ParseAccountType(s string) (AccountType, bool) {
	t := AccountType(strings.ToUpper(strings.TrimSpace(s)))
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeRevenue, AccountTypeExpense:
		return t, true
	}
	return "", false
}

// NormalBalance is the side on which increases to an account are recorded.
type NormalBalance string

const (
	NormalBalanceDebit  NormalBalance = "DEBIT"
	NormalBalanceCredit NormalBalance = "CREDIT"
)

// PostableLevel is the depth of leaf accounts; shallower levels are headers.
const PostableLevel = 4

// SeedRecord is one row of the static chart: a 6-digit code, its depth and a name.
type SeedRecord struct {
	Code  string
	Level int // 1..4
	Name  string
}

// IsHeader reports whether the record groups other accounts.
func (r SeedRecord) IsHeader() bool {
	return r.Level < PostableLevel
}

// IsPostable reports whether transactions may be recorded against the record.
func (r SeedRecord) IsPostable() bool {
	return r.Level == PostableLevel
}
