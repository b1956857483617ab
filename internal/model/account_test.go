package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeedRecordHeaderPostable(t *testing.T) {
	tests := []struct {
		level        int
		wantHeader   bool
		wantPostable bool
	}{
		{1, true, false},
		{2, true, false},
		{3, true, false},
		{4, false, true},
	}
	for _, tt := range tests {
		rec := SeedRecord{Code: "110101", Level: tt.level, Name: "Petty cash HO"}
		assert.Equal(t, tt.wantHeader, rec.IsHeader(), "IsHeader(level %d)", tt.level)
		assert.Equal(t, tt.wantPostable, rec.IsPostable(), "IsPostable(level %d)", tt.level)
	}
}

func TestParseAccountType(t *testing.T) {
	tests := []struct {
		in     string
		want   AccountType
		wantOK bool
	}{
		{"ASSET", AccountTypeAsset, true},
		{"revenue", AccountTypeRevenue, true},
		{" Expense ", AccountTypeExpense, true},
		{"MEMO", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, ok := ParseAccountType(tt.in)
		assert.Equal(t, tt.want, got, "input %q", tt.in)
		assert.Equal(t, tt.wantOK, ok, "input %q", tt.in)
	}
}
