package seed

import (
	"fmt"
	"strings"
)

// Table is the target table of the seed script.
const Table = "chart_of_accounts"

// insertColumns is the column list of every INSERT, in VALUES order.
const insertColumns = "company_id, account_code, account_name, account_type, parent_account_id, level, is_header, is_postable, normal_balance, created_by"

// QuoteLiteral renders s as a SQL string literal, doubling single quotes.
// All seed text is trusted static data; nothing else is escaped.
func QuoteLiteral(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

// ParentRef returns the parent_account_id expression: a correlated lookup by
// business code within the company, or NULL for roots.
func ParentRef(parentCode string, hasParent bool, companyID string) string {
	if !hasParent {
		return "NULL"
	}
	return fmt.Sprintf("(SELECT id FROM %s WHERE account_code = %s AND company_id = %s)",
		Table, QuoteLiteral(parentCode), QuoteLiteral(companyID))
}

// commentText makes s safe to place after "--" by folding line breaks into
// spaces, so the comment cannot end early.
func commentText(s string) string {
	return strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ").Replace(s)
}
