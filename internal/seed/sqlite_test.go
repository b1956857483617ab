package seed

import (
	"bufio"
	"bytes"
	"context"
	"database/sql"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/cleared-dev/coaseed/internal/accounts"
)

// chartSchema mirrors the columns the seed writes; the real table lives in
// the accounting service's migrations.
const chartSchema = `CREATE TABLE chart_of_accounts (
	id                INTEGER PRIMARY KEY AUTOINCREMENT,
	company_id        TEXT NOT NULL,
	account_code      TEXT NOT NULL,
	account_name      TEXT NOT NULL,
	account_type      TEXT NOT NULL CHECK (account_type IN ('ASSET','LIABILITY','EQUITY','REVENUE','EXPENSE')),
	parent_account_id INTEGER REFERENCES chart_of_accounts(id),
	level             INTEGER NOT NULL,
	is_header         BOOLEAN NOT NULL,
	is_postable       BOOLEAN NOT NULL,
	normal_balance    TEXT NOT NULL CHECK (normal_balance IN ('DEBIT','CREDIT')),
	created_by        TEXT NOT NULL,
	UNIQUE (company_id, account_code)
)`

func openChartDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(chartSchema)
	require.NoError(t, err)
	return db
}

// execScript drops comment lines and runs each ;-terminated statement.
func execScript(t *testing.T, db *sql.DB, script string) {
	t.Helper()
	scanner := bufio.NewScanner(strings.NewReader(script))
	var b strings.Builder
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteByte('\n')
	}
	require.NoError(t, scanner.Err())

	ctx := context.Background()
	for _, stmt := range strings.Split(b.String(), ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		_, err := db.ExecContext(ctx, stmt)
		require.NoError(t, err, "executing %s", stmt)
	}
}

func queryInt(t *testing.T, db *sql.DB, query string, args ...any) int {
	t.Helper()
	var n int
	require.NoError(t, db.QueryRow(query, args...).Scan(&n))
	return n
}

func TestSeedExecutes_AllParentsResolve(t *testing.T) {
	db := openChartDB(t)
	execScript(t, db, render(t, accounts.DefaultChart()))

	assert.Equal(t, 196, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts WHERE company_id = ?`, testCompanyID))
	assert.Equal(t, 7, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts WHERE parent_account_id IS NULL`))
	assert.Zero(t, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts WHERE level > 1 AND parent_account_id IS NULL`))

	// Every child sits exactly one level below its parent.
	assert.Zero(t, queryInt(t, db, `
		SELECT COUNT(*) FROM chart_of_accounts c
		JOIN chart_of_accounts p ON p.id = c.parent_account_id
		WHERE p.level != c.level - 1`))

	var parentCode string
	err := db.QueryRow(`
		SELECT p.account_code FROM chart_of_accounts c
		JOIN chart_of_accounts p ON p.id = c.parent_account_id
		WHERE c.account_code = ?`, "110101").Scan(&parentCode)
	require.NoError(t, err)
	assert.Equal(t, "110100", parentCode)

	assert.Equal(t, 136, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts WHERE is_postable AND NOT is_header`))
}

func TestSeedExecutes_RerunReplacesRows(t *testing.T) {
	db := openChartDB(t)
	script := render(t, accounts.DefaultChart())

	execScript(t, db, script)
	execScript(t, db, script)

	assert.Equal(t, 196, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts`))
}

func TestSeedExecutes_MissingParentBecomesNull(t *testing.T) {
	recs, err := accounts.LoadFile("../../testdata/small-chart.csv")
	require.NoError(t, err)

	db := openChartDB(t)
	execScript(t, db, render(t, recs))

	assert.Equal(t, 10, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts`))

	var parent sql.NullInt64
	err = db.QueryRow(`SELECT parent_account_id FROM chart_of_accounts WHERE account_code = ?`, "610000").Scan(&parent)
	require.NoError(t, err)
	assert.False(t, parent.Valid, "610000 has no 600000 row, so its parent should be NULL")
}

func TestSeedExecutes_EscapedNameRoundTrips(t *testing.T) {
	db := openChartDB(t)
	recs := accounts.DefaultChart()[:1]
	recs[0].Name = "O'Brien Fees"
	execScript(t, db, render(t, recs))

	var name string
	require.NoError(t, db.QueryRow(`SELECT account_name FROM chart_of_accounts WHERE account_code = '100000'`).Scan(&name))
	assert.Equal(t, "O'Brien Fees", name)
}

func TestSeedExecutes_CompanyNameCannotAddStatements(t *testing.T) {
	params := defaultParams()
	params.CompanyName = "Kedai\nDROP TABLE chart_of_accounts;"
	var buf bytes.Buffer
	_, err := NewGenerator(params, accounts.DefaultChart()).WriteTo(&buf)
	require.NoError(t, err)

	db := openChartDB(t)
	execScript(t, db, buf.String())
	assert.Equal(t, 196, queryInt(t, db, `SELECT COUNT(*) FROM chart_of_accounts`))
}
