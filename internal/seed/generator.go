package seed

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/coaseed/internal/accounts"
	"github.com/cleared-dev/coaseed/internal/config"
	"github.com/cleared-dev/coaseed/internal/model"
)

// Params are the constant identifiers embedded into every statement.
type Params struct {
	CompanyID   string
	CompanyName string
	CreatedBy   string
}

// Generator turns a chart seed into a SQL script.
type Generator struct {
	params  Params
	records []model.SeedRecord
}

// NewGenerator creates a Generator over records in file order.
func NewGenerator(params Params, records []model.SeedRecord) *Generator {
	if params.CompanyName == "" {
		params.CompanyName = config.DefaultCompanyName
	}
	return &Generator{params: params, records: records}
}

// Lines renders the whole script. It fails only when a code has an
// unrecognized leading digit; no lines are returned in that case.
func (g *Generator) Lines() ([]string, error) {
	p := g.params
	lines := []string{
		"-- COA Seed for " + commentText(p.CompanyName),
		"-- Generated automatically",
		"-- Company ID: " + commentText(p.CompanyID),
		"-- User ID: " + commentText(p.CreatedBy),
		"",
		fmt.Sprintf("DELETE FROM %s WHERE company_id = %s;", Table, QuoteLiteral(p.CompanyID)),
		"",
	}

	svc := accounts.NewService(g.records)
	for _, level := range svc.Levels() {
		kind := "Detail"
		if level < model.PostableLevel {
			kind = "Header"
		}
		lines = append(lines, fmt.Sprintf("-- Level %d: %s accounts", level, kind))

		for _, rec := range svc.ByLevel(level) {
			stmt, err := g.insert(rec)
			if err != nil {
				return nil, err
			}
			lines = append(lines, stmt...)
			lines = append(lines, "")
		}
	}

	lines = append(lines, fmt.Sprintf("-- Total: %d accounts", len(g.records)))
	return lines, nil
}

// WriteTo renders the script and writes it to w, one line per row. Nothing
// is written when rendering fails.
func (g *Generator) WriteTo(w io.Writer) (int64, error) {
	lines, err := g.Lines()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(w, strings.Join(lines, "\n")+"\n")
	if err != nil {
		return int64(n), fmt.Errorf("writing seed: %w", err)
	}
	return int64(n), nil
}

// insert renders the two-line INSERT statement for one record.
func (g *Generator) insert(rec model.SeedRecord) ([]string, error) {
	accountType, err := accounts.ClassifyType(rec.Code)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", rec.Code, err)
	}
	balance, err := accounts.ClassifyBalance(rec.Code)
	if err != nil {
		return nil, fmt.Errorf("account %s: %w", rec.Code, err)
	}
	parentCode, hasParent := accounts.ParentCode(rec.Code, rec.Level)

	values := []string{
		QuoteLiteral(g.params.CompanyID),
		QuoteLiteral(rec.Code),
		QuoteLiteral(rec.Name),
		QuoteLiteral(string(accountType)),
		ParentRef(parentCode, hasParent, g.params.CompanyID),
		strconv.Itoa(rec.Level),
		strconv.FormatBool(rec.IsHeader()),
		strconv.FormatBool(rec.IsPostable()),
		QuoteLiteral(string(balance)),
		QuoteLiteral(g.params.CreatedBy),
	}

	return []string{
		fmt.Sprintf("INSERT INTO %s (%s)", Table, insertColumns),
		fmt.Sprintf("VALUES (%s);", strings.Join(values, ", ")),
	}, nil
}
