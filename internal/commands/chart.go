package commands

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/coaseed/internal/accounts"
	"github.com/cleared-dev/coaseed/internal/model"
)

var chartHeader = []string{
	"account_code", "level", "account_name", "account_type",
	"normal_balance", "parent_code", "is_header", "is_postable",
}

func newChartCommand(flags *globalFlags) *cobra.Command {
	var level int
	var accountType string

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the chart with derived columns as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runChart(cmd.OutOrStdout(), s, level, accountType)
		},
	}

	cmd.Flags().IntVar(&level, "level", 0, "only print accounts at this level (0 = all)")
	cmd.Flags().StringVar(&accountType, "type", "", "only print accounts of this type (ASSET, LIABILITY, EQUITY, REVENUE, EXPENSE)")

	return cmd
}

func runChart(stdout io.Writer, s *settings, level int, typeFilter string) error {
	svc := accounts.NewService(s.records)
	records := svc.All()
	if typeFilter != "" {
		t, ok := model.ParseAccountType(typeFilter)
		if !ok {
			return fmt.Errorf("unknown account type %q", typeFilter)
		}
		records = svc.ByType(t)
	}
	if level != 0 {
		records = accounts.NewService(records).ByLevel(level)
	}

	rows := [][]string{chartHeader}
	for _, rec := range records {
		row, err := chartRow(rec)
		if err != nil {
			return fmt.Errorf("account %s: %w", rec.Code, err)
		}
		rows = append(rows, row)
	}

	w := csv.NewWriter(stdout)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("writing chart: %w", err)
	}
	return nil
}

func chartRow(rec model.SeedRecord) ([]string, error) {
	accountType, err := accounts.ClassifyType(rec.Code)
	if err != nil {
		return nil, err
	}
	balance, err := accounts.ClassifyBalance(rec.Code)
	if err != nil {
		return nil, err
	}
	parent, _ := accounts.ParentCode(rec.Code, rec.Level)

	return []string{
		rec.Code,
		strconv.Itoa(rec.Level),
		rec.Name,
		string(accountType),
		string(balance),
		parent,
		strconv.FormatBool(rec.IsHeader()),
		strconv.FormatBool(rec.IsPostable()),
	}, nil
}
