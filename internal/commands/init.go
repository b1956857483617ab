package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/coaseed/internal/accounts"
	"github.com/cleared-dev/coaseed/internal/config"
)

const (
	configFileName = "coaseed.yaml"
	chartFileName  = "chart.csv"
)

func newInitCommand(flags *globalFlags) *cobra.Command {
	var name string
	var exportChart bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Write a starter coaseed.yaml, optionally with an editable chart",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("name") {
				cfg.Company.Name = name
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
			}

			return runInit(cmd.OutOrStdout(), absDir, cfg, exportChart)
		},
	}

	cmd.Flags().StringVar(&name, "name", config.DefaultCompanyName, "company name shown in the script header")
	cmd.Flags().BoolVar(&exportChart, "export-chart", false, "also write the bundled chart to chart.csv and point the config at it")

	return cmd
}

func runInit(stdout io.Writer, dir string, cfg *config.Config, exportChart bool) error {
	cfgPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("checking %s: %w", cfgPath, err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	if exportChart {
		chartPath := filepath.Join(dir, chartFileName)
		f, err := os.Create(chartPath)
		if err != nil {
			return fmt.Errorf("creating chart: %w", err)
		}
		if err := accounts.WriteRecords(f, accounts.DefaultChart()); err != nil {
			f.Close()
			return fmt.Errorf("writing chart: %w", err)
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("writing chart: %w", err)
		}
		cfg.Chart = chartPath
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Wrote %s\n", cfgPath)
	if exportChart {
		fmt.Fprintf(stdout, "Wrote %s\n", cfg.Chart)
	}
	return nil
}
