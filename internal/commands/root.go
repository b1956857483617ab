package commands

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/coaseed/internal/accounts"
	"github.com/cleared-dev/coaseed/internal/buildinfo"
	"github.com/cleared-dev/coaseed/internal/config"
	"github.com/cleared-dev/coaseed/internal/logging"
	"github.com/cleared-dev/coaseed/internal/model"
)

// globalFlags holds the persistent flags shared by every subcommand.
type globalFlags struct {
	configPath string
	chartPath  string
	companyID  string
	createdBy  string
	logLevel   string
}

// settings is the resolved state a subcommand runs with.
type settings struct {
	cfg     *config.Config
	log     *logrus.Logger
	records []model.SeedRecord
}

// NewRootCommand creates the root CLI command with all subcommands registered.
// Run without a subcommand it behaves like generate.
func NewRootCommand() *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:     "coaseed",
		Short:   "Generate the chart-of-accounts seed script",
		Version: buildinfo.String(),
		Args:    cobra.NoArgs,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), s, "")
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "path to a coaseed.yaml file")
	pf.StringVar(&flags.chartPath, "chart", "", "chart CSV to seed instead of the bundled restaurant chart")
	pf.StringVar(&flags.companyID, "company-id", "", "company UUID written into every row")
	pf.StringVar(&flags.createdBy, "created-by", "", "user UUID recorded as creator")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(newGenerateCommand(flags))
	rootCmd.AddCommand(newValidateCommand(flags))
	rootCmd.AddCommand(newChartCommand(flags))
	rootCmd.AddCommand(newInitCommand(flags))

	return rootCmd
}

// resolve builds the configuration and loads the chart.
func (f *globalFlags) resolve(cmd *cobra.Command) (*settings, error) {
	cfg, err := f.resolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	log, err := logging.SetupLogging(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	records := accounts.DefaultChart()
	source := "embedded"
	if cfg.Chart != "" {
		records, err = accounts.LoadFile(cfg.Chart)
		if err != nil {
			return nil, err
		}
		source = cfg.Chart
	}

	log.WithFields(logrus.Fields{
		"chart":    source,
		"accounts": len(records),
		"company":  cfg.Company.ID,
	}).Debug("commands.resolve")

	return &settings{cfg: cfg, log: log, records: records}, nil
}

// resolveConfig layers the config file and then explicitly set flags over
// the defaults.
func (f *globalFlags) resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	changed := cmd.Flags().Changed
	if changed("chart") {
		cfg.Chart = f.chartPath
	}
	if changed("company-id") {
		cfg.Company.ID = f.companyID
	}
	if changed("created-by") {
		cfg.CreatedBy = f.createdBy
	}
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
