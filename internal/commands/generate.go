package commands

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/coaseed/internal/seed"
)

func newGenerateCommand(flags *globalFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the seed SQL script",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runGenerate(cmd.OutOrStdout(), s, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the script to a file instead of stdout")

	return cmd
}

func runGenerate(stdout io.Writer, s *settings, output string) error {
	gen := seed.NewGenerator(seed.Params{
		CompanyID:   s.cfg.Company.ID,
		CompanyName: s.cfg.Company.Name,
		CreatedBy:   s.cfg.CreatedBy,
	}, s.records)

	var buf bytes.Buffer
	if _, err := gen.WriteTo(&buf); err != nil {
		s.log.WithError(err).Error("seed.Generate")
		return fmt.Errorf("generating seed: %w", err)
	}

	if output == "" {
		if _, err := stdout.Write(buf.Bytes()); err != nil {
			return fmt.Errorf("writing seed: %w", err)
		}
	} else if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing seed: %w", err)
	}

	s.log.WithFields(logrus.Fields{
		"accounts": len(s.records),
		"bytes":    buf.Len(),
	}).Info("seed.Generate")
	return nil
}
