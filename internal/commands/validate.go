package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/coaseed/internal/accounts"
)

func newValidateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the chart hierarchy without generating SQL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd)
			if err != nil {
				return err
			}
			return runValidate(cmd.OutOrStdout(), s)
		},
	}
}

func runValidate(stdout io.Writer, s *settings) error {
	errs := accounts.Validate(s.records)
	for _, e := range errs {
		s.log.WithField("code", e.Code).Debug("accounts.Validate")
		fmt.Fprintln(stdout, e.Error())
	}
	if len(errs) > 0 {
		return fmt.Errorf("chart has %d validation errors", len(errs))
	}

	fmt.Fprintf(stdout, "Chart OK: %d accounts\n", len(s.records))
	return nil
}
