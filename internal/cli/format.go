package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
)

func NewFmtCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "fmt <file>",
		Short: "Rewrite a minutes file in canonical form",
		Long:  "Parse the file and write it back normalized: people sorted, blank rows dropped, and the modified stamp advanced.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			rec, err := deps.App.Open.Execute(args[0])
			if err != nil {
				return err
			}

			if err := deps.App.Save.Execute(rec, args[0]); err != nil {
				return err
			}

			formatter.Saved(args[0])
			return nil
		},
	}
}
