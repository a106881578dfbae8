package cli

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/minutes/usecases"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewNewCmd(deps *Dependencies) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "new [title]",
		Short: "Create a new minutes file",
		Long:  "Create a new minutes file with today's date, the configured author as recorder, and default status flags.\nWithout --file the file lands in the minutes directory under a name derived from the title.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			title := ""
			if len(args) > 0 {
				title = args[0]
			}

			path := file
			if path == "" {
				path = filepath.Join(deps.Config.MinutesDir, usecases.SuggestedFileName(title, time.Now()))
			}

			if _, err := deps.App.Create.Execute(title, path); err != nil {
				return err
			}

			formatter.Created(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Target file path")

	return cmd
}
