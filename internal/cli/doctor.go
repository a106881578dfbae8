package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/output"
	"github.com/devbydaniel/minutes/internal/pdf"
)

func NewDoctorCmd(deps *Dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check prerequisites",
		RunE: func(cmd *cobra.Command, args []string) error {
			f := output.NewFormatter(os.Stdout)
			ok := true

			if family, err := pdf.ResolveFont(deps.Config.FontDirs); err != nil {
				f.SetupCheck("PDF fonts", false, "no regular+bold pair found. Install Liberation Sans, Noto Sans, or DejaVu Sans, or set font_dirs in config")
				ok = false
			} else {
				f.SetupCheck("PDF fonts", true, family.Name)
			}

			if deps.Config.AuthorName != "" {
				f.SetupCheck("Author", true, deps.Config.AuthorName)
			} else {
				f.SetupCheck("Author", false, "not set. Set MINUTES_AUTHOR or author_name in config; new files start without a recorder")
				ok = false
			}

			f.SetupCheck("Minutes directory", true, deps.Config.MinutesDir)

			if ok {
				f.Success("\nAll prerequisites met.")
			} else {
				f.Warning("\nSome prerequisites are missing.")
			}
			return nil
		},
	}
}
