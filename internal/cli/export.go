package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/internal/domain/minutes/usecases"
	"github.com/devbydaniel/minutes/internal/output"
)

func NewExportCmd(deps *Dependencies) *cobra.Command {
	var out string
	var fontDirs []string

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a minutes file as PDF",
		Long:  "Parse the file and render it as a paginated A4 PDF with page numbers and a link appendix.\nWithout --out the PDF lands next to the source file.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.NewFormatter(os.Stdout)

			rec, err := deps.App.Open.Execute(args[0])
			if err != nil {
				return err
			}

			for _, owner := range rec.UnknownOwners() {
				formatter.Warning(fmt.Sprintf("owner code %q matches no recorder or attendee", owner))
			}

			path := out
			if path == "" {
				name := usecases.SuggestedPDFName(rec.Title, time.Now())
				if rec.Title == "" {
					name = strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])) + ".pdf"
				}
				path = filepath.Join(filepath.Dir(args[0]), name)
			}

			export := deps.App.Export
			if len(fontDirs) > 0 {
				export = &usecases.ExportPDF{FontDirs: fontDirs}
			}

			if err := export.Execute(rec, path); err != nil {
				return err
			}

			formatter.Exported(path)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "Output PDF path")
	cmd.Flags().StringArrayVar(&fontDirs, "font-dir", nil, "Font directory to probe (repeatable, overrides config)")

	return cmd
}
