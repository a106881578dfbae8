package cli

import (
	"github.com/spf13/cobra"

	"github.com/devbydaniel/minutes/config"
	"github.com/devbydaniel/minutes/internal/app"
	"github.com/devbydaniel/minutes/internal/version"
)

type Dependencies struct {
	App    *app.App
	Config *config.Config
}

func NewRootCmd(deps *Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "minutes",
		Short: "Author meeting minutes and export them as PDF",
		Long:  "A CLI tool for meeting minutes: keeps them in a structured markdown format, prints them to the terminal, and exports them as paginated PDF documents.",
	}

	rootCmd.Version = version.Version
	rootCmd.SetVersionTemplate(version.Full() + "\n")

	rootCmd.AddCommand(NewNewCmd(deps))
	rootCmd.AddCommand(NewShowCmd(deps))
	rootCmd.AddCommand(NewFmtCmd(deps))
	rootCmd.AddCommand(NewExportCmd(deps))
	rootCmd.AddCommand(NewDoctorCmd(deps))

	return rootCmd
}
