package cmd

import (
	"portfolio/pkg/config"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var MigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create the projects table if it does not exist",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewPortfolioConfig().GetConfigurations()

		if _, err := newProjectService(newLogger(configs), configs); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "schema ready in %s\n", configs.DbFilePath)
		return nil
	},
}
