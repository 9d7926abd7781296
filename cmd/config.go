package cmd

import (
	"portfolio/pkg/config"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var showSecret bool

var ConfigCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect portfolio configurations",
}

var ShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configurations",
	Long: `
Prints the configuration the server would start with, after config.yml and
PORTFOLIO_ environment variables are applied. The session secret is hidden
unless --show-secret is set.
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := *config.NewPortfolioConfig().GetConfigurations()
		return showConfigurations(cmd, configs, showSecret)
	},
}

func showConfigurations(cmd *cobra.Command, configs config.PortfolioConfigurations, withSecret bool) error {
	if !withSecret && configs.SessionSecret != "" {
		configs.SessionSecret = "********"
	}

	out, err := yaml.Marshal(configs)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

func init() {
	ShowCmd.Flags().BoolVarP(&showSecret, "show-secret", "s", false, "portfolio config show --show-secret")
	ConfigCmd.AddCommand(ShowCmd)
}
