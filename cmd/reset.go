package cmd

import (
	"fmt"
	"os"
	"portfolio/pkg/config"
	"portfolio/pkg/secrets"

	"github.com/fatih/color"
	"github.com/hashicorp/go-hclog"
	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var resetForce bool

var ResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset local state",
}

var resetDbCmd = &cobra.Command{
	Use:   "db",
	Short: "Delete the database file and recreate an empty projects table",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewPortfolioConfig().GetConfigurations()

		if !resetForce {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Delete every project in %s", configs.DbFilePath),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				return nil
			}
		}

		logger := newLogger(configs)
		if err := resetDatabase(logger, afero.NewOsFs(), configs); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "reset %s\n", configs.DbFilePath)
		return nil
	},
}

func resetDatabase(logger hclog.Logger, fs afero.Fs, configs *config.PortfolioConfigurations) error {
	if err := fs.Remove(configs.DbFilePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove %s: %w", configs.DbFilePath, err)
	}

	_, err := newProjectService(logger, configs)
	return err
}

var resetSecretsCmd = &cobra.Command{
	Use:   "secrets",
	Short: "Generate a new session secret, dropping pending flash messages",
	RunE: func(cmd *cobra.Command, args []string) error {
		configs := config.NewPortfolioConfig().GetConfigurations()
		if configs.SessionSecret != "" {
			color.New(color.FgYellow).Fprintln(cmd.OutOrStdout(), "SessionSecret is set in config.yml or the environment, change it there")
			return nil
		}

		if _, err := rotateSessionSecret(afero.NewOsFs(), configs); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintln(cmd.OutOrStdout(), "session secret rotated")
		return nil
	},
}

func rotateSessionSecret(fs afero.Fs, configs *config.PortfolioConfigurations) (string, error) {
	return secrets.NewPortfolioSecrets(fs, secrets.FilePathFor(configs.DbFilePath)).RotateSessionSecret()
}

func init() {
	ResetCmd.AddCommand(resetSecretsCmd)
	resetDbCmd.Flags().BoolVarP(&resetForce, "force", "f", false, "skip the confirmation prompt")
	ResetCmd.AddCommand(resetDbCmd)
}
