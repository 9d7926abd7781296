package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"portfolio/pkg/config"
	"portfolio/pkg/constants"
	"portfolio/pkg/utils"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/manifoldco/promptui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var initForce bool

var InitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write config.yml for the web server",
	Long: `
You will be prompted for the port, the database file and the directory that
holds the static pages. The answers are written to config.yml in the working
directory. Environment variables prefixed with PORTFOLIO_ still override it.

Usage:

	portfolio init
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), "Initialize portfolio")

		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		configFilePath := filepath.Join(wd, constants.ConfigFileName)

		fs := afero.NewOsFs()
		exists, err := afero.Exists(fs, configFilePath)
		if err != nil {
			return err
		}
		if exists && !initForce {
			overwritePrompt := promptui.Prompt{
				Label:     fmt.Sprintf("%s exists, overwrite", constants.ConfigFileName),
				IsConfirm: true,
			}
			if _, err := overwritePrompt.Run(); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Keeping the existing configuration")
				return nil
			}
		}

		configs, err := promptConfigurations()
		if err != nil {
			return err
		}

		if err := writeConfigFile(fs, configFilePath, configs); err != nil {
			return err
		}

		color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "wrote %s\n", configFilePath)
		return nil
	},
}

func init() {
	InitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config.yml without asking")
}

func promptConfigurations() (config.PortfolioConfigurations, error) {
	configs := config.PortfolioConfigurations{
		LogLevel:            "INFO",
		Host:                "127.0.0.1",
		ReadTimeoutSeconds:  15,
		WriteTimeoutSeconds: 15,
	}

	portPrompt := promptui.Prompt{
		Label:    "Port",
		Default:  "8000",
		Validate: validatePort,
	}
	port, err := portPrompt.Run()
	if err != nil {
		return configs, err
	}

	dbPrompt := promptui.Prompt{
		Label:    "Database file",
		Default:  constants.DefaultSqliteDbFileName,
		Validate: validateNotBlank,
	}
	dbFilePath, err := dbPrompt.Run()
	if err != nil {
		return configs, err
	}

	sitePrompt := promptui.Prompt{
		Label:    "Site directory",
		Default:  ".",
		Validate: validateNotBlank,
	}
	siteDir, err := sitePrompt.Run()
	if err != nil {
		return configs, err
	}

	levelSelect := promptui.Select{
		Label: "Log level",
		Items: []string{"INFO", "DEBUG", "WARN", "ERROR"},
	}
	_, logLevel, err := levelSelect.Run()
	if err != nil {
		return configs, err
	}

	configs.Port = strings.TrimSpace(port)
	configs.DbFilePath = strings.TrimSpace(dbFilePath)
	configs.SiteDir = strings.TrimSpace(siteDir)
	configs.LogLevel = logLevel
	return configs, nil
}

func writeConfigFile(fs afero.Fs, configFilePath string, configs config.PortfolioConfigurations) error {
	configByte, err := yaml.Marshal(configs)
	if err != nil {
		return fmt.Errorf("failed to encode configurations: %w", err)
	}

	if err := utils.EnsureParentDir(fs, configFilePath); err != nil {
		return err
	}

	return afero.WriteFile(fs, configFilePath, configByte, 0600)
}

func validatePort(input string) error {
	port, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil || port < 1 || port > 65535 {
		return errors.New("port must be a number between 1 and 65535")
	}
	return nil
}

func validateNotBlank(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("a value is required")
	}
	return nil
}
