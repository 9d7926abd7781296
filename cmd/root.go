package cmd

import (
	"portfolio/pkg/config"
	"portfolio/pkg/db"
	project_repo "portfolio/pkg/repository/project"
	"portfolio/pkg/service/project"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Portfolio serves a personal website with a small projects showcase",
	Long: `Portfolio serves the static pages of a personal website and a projects
showcase backed by a single sqlite file.

Run "portfolio init" once to write config.yml, then "portfolio start".
`,
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(StartCmd)
	rootCmd.AddCommand(MigrateCmd)
	rootCmd.AddCommand(InitCmd)
	rootCmd.AddCommand(ConfigCmd)
	rootCmd.AddCommand(ProjectsCmd)
	rootCmd.AddCommand(ResetCmd)
	rootCmd.AddCommand(VersionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}

func newLogger(configs *config.PortfolioConfigurations) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:  "portfolio",
		Level: hclog.LevelFromString(configs.LogLevel),
	})
}

// newProjectService opens the configured store and makes sure the schema exists.
func newProjectService(logger hclog.Logger, configs *config.PortfolioConfigurations) (project.ProjectService, error) {
	dataStore := db.NewSqliteDbConnection(logger, configs.DbFilePath)
	projectService := project.NewProjectService(logger, project_repo.NewProjectRepo(logger, dataStore), nil)

	if err := projectService.InitializeSchema(); err != nil {
		return nil, err
	}
	return projectService, nil
}
