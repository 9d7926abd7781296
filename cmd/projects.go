package cmd

import (
	"fmt"
	"io"
	"portfolio/pkg/config"
	"portfolio/pkg/models"
	"portfolio/pkg/service/project"
	"strconv"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var ProjectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List, add or delete projects without the web server",
	Long: `
Manage the projects showcase from the terminal. The commands use the same
database file as the web server.

Usage:

	portfolio projects list
	portfolio projects add --title "Climbing log" --description "Tracks routes"
	portfolio projects delete 3
`,
}

var projectTitle, projectDescription, projectImage string

var listProjectsCmd = &cobra.Command{
	Use:   "list",
	Short: "List every project in insertion order",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectService, err := projectServiceFromConfig()
		if err != nil {
			return err
		}
		return listProjects(cmd.OutOrStdout(), projectService)
	},
}

var addProjectCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projectService, err := projectServiceFromConfig()
		if err != nil {
			return err
		}
		return addProject(cmd.OutOrStdout(), projectService, models.Project{
			Title:         projectTitle,
			Description:   projectDescription,
			ImageFileName: projectImage,
		})
	},
}

var deleteProjectCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a project by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectService, err := projectServiceFromConfig()
		if err != nil {
			return err
		}
		return deleteProject(cmd.OutOrStdout(), projectService, args[0])
	},
}

func init() {
	addProjectCmd.Flags().StringVarP(&projectTitle, "title", "t", "", "project title")
	addProjectCmd.Flags().StringVarP(&projectDescription, "description", "d", "", "project description")
	addProjectCmd.Flags().StringVarP(&projectImage, "image", "i", "", "image file name under images/")

	ProjectsCmd.AddCommand(listProjectsCmd)
	ProjectsCmd.AddCommand(addProjectCmd)
	ProjectsCmd.AddCommand(deleteProjectCmd)
}

func projectServiceFromConfig() (project.ProjectService, error) {
	configs := config.NewPortfolioConfig().GetConfigurations()
	return newProjectService(newLogger(configs), configs)
}

func listProjects(w io.Writer, projectService project.ProjectService) error {
	projects, listErr := projectService.List()
	if listErr != nil {
		return listErr
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "ID", "Title", "Image", "Created"})

	for index, p := range projects {
		t.AppendRow(table.Row{
			index + 1,
			p.ID,
			p.Title,
			p.Image,
			p.DateCreated.Format("2006-01-02 15:04"),
		})
	}

	t.AppendFooter(table.Row{"", "", "", "Total", len(projects)})
	t.Render()
	return nil
}

func addProject(w io.Writer, projectService project.ProjectService, p models.Project) error {
	created, createErr := projectService.CreateOne(p)
	if createErr != nil {
		if createErr.IsValidation() {
			return fmt.Errorf("invalid project: %s", createErr.Message)
		}
		return createErr
	}

	color.New(color.FgGreen).Fprintf(w, "added project %d: %s\n", created.ID, created.Title)
	return nil
}

func deleteProject(w io.Writer, projectService project.ProjectService, rawID string) error {
	id, err := strconv.ParseUint(rawID, 10, 64)
	if err != nil || id == 0 {
		return fmt.Errorf("project id must be a positive integer, got %q", rawID)
	}

	if deleteErr := projectService.DeleteOneByID(id); deleteErr != nil {
		if deleteErr.IsNotFound() {
			color.New(color.FgYellow).Fprintf(w, "no project with id %d\n", id)
			return nil
		}
		return deleteErr
	}

	color.New(color.FgGreen).Fprintf(w, "deleted project %d\n", id)
	return nil
}
