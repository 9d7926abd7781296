package controllers

import (
	"fmt"
	"net/http"
	"portfolio/pkg/http/server/flash"
	"portfolio/pkg/http/server/views"
	"portfolio/pkg/models"
	"portfolio/pkg/service/project"
	"portfolio/pkg/utils"

	"github.com/hashicorp/go-hclog"
)

const (
	projectsPath   = "/projects"
	addProjectPath = "/add_project"
)

const (
	msgProjectAdded    = "Project added successfully!"
	msgProjectUpdated  = "Project updated successfully!"
	msgProjectDeleted  = "Project deleted successfully!"
	msgProjectNotFound = "Project not found."
)

type projectController struct {
	projectService project.ProjectService
	renderer       views.Renderer
	flasher        flash.Flasher
	errorPages     ErrorPages
	logger         hclog.Logger
}

type ProjectHTTPController interface {
	ListProjects(w http.ResponseWriter, r *http.Request)
	AddProject(w http.ResponseWriter, r *http.Request)
	SubmitProject(w http.ResponseWriter, r *http.Request)
	EditProject(w http.ResponseWriter, r *http.Request)
	UpdateProject(w http.ResponseWriter, r *http.Request)
	DeleteProject(w http.ResponseWriter, r *http.Request)
}

func NewProjectController(
	logger hclog.Logger,
	projectService project.ProjectService,
	renderer views.Renderer,
	flasher flash.Flasher,
	errorPages ErrorPages,
) ProjectHTTPController {
	return &projectController{
		projectService: projectService,
		renderer:       renderer,
		flasher:        flasher,
		errorPages:     errorPages,
		logger:         logger.Named("project-controller"),
	}
}

func (controller *projectController) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, listErr := controller.projectService.List()
	if listErr != nil {
		controller.fail(w, r, listErr)
		return
	}

	page := views.ProjectsPage{
		Projects: projects,
		Flashes:  popFlashes(w, r, controller.flasher, controller.logger),
	}
	controller.render(w, r, views.ProjectsTemplate, page)
}

func (controller *projectController) AddProject(w http.ResponseWriter, r *http.Request) {
	page := views.ProjectFormPage{
		Flashes: popFlashes(w, r, controller.flasher, controller.logger),
	}
	controller.render(w, r, views.AddProjectTemplate, page)
}

func (controller *projectController) SubmitProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		controller.redirect(w, r, flash.KindError, "Invalid form submission.", addProjectPath)
		return
	}

	_, createErr := controller.projectService.CreateOne(projectFromForm(r))
	if createErr != nil {
		if createErr.IsValidation() {
			controller.redirect(w, r, flash.KindError, createErr.Message, addProjectPath)
			return
		}
		controller.fail(w, r, createErr)
		return
	}

	controller.redirect(w, r, flash.KindSuccess, msgProjectAdded, projectsPath)
}

func (controller *projectController) EditProject(w http.ResponseWriter, r *http.Request) {
	id, parseErr := utils.ParseIDParam(r)
	if parseErr != nil {
		controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
		return
	}

	p, getErr := controller.projectService.GetOneByID(id)
	if getErr != nil {
		if getErr.IsNotFound() {
			controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
			return
		}
		controller.fail(w, r, getErr)
		return
	}

	page := views.ProjectFormPage{
		Project: *p,
		Flashes: popFlashes(w, r, controller.flasher, controller.logger),
	}
	controller.render(w, r, views.EditProjectTemplate, page)
}

func (controller *projectController) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, parseErr := utils.ParseIDParam(r)
	if parseErr != nil {
		controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
		return
	}

	editPath := fmt.Sprintf("/edit_project/%d", id)
	if err := r.ParseForm(); err != nil {
		controller.redirect(w, r, flash.KindError, "Invalid form submission.", editPath)
		return
	}

	p := projectFromForm(r)
	p.ID = id

	updateErr := controller.projectService.UpdateOneByID(&p)
	if updateErr != nil {
		switch {
		case updateErr.IsValidation():
			controller.redirect(w, r, flash.KindError, updateErr.Message, editPath)
		case updateErr.IsNotFound():
			controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
		default:
			controller.fail(w, r, updateErr)
		}
		return
	}

	controller.redirect(w, r, flash.KindSuccess, msgProjectUpdated, projectsPath)
}

func (controller *projectController) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, parseErr := utils.ParseIDParam(r)
	if parseErr != nil {
		controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
		return
	}

	deleteErr := controller.projectService.DeleteOneByID(id)
	if deleteErr != nil {
		if deleteErr.IsNotFound() {
			controller.redirect(w, r, flash.KindError, msgProjectNotFound, projectsPath)
			return
		}
		controller.fail(w, r, deleteErr)
		return
	}

	controller.redirect(w, r, flash.KindSuccess, msgProjectDeleted, projectsPath)
}

func projectFromForm(r *http.Request) models.Project {
	return models.Project{
		Title:         utils.FormValue(r, "title"),
		Description:   utils.FormValue(r, "description"),
		ImageFileName: utils.FormValue(r, "image"),
	}
}

func (controller *projectController) redirect(w http.ResponseWriter, r *http.Request, kind, text, target string) {
	seeOther(w, r, controller.flasher, controller.logger, kind, text, target)
}

func (controller *projectController) render(w http.ResponseWriter, r *http.Request, name string, data interface{}) {
	if err := controller.renderer.Render(w, http.StatusOK, name, data); err != nil {
		controller.logger.Error("failed to render page", "template", name, "error", err)
		controller.errorPages.ServerError(w, r)
	}
}

func (controller *projectController) fail(w http.ResponseWriter, r *http.Request, err *utils.GenericError) {
	controller.logger.Error("project request failed", "path", r.URL.Path, "error", err.Message)
	controller.errorPages.ServerError(w, r)
}
