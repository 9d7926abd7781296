package project

import (
	"fmt"
	"net/http"
	"portfolio/pkg/metrics"
	"portfolio/pkg/models"
	"portfolio/pkg/repository/project"
	"portfolio/pkg/utils"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// ProjectService project service the layer on top db repos
type projectService struct {
	projectRepo project.ProjectRepo
	metrics     *metrics.Metrics
	logger      hclog.Logger
}

type ProjectService interface {
	InitializeSchema() *utils.GenericError
	CreateOne(project models.Project) (*models.Project, *utils.GenericError)
	List() ([]models.Project, *utils.GenericError)
	GetOneByID(id uint64) (*models.Project, *utils.GenericError)
	UpdateOneByID(project *models.Project) *utils.GenericError
	DeleteOneByID(id uint64) *utils.GenericError
	Count() (uint64, *utils.GenericError)
}

func NewProjectService(logger hclog.Logger, projectRepo project.ProjectRepo, m *metrics.Metrics) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		metrics:     m,
		logger:      logger.Named("project-service"),
	}
}

func (projectService *projectService) InitializeSchema() *utils.GenericError {
	return projectService.projectRepo.InitializeSchema()
}

// CreateOne validates and stores a new project, returning it as read back from the store
func (projectService *projectService) CreateOne(project models.Project) (*models.Project, *utils.GenericError) {
	normalize(&project)
	if err := validate(project); err != nil {
		projectService.record("create", err)
		return nil, err
	}

	id, err := projectService.projectRepo.CreateOne(project.Title, project.Description, project.ImageFileName)
	if err != nil {
		projectService.record("create", err)
		return nil, err
	}

	created, err := projectService.GetOneByID(id)
	if err != nil {
		projectService.record("create", err)
		return nil, err
	}

	projectService.record("create", nil)
	projectService.logger.Info("project created", "id", created.ID, "title", created.Title)
	return created, nil
}

// List returns every project
func (projectService *projectService) List() ([]models.Project, *utils.GenericError) {
	return projectService.projectRepo.List()
}

// GetOneByID returns the project with a matching id or a 404
func (projectService *projectService) GetOneByID(id uint64) (*models.Project, *utils.GenericError) {
	project, err := projectService.projectRepo.GetOneByID(id)
	if err != nil {
		return nil, err
	}

	if project == nil {
		return nil, notFound(id)
	}

	return project, nil
}

// UpdateOneByID validates and overwrites a project, then refreshes it from the store
func (projectService *projectService) UpdateOneByID(project *models.Project) *utils.GenericError {
	normalize(project)
	if err := validate(*project); err != nil {
		projectService.record("update", err)
		return err
	}

	updated, err := projectService.projectRepo.UpdateOneByID(project.ID, project.Title, project.Description, project.ImageFileName)
	if err != nil {
		projectService.record("update", err)
		return err
	}

	if !updated {
		err = notFound(project.ID)
		projectService.record("update", err)
		return err
	}

	refreshed, err := projectService.GetOneByID(project.ID)
	if err != nil {
		projectService.record("update", err)
		return err
	}
	*project = *refreshed

	projectService.record("update", nil)
	projectService.logger.Info("project updated", "id", project.ID)
	return nil
}

// DeleteOneByID deletes a single project
func (projectService *projectService) DeleteOneByID(id uint64) *utils.GenericError {
	deleted, err := projectService.projectRepo.DeleteOneByID(id)
	if err != nil {
		projectService.record("delete", err)
		return err
	}

	if !deleted {
		err = notFound(id)
		projectService.record("delete", err)
		return err
	}

	projectService.record("delete", nil)
	projectService.logger.Info("project deleted", "id", id)
	return nil
}

func (projectService *projectService) Count() (uint64, *utils.GenericError) {
	return projectService.projectRepo.Count()
}

func (projectService *projectService) record(operation string, err *utils.GenericError) {
	if projectService.metrics == nil {
		return
	}

	outcome := "ok"
	switch {
	case err.IsValidation():
		outcome = "invalid"
	case err.IsNotFound():
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	}
	projectService.metrics.ProjectOperation(operation, outcome)
}

func normalize(project *models.Project) {
	project.Title = strings.TrimSpace(project.Title)
	project.Description = strings.TrimSpace(project.Description)
	project.ImageFileName = strings.TrimSpace(project.ImageFileName)
}

func validate(project models.Project) *utils.GenericError {
	if len(project.Title) < 1 {
		return utils.HTTPGenericError(http.StatusBadRequest, "project title is required")
	}

	if len(project.Description) < 1 {
		return utils.HTTPGenericError(http.StatusBadRequest, "project description is required")
	}

	return nil
}

func notFound(id uint64) *utils.GenericError {
	return utils.HTTPGenericError(http.StatusNotFound, fmt.Sprintf("cannot find project with id = %v", id))
}
