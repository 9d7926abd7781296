package project

import (
	"net/http"
	"portfolio/pkg/metrics"
	"portfolio/pkg/models"
	project_repo "portfolio/pkg/repository/project"
	"portfolio/pkg/test_helpers"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProjectService(t *testing.T) (ProjectService, *metrics.Metrics) {
	logger := test_helpers.NewTestLogger("project-service-test")
	dataStore := test_helpers.NewTestDataStore(t, logger)
	projectRepo := project_repo.NewProjectRepo(logger, dataStore)
	m := metrics.NewMetrics()
	return NewProjectService(logger, projectRepo, m), m
}

func projectOps(t *testing.T, m *metrics.Metrics, operation, outcome string) int {
	t.Helper()

	families, err := m.Registry().Gather()
	require.NoError(t, err)

	for _, family := range families {
		if family.GetName() != "portfolio_project_operations_total" {
			continue
		}
		for _, metric := range family.GetMetric() {
			labels := map[string]string{}
			for _, label := range metric.GetLabel() {
				labels[label.GetName()] = label.GetValue()
			}
			if labels["operation"] == operation && labels["outcome"] == outcome {
				return int(metric.GetCounter().GetValue())
			}
		}
	}
	return 0
}

func Test_ProjectService_CreateOne(t *testing.T) {
	projectService, m := newTestProjectService(t)

	project := models.Project{
		Title:         "  Kayak trip planner ",
		Description:   "Plans river trips",
		ImageFileName: "kayak.png",
	}

	createdProject, createErr := projectService.CreateOne(project)
	require.Nil(t, createErr)
	require.NotNil(t, createdProject)

	assert.Equal(t, uint64(1), createdProject.ID)
	assert.Equal(t, "Kayak trip planner", createdProject.Title)
	assert.Equal(t, "Plans river trips", createdProject.Description)
	assert.Equal(t, "kayak.png", createdProject.Image)
	assert.Equal(t, 1, projectOps(t, m, "create", "ok"))
}

func Test_ProjectService_CreateOne_Validation(t *testing.T) {
	projectService, m := newTestProjectService(t)

	cases := []models.Project{
		{Title: "", Description: "D"},
		{Title: "   ", Description: "D"},
		{Title: "T", Description: ""},
		{Title: "T", Description: "\t\n"},
	}

	for _, project := range cases {
		createdProject, createErr := projectService.CreateOne(project)
		assert.Nil(t, createdProject)
		require.NotNil(t, createErr)
		assert.Equal(t, http.StatusBadRequest, createErr.Type)
	}

	count, countErr := projectService.Count()
	require.Nil(t, countErr)
	assert.Equal(t, uint64(0), count, "invalid projects must never reach the store")
	assert.Equal(t, len(cases), projectOps(t, m, "create", "invalid"))
}

func Test_ProjectService_GetOneByID_NotFound(t *testing.T) {
	projectService, _ := newTestProjectService(t)

	project, getErr := projectService.GetOneByID(9999)
	assert.Nil(t, project)
	require.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)
}

func Test_ProjectService_UpdateOneByID(t *testing.T) {
	projectService, m := newTestProjectService(t)

	createdProject, createErr := projectService.CreateOne(models.Project{Title: "T", Description: "D"})
	require.Nil(t, createErr)
	assert.Equal(t, "placeholder.png", createdProject.Image)

	update := models.Project{
		ID:            createdProject.ID,
		Title:         "T2",
		Description:   "D2",
		ImageFileName: "x.png",
	}
	updateErr := projectService.UpdateOneByID(&update)
	require.Nil(t, updateErr)

	assert.Equal(t, "T2", update.Title)
	assert.Equal(t, "x.png", update.Image)
	assert.Equal(t, createdProject.DateCreated, update.DateCreated)

	fetched, getErr := projectService.GetOneByID(createdProject.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "T2", fetched.Title)
	assert.Equal(t, "D2", fetched.Description)
	assert.Equal(t, 1, projectOps(t, m, "update", "ok"))
}

func Test_ProjectService_UpdateOneByID_NotFound(t *testing.T) {
	projectService, m := newTestProjectService(t)

	update := models.Project{ID: 9999, Title: "T2", Description: "D2"}
	updateErr := projectService.UpdateOneByID(&update)
	require.NotNil(t, updateErr)
	assert.Equal(t, http.StatusNotFound, updateErr.Type)
	assert.Equal(t, 1, projectOps(t, m, "update", "not_found"))
}

func Test_ProjectService_UpdateOneByID_Validation(t *testing.T) {
	projectService, _ := newTestProjectService(t)

	createdProject, createErr := projectService.CreateOne(models.Project{Title: "T", Description: "D"})
	require.Nil(t, createErr)

	update := models.Project{ID: createdProject.ID, Title: "", Description: "D2"}
	updateErr := projectService.UpdateOneByID(&update)
	require.NotNil(t, updateErr)
	assert.Equal(t, http.StatusBadRequest, updateErr.Type)

	fetched, getErr := projectService.GetOneByID(createdProject.ID)
	require.Nil(t, getErr)
	assert.Equal(t, "T", fetched.Title)
}

func Test_ProjectService_DeleteOneByID(t *testing.T) {
	projectService, m := newTestProjectService(t)

	createdProject, createErr := projectService.CreateOne(models.Project{Title: "T", Description: "D"})
	require.Nil(t, createErr)

	require.Nil(t, projectService.DeleteOneByID(createdProject.ID))

	_, getErr := projectService.GetOneByID(createdProject.ID)
	require.NotNil(t, getErr)
	assert.Equal(t, http.StatusNotFound, getErr.Type)

	deleteErr := projectService.DeleteOneByID(createdProject.ID)
	require.NotNil(t, deleteErr)
	assert.Equal(t, http.StatusNotFound, deleteErr.Type)

	assert.Equal(t, 1, projectOps(t, m, "delete", "ok"))
	assert.Equal(t, 1, projectOps(t, m, "delete", "not_found"))
}

func Test_ProjectService_List(t *testing.T) {
	projectService, _ := newTestProjectService(t)

	projects, listErr := projectService.List()
	require.Nil(t, listErr)
	assert.Empty(t, projects)

	for _, fake := range test_helpers.FakeProjects(3, t) {
		_, createErr := projectService.CreateOne(fake)
		require.Nil(t, createErr)
	}

	projects, listErr = projectService.List()
	require.Nil(t, listErr)
	assert.Len(t, projects, 3)
}

func Test_ProjectService_NilMetrics(t *testing.T) {
	logger := test_helpers.NewTestLogger("project-service-test")
	dataStore := test_helpers.NewTestDataStore(t, logger)
	projectService := NewProjectService(logger, project_repo.NewProjectRepo(logger, dataStore), nil)

	_, createErr := projectService.CreateOne(models.Project{Title: "T", Description: "D"})
	assert.Nil(t, createErr)
}
