package controllers

import (
	"net/http"
	"portfolio/pkg/service/project"
	"portfolio/pkg/utils"

	"github.com/hashicorp/go-hclog"
)

type HealthCheckController interface {
	HealthCheck(w http.ResponseWriter, r *http.Request)
}

type healthCheckController struct {
	projectService project.ProjectService
	logger         hclog.Logger
}

type healthCheckRes struct {
	Status   string `json:"status"`
	Projects uint64 `json:"projects"`
}

func NewHealthCheckController(logger hclog.Logger, projectService project.ProjectService) HealthCheckController {
	return &healthCheckController{
		projectService: projectService,
		logger:         logger.Named("healthcheck-controller"),
	}
}

func (controller *healthCheckController) HealthCheck(w http.ResponseWriter, r *http.Request) {
	count, countErr := controller.projectService.Count()
	if countErr != nil {
		controller.logger.Error("health check failed", "error", countErr.Message)
		utils.SendJSON(w, healthCheckRes{Status: "unavailable"}, false, http.StatusServiceUnavailable, nil)
		return
	}

	utils.SendJSON(w, healthCheckRes{Status: "ok", Projects: count}, true, http.StatusOK, nil)
}
