package controller

import (
	"errors"
	"net/http"

	"go-monitor/internal/domain/model"
	"go-monitor/internal/domain/monitor"
	"go-monitor/internal/domain/usecase/health"
	"go-monitor/pkg/msg"

	"github.com/labstack/echo/v4"
)

type HealthController struct {
	api     *echo.Group
	useCase health.UseCase
}

func NewHealthController(api *echo.Group, useCase health.UseCase) *HealthController {
	return &HealthController{api: api, useCase: useCase}
}

// InitHealthRoutes initializes health check routes
func (controller *HealthController) InitHealthRoutes() {
	controller.api.GET("/health", controller.BasicHealth)
	controller.api.GET("/health/detailed", controller.DetailedHealth)
	controller.api.GET("/health/ready", controller.Readiness)
	controller.api.GET("/health/live", controller.Liveness)
	controller.api.POST("/health/check", controller.CheckAll)
	controller.api.POST("/health/check/:name", controller.CheckDependency)
}

// BasicHealth godoc
// @Summary Get basic health
// @Description Fast health summary for load balancer checks
// @Tags health
// @Produce json
// @Success 200 {object} model.BasicHealth "Service is healthy or degraded"
// @Failure 503 {object} model.BasicHealth "Service is unhealthy"
// @Router /health [get]
func (controller *HealthController) BasicHealth(c echo.Context) error {
	basic := controller.useCase.BasicHealth()
	return c.JSON(statusCodeFor(basic.Status), basic)
}

// DetailedHealth godoc
// @Summary Get detailed health
// @Description Full health view with per-dependency checks, summary counts and resource and performance excerpts
// @Tags health
// @Produce json
// @Success 200 {object} model.DetailedHealth "Detailed health view"
// @Failure 503 {object} model.DetailedHealth "Service is unhealthy"
// @Router /health/detailed [get]
func (controller *HealthController) DetailedHealth(c echo.Context) error {
	detailed := controller.useCase.DetailedHealth()
	return c.JSON(statusCodeFor(detailed.Status), detailed)
}

// Readiness godoc
// @Summary Get readiness
// @Description Reports whether the service can take traffic, judged from critical dependencies only
// @Tags health
// @Produce json
// @Success 200 {object} model.ReadinessReport "Service is ready"
// @Failure 503 {object} model.ReadinessReport "Service is not ready"
// @Router /health/ready [get]
func (controller *HealthController) Readiness(c echo.Context) error {
	readiness := controller.useCase.Readiness()
	if !readiness.Ready {
		return c.JSON(http.StatusServiceUnavailable, readiness)
	}
	return c.JSON(http.StatusOK, readiness)
}

// Liveness godoc
// @Summary Get liveness
// @Description Reports process responsiveness, independent of dependency health
// @Tags health
// @Produce json
// @Success 200 {object} model.LivenessReport "Process is alive"
// @Router /health/live [get]
func (controller *HealthController) Liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.Liveness())
}

// CheckAll godoc
// @Summary Re-check all dependencies
// @Description Probe every enabled dependency immediately and return the recomputed snapshot
// @Tags health
// @Produce json
// @Success 200 {object} model.HealthSnapshot "Recomputed health snapshot"
// @Failure 503 {object} model.HealthSnapshot "Service is unhealthy after the re-check"
// @Router /health/check [post]
func (controller *HealthController) CheckAll(c echo.Context) error {
	snapshot := controller.useCase.CheckAll(c.Request().Context())
	return c.JSON(statusCodeFor(snapshot.Status), snapshot)
}

// CheckDependency godoc
// @Summary Re-check one dependency
// @Description Probe a single named dependency immediately and return its result
// @Tags health
// @Produce json
// @Param name path string true "Dependency name"
// @Success 200 {object} model.CheckResult "Latest check result for the dependency"
// @Failure 404 {object} map[string]string "Dependency is not registered"
// @Router /health/check/{name} [post]
func (controller *HealthController) CheckDependency(c echo.Context) error {
	name := c.Param("name")

	result, err := controller.useCase.CheckDependency(c.Request().Context(), name)
	if err != nil {
		if errors.Is(err, monitor.ErrUnknownDependency) {
			return c.JSON(http.StatusNotFound, map[string]string{"error": msg.GetMessage("monitor.error.unknown-dependency", name)})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, result)
}

// statusCodeFor maps the overall health status to the HTTP status served to
// callers. Degraded still answers 200 so load balancers keep routing.
func statusCodeFor(status model.HealthStatus) int {
	if status == model.StatusUnhealthy {
		return http.StatusServiceUnavailable
	}
	return http.StatusOK
}
