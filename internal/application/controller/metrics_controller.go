package controller

import (
	"net/http"

	"go-monitor/internal/domain/usecase/metrics"
	"go-monitor/pkg/util/numberutils"

	"github.com/labstack/echo/v4"
)

type MetricsController struct {
	api     *echo.Group
	useCase metrics.UseCase
}

func NewMetricsController(api *echo.Group, useCase metrics.UseCase) *MetricsController {
	return &MetricsController{api: api, useCase: useCase}
}

// InitMetricsRoutes initializes performance metrics routes
func (controller *MetricsController) InitMetricsRoutes() {
	controller.api.GET("/metrics", controller.Snapshot)
	controller.api.GET("/metrics/system", controller.SystemMetrics)
	controller.api.GET("/metrics/prometheus", controller.Prometheus)
}

// Snapshot godoc
// @Summary Get performance metrics
// @Description Full performance snapshot with HTTP, database, cache, external API and system sections
// @Tags metrics
// @Produce json
// @Param top query int false "Number of slowest endpoints to include"
// @Success 200 {object} model.MetricsSnapshot "Performance snapshot"
// @Router /metrics [get]
func (controller *MetricsController) Snapshot(c echo.Context) error {
	top := numberutils.ClampInt(numberutils.ToIntWithDefault(c.QueryParam("top"), 0), 0, 100)
	return c.JSON(http.StatusOK, controller.useCase.Snapshot(top))
}

// SystemMetrics godoc
// @Summary Get system metrics
// @Description Freshly sampled memory, CPU, goroutine and GC metrics
// @Tags metrics
// @Produce json
// @Success 200 {object} model.SystemMetrics "System resource metrics"
// @Router /metrics/system [get]
func (controller *MetricsController) SystemMetrics(c echo.Context) error {
	return c.JSON(http.StatusOK, controller.useCase.SystemMetrics())
}

// Prometheus godoc
// @Summary Get metrics in Prometheus format
// @Description Text exposition of the collected metrics for scraping
// @Tags metrics
// @Produce plain
// @Success 200 {string} string "Prometheus text exposition"
// @Router /metrics/prometheus [get]
func (controller *MetricsController) Prometheus(c echo.Context) error {
	return c.String(http.StatusOK, controller.useCase.Prometheus())
}
