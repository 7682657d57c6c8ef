package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/utils"
)

// AgentPerformanceStore answers the agent performance reports
type AgentPerformanceStore interface {
	CallDurationByDateRange(ctx context.Context, start, end time.Time) ([]models.CallDurationSeries, error)
	PerformanceByMetricType(ctx context.Context, metricType string) ([]models.AgentMetric, error)
}

type AgentPerformanceController struct {
	store   AgentPerformanceStore
	timeout time.Duration
}

func NewAgentPerformanceController(store AgentPerformanceStore, timeout time.Duration) *AgentPerformanceController {
	return &AgentPerformanceController{store: store, timeout: orDefaultTimeout(timeout)}
}

// GetCallDurationByDateRange sums call duration per agent between two dates
// (GET /api/reports/agent-performance/call-duration-by-date-range?startDate=2023-01-01&endDate=2023-01-31)
func (ac *AgentPerformanceController) GetCallDurationByDateRange(c echo.Context) error {
	var q models.CallDurationQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}

	start, err := utils.ParseReportDate(q.StartDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "startDate: "+err.Error())
	}
	end, err := utils.ParseReportDate(q.EndDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "endDate: "+err.Error())
	}

	ctx, cancel := queryContext(c, ac.timeout)
	defer cancel()

	series, err := ac.store.CallDurationByDateRange(ctx, start, end)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, series)
}

// GetPerformanceByMetricType lists agent metric values of one metric type
// (GET /api/reports/agent-performance/agent-performance-by-metric-type-tabular?metricType=Sales%20Conversion)
func (ac *AgentPerformanceController) GetPerformanceByMetricType(c echo.Context) error {
	var q models.MetricTypeQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := queryContext(c, ac.timeout)
	defer cancel()

	rows, err := ac.store.PerformanceByMetricType(ctx, q.MetricType)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
