package views

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/render"
	"github.com/HSouheill/apre_backend/utils"
)

type CallDurationForm struct {
	StartDate string `query:"startDate" validate:"required,reportdate"`
	EndDate   string `query:"endDate" validate:"required,reportdate"`
}

func (f CallDurationForm) Invalid() []string { return invalidFields(f) }
func (f CallDurationForm) Submittable() bool { return len(f.Invalid()) == 0 }

// CallDurationByDateRange charts the total call time of each agent
type CallDurationByDateRange struct {
	report[[]models.CallDurationSeries]
	Form CallDurationForm
	api  AgentPerformanceAPI
}

func NewCallDurationByDateRange(api AgentPerformanceAPI, logger logrus.FieldLogger) *CallDurationByDateRange {
	return &CallDurationByDateRange{
		report: newReport[[]models.CallDurationSeries]("call-duration-by-date-range", logger),
		api:    api,
	}
}

func (v *CallDurationByDateRange) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.CallDurationSeries, error) {
		start, _ := utils.ParseReportDate(v.Form.StartDate)
		end, _ := utils.ParseReportDate(v.Form.EndDate)
		return v.api.CallDurationByDateRange(ctx, start, end)
	})
}

func (v *CallDurationByDateRange) Title() string {
	return "Call Duration by Agent from " + v.Form.StartDate + " to " + v.Form.EndDate
}

func (v *CallDurationByDateRange) Results() []models.CallDurationSeries { return v.result }

// Chart plots the single series the report returns; no series is an empty chart
func (v *CallDurationByDateRange) Chart() (*render.Chart, error) {
	var series models.CallDurationSeries
	if len(v.result) > 0 {
		series = v.result[0]
	}
	return render.NewChart(render.ChartBar, "Call Duration", series.CallDurations, series.Agents)
}

type MetricTypeForm struct {
	MetricType string `query:"metricType" validate:"required"`
}

func (f MetricTypeForm) Invalid() []string { return invalidFields(f) }
func (f MetricTypeForm) Submittable() bool { return len(f.Invalid()) == 0 }

// AgentPerformanceByMetricType tabulates each agent's score for one metric
type AgentPerformanceByMetricType struct {
	report[[]models.AgentMetric]
	Form MetricTypeForm
	api  AgentPerformanceAPI
}

func NewAgentPerformanceByMetricType(api AgentPerformanceAPI, logger logrus.FieldLogger) *AgentPerformanceByMetricType {
	return &AgentPerformanceByMetricType{
		report: newReport[[]models.AgentMetric]("agent-performance-by-metric-type", logger),
		api:    api,
	}
}

func (v *AgentPerformanceByMetricType) MetricTypes() []Option { return MetricTypeOptions() }

func (v *AgentPerformanceByMetricType) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.AgentMetric, error) {
		return v.api.PerformanceByMetricType(ctx, v.Form.MetricType)
	})
}

func (v *AgentPerformanceByMetricType) Title() string {
	return "Agent Performance for " + v.Form.MetricType
}

func (v *AgentPerformanceByMetricType) Results() []models.AgentMetric { return v.result }

func (v *AgentPerformanceByMetricType) Table() *render.Table[models.AgentMetric] {
	columns := []string{"agentId", "value", "region", "team"}
	return render.NewTable(v.Title(), v.result, columns, columns...)
}
