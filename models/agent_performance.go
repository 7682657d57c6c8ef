package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metric types recorded in agentPerformance.performanceMetrics
const (
	MetricCustomerSatisfaction = "Customer Satisfaction"
	MetricSalesConversion      = "Sales Conversion"
)

// MetricTypes is the fixed option list offered by the metric type report
var MetricTypes = []string{MetricCustomerSatisfaction, MetricSalesConversion}

type PerformanceMetric struct {
	MetricType string  `json:"metricType" bson:"metricType"`
	Value      float64 `json:"value" bson:"value"`
}

// AgentPerformance is a document of the agentPerformance collection
type AgentPerformance struct {
	ID                 primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	AgentID            int                 `json:"agentId" bson:"agentId"`
	Region             string              `json:"region" bson:"region"`
	Team               string              `json:"team" bson:"team"`
	Date               time.Time           `json:"date" bson:"date"`
	CallDuration       float64             `json:"callDuration" bson:"callDuration"`
	PerformanceMetrics []PerformanceMetric `json:"performanceMetrics" bson:"performanceMetrics"`
}

// Agent is a document of the agents collection, joined on agentId
type Agent struct {
	ID      primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	AgentID int                `json:"agentId" bson:"agentId"`
	Name    string             `json:"name" bson:"name"`
	Region  string             `json:"region,omitempty" bson:"region,omitempty"`
	Team    string             `json:"team,omitempty" bson:"team,omitempty"`
}

// CallDurationSeries holds parallel agent name and total call duration arrays
type CallDurationSeries struct {
	Agents        []string  `json:"agents" bson:"agents"`
	CallDurations []float64 `json:"callDurations" bson:"callDurations"`
}

// AgentMetric is one row of the agent-performance-by-metric-type report
type AgentMetric struct {
	Region  string  `json:"region" bson:"region"`
	Team    string  `json:"team" bson:"team"`
	AgentID int     `json:"agentId" bson:"agentId"`
	Value   float64 `json:"value" bson:"value"`
}

func (m AgentMetric) Field(key string) any {
	switch key {
	case "region":
		return m.Region
	case "team":
		return m.Team
	case "agentId":
		return m.AgentID
	case "value":
		return m.Value
	}
	return nil
}

// CallDurationQuery binds GET /agent-performance/call-duration-by-date-range
type CallDurationQuery struct {
	StartDate string `query:"startDate" validate:"required"`
	EndDate   string `query:"endDate" validate:"required"`
}

// MetricTypeQuery binds GET /agent-performance/agent-performance-by-metric-type-tabular
type MetricTypeQuery struct {
	MetricType string `query:"metricType" validate:"required"`
}
