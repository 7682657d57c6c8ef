package repositories

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/pipelines"
)

type AgentPerformanceRepository struct {
	collection *mongo.Collection
}

func NewAgentPerformanceRepository(db *mongo.Database) *AgentPerformanceRepository {
	return &AgentPerformanceRepository{
		collection: db.Collection(models.AgentPerformanceCollection),
	}
}

// CallDurationByDateRange returns zero or one series of per-agent call duration totals
func (r *AgentPerformanceRepository) CallDurationByDateRange(ctx context.Context, start, end time.Time) ([]models.CallDurationSeries, error) {
	series, err := aggregate[models.CallDurationSeries](ctx, r.collection, pipelines.CallDurationByDateRange(start, end))
	if err != nil {
		return nil, fmt.Errorf("call duration %s..%s: %w", start.Format(time.RFC3339), end.Format(time.RFC3339), err)
	}
	return series, nil
}

func (r *AgentPerformanceRepository) PerformanceByMetricType(ctx context.Context, metricType string) ([]models.AgentMetric, error) {
	rows, err := aggregate[models.AgentMetric](ctx, r.collection, pipelines.PerformanceByMetricType(metricType))
	if err != nil {
		return nil, fmt.Errorf("performance by metric type %q: %w", metricType, err)
	}
	return rows, nil
}
