package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func cursor(ns string, docs ...bson.D) bson.D {
	return mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, docs...)
}

func commandError() bson.D {
	return mtest.CreateCommandErrorResponse(mtest.CommandError{
		Code:    11600,
		Name:    "InterruptedAtShutdown",
		Message: "interrupted at shutdown",
	})
}

func TestSalesRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("regions are distinct and sorted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "values", Value: bson.A{"South", "North", "South", 42, "East"},
		}))

		regions, err := NewSalesRepository(mt.DB).Regions(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"East", "North", "South"}, regions)
	})

	mt.Run("sales by region decodes totals", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.sales",
			bson.D{{Key: "salesperson", Value: "Alice"}, {Key: "totalSales", Value: int32(1200)}},
			bson.D{{Key: "salesperson", Value: "Bob"}, {Key: "totalSales", Value: 310.5}},
		))

		rows, err := NewSalesRepository(mt.DB).SalesByRegion(context.Background(), "North")
		require.NoError(mt, err)
		require.Len(mt, rows, 2)
		assert.Equal(mt, "Alice", rows[0].Salesperson)
		assert.Equal(mt, 1200.0, rows[0].TotalSales)
		assert.Equal(mt, 310.5, rows[1].TotalSales)
	})

	mt.Run("sales by month decodes projected rows", func(mt *mtest.T) {
		id := primitive.NewObjectID()
		mt.AddMockResponses(cursor("apre.sales", bson.D{
			{Key: "id", Value: id},
			{Key: "month", Value: "December"},
			{Key: "region", Value: "North"},
			{Key: "product", Value: "Laptop"},
			{Key: "category", Value: "Electronics"},
			{Key: "customer", Value: "Acme Corp"},
			{Key: "salesperson", Value: "Alice"},
			{Key: "channel", Value: "Online"},
			{Key: "amount", Value: 999.99},
		}))

		rows, err := NewSalesRepository(mt.DB).SalesByMonth(context.Background(), 12)
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, id, rows[0].ID)
		assert.Equal(mt, "December", rows[0].Month)
		assert.Equal(mt, "Acme Corp", rows[0].Customer)
	})

	mt.Run("empty result is an empty slice", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.sales"))

		rows, err := NewSalesRepository(mt.DB).SalesByCategoryAndCustomer(context.Background(), "Electronics", "Nobody")
		require.NoError(mt, err)
		assert.NotNil(mt, rows)
		assert.Empty(mt, rows)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(commandError())

		_, err := NewSalesRepository(mt.DB).SalesByMonth(context.Background(), 1)
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "sales by month 1")
	})
}

func TestAgentPerformanceRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("call duration series", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.agentPerformance", bson.D{
			{Key: "agents", Value: bson.A{"Ann", "Ben"}},
			{Key: "callDurations", Value: bson.A{int32(120), int32(95)}},
		}))

		start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
		series, err := NewAgentPerformanceRepository(mt.DB).CallDurationByDateRange(context.Background(), start, start.AddDate(0, 1, 0))
		require.NoError(mt, err)
		require.Len(mt, series, 1)
		assert.Equal(mt, []string{"Ann", "Ben"}, series[0].Agents)
		assert.Equal(mt, []float64{120, 95}, series[0].CallDurations)
	})

	mt.Run("metric rows", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.agentPerformance", bson.D{
			{Key: "region", Value: "West"},
			{Key: "team", Value: "Phoenix"},
			{Key: "agentId", Value: int32(1007)},
			{Key: "value", Value: 88.5},
		}))

		rows, err := NewAgentPerformanceRepository(mt.DB).PerformanceByMetricType(context.Background(), "Sales Conversion")
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, 1007, rows[0].AgentID)
		assert.Equal(mt, 88.5, rows[0].Value)
	})

	mt.Run("command error is wrapped", func(mt *mtest.T) {
		mt.AddMockResponses(commandError())

		_, err := NewAgentPerformanceRepository(mt.DB).PerformanceByMetricType(context.Background(), "Sales Conversion")
		require.Error(mt, err)
		assert.Contains(mt, err.Error(), "Sales Conversion")
	})
}

func TestCustomerFeedbackRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("products", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{
			Key: "values", Value: bson.A{"Smartphone X", "Laptop Pro"},
		}))

		products, err := NewCustomerFeedbackRepository(mt.DB).Products(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, []string{"Laptop Pro", "Smartphone X"}, products)
	})

	mt.Run("channel rating series", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.customerFeedback", bson.D{
			{Key: "channels", Value: bson.A{"Email", "Phone"}},
			{Key: "ratingAvg", Value: bson.A{4.5, 3.25}},
		}))

		series, err := NewCustomerFeedbackRepository(mt.DB).ChannelRatingByMonth(context.Background(), 2)
		require.NoError(mt, err)
		require.Len(mt, series, 1)
		assert.Equal(mt, []string{"Email", "Phone"}, series[0].Channels)
		assert.Equal(mt, []float64{4.5, 3.25}, series[0].RatingAvg)
	})

	mt.Run("feedback by product", func(mt *mtest.T) {
		mt.AddMockResponses(cursor("apre.customerFeedback", bson.D{
			{Key: "region", Value: "East"},
			{Key: "category", Value: "Electronics"},
			{Key: "channel", Value: "Online"},
			{Key: "salesperson", Value: "Carla"},
			{Key: "customer", Value: "Acme Corp"},
			{Key: "feedbackType", Value: "Positive"},
			{Key: "feedbackText", Value: "Works great"},
			{Key: "feedbackSource", Value: "Survey"},
			{Key: "feedbackStatus", Value: "Resolved"},
		}))

		rows, err := NewCustomerFeedbackRepository(mt.DB).FeedbackByProduct(context.Background(), "Laptop Pro")
		require.NoError(mt, err)
		require.Len(mt, rows, 1)
		assert.Equal(mt, "Works great", rows[0].FeedbackText)
		assert.Equal(mt, "Resolved", rows[0].FeedbackStatus)
	})
}
