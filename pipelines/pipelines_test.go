package pipelines

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

func operators(p mongo.Pipeline) []string {
	ops := make([]string, len(p))
	for i, s := range p {
		ops[i] = s[0].Key
	}
	return ops
}

func stageValue(t *testing.T, p mongo.Pipeline, i int) bson.M {
	t.Helper()
	require.Greater(t, len(p), i)
	v, ok := p[i][0].Value.(bson.M)
	require.True(t, ok, "stage %d is %T", i, p[i][0].Value)
	return v
}

func TestSalesByRegion(t *testing.T) {
	p := SalesByRegion("North")
	assert.Equal(t, []string{"$match", "$group", "$project", "$sort"}, operators(p))
	assert.Equal(t, bson.M{"region": "North"}, stageValue(t, p, 0))
	assert.Equal(t, bson.M{"$sum": "$amount"}, stageValue(t, p, 1)["totalSales"])
	assert.Equal(t, "$salesperson", stageValue(t, p, 1)["_id"])
	assert.Equal(t, bson.D{{Key: "salesperson", Value: 1}}, p[3][0].Value)
}

func TestSalesByMonth(t *testing.T) {
	p := SalesByMonth(12)
	assert.Equal(t, []string{"$match", "$project"}, operators(p))

	match := stageValue(t, p, 0)
	assert.Equal(t, bson.M{"$eq": bson.A{bson.M{"$month": "$date"}, 12}}, match["$expr"])

	project := stageValue(t, p, 1)
	assert.Equal(t, 0, project["_id"])
	assert.Equal(t, "$_id", project["id"])
	for _, f := range []string{"region", "product", "category", "customer", "salesperson", "channel", "amount"} {
		assert.Equal(t, 1, project[f], f)
	}

	monthExpr := project["month"].(bson.M)["$arrayElemAt"].(bson.A)
	names := monthExpr[0].(bson.M)["$literal"].(bson.A)
	require.Len(t, names, 13)
	assert.Equal(t, "", names[0])
	assert.Equal(t, "December", names[12])
	assert.Equal(t, bson.M{"$month": "$date"}, monthExpr[1])
}

func TestSalesByCategoryAndCustomer(t *testing.T) {
	p := SalesByCategoryAndCustomer("Electronics", "Acme Corp")
	assert.Equal(t, []string{"$match", "$project"}, operators(p))

	want := bson.M{"$and": bson.A{
		bson.M{"$eq": bson.A{"$category", bson.M{"$literal": "Electronics"}}},
		bson.M{"$eq": bson.A{"$customer", bson.M{"$literal": "Acme Corp"}}},
	}}
	assert.Equal(t, want, stageValue(t, p, 0)["$expr"])

	project := stageValue(t, p, 1)
	assert.NotContains(t, project, "category")
	assert.NotContains(t, project, "customer")
	assert.Equal(t, 1, project["date"])
}

func TestSalesByCategoryAndCustomerLiteralValues(t *testing.T) {
	p := SalesByCategoryAndCustomer("$region", "$salesperson")
	and := stageValue(t, p, 0)["$expr"].(bson.M)["$and"].(bson.A)
	assert.Equal(t, bson.M{"$literal": "$region"}, and[0].(bson.M)["$eq"].(bson.A)[1])
}

func TestCallDurationByDateRange(t *testing.T) {
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)
	p := CallDurationByDateRange(start, end)

	assert.Equal(t, []string{"$match", "$lookup", "$unwind", "$group", "$project", "$sort", "$group", "$project"}, operators(p))
	assert.Equal(t, bson.M{"date": bson.M{"$gte": start, "$lte": end}}, stageValue(t, p, 0))
	assert.Equal(t, "agents", stageValue(t, p, 1)["from"])
	assert.Equal(t, "$agentDetails", p[2][0].Value)
	assert.Equal(t, "$agentDetails.name", stageValue(t, p, 3)["_id"])

	final := stageValue(t, p, 7)
	assert.Equal(t, bson.M{"_id": 0, "agents": 1, "callDurations": 1}, final)
}

func TestPerformanceByMetricTypeUsesParameter(t *testing.T) {
	p := PerformanceByMetricType("Customer Satisfaction")
	assert.Equal(t, []string{"$unwind", "$match", "$project"}, operators(p))
	assert.Equal(t, bson.M{"performanceMetrics.metricType": "Customer Satisfaction"}, stageValue(t, p, 1))
	assert.Equal(t, bson.M{
		"_id":     0,
		"region":  1,
		"team":    1,
		"agentId": 1,
		"value":   "$performanceMetrics.value",
	}, stageValue(t, p, 2))
}

func TestChannelRatingByMonth(t *testing.T) {
	p := ChannelRatingByMonth(3)
	assert.Equal(t, []string{"$addFields", "$group", "$match", "$project", "$sort", "$group", "$project"}, operators(p))
	assert.Equal(t, bson.M{"_id.month": 3}, stageValue(t, p, 2))
	assert.Equal(t, bson.M{"$avg": "$rating"}, stageValue(t, p, 1)["ratingAvg"])
	assert.Equal(t, bson.M{"_id": 0, "channels": 1, "ratingAvg": 1}, stageValue(t, p, 6))
}

func TestFeedbackByProduct(t *testing.T) {
	p := FeedbackByProduct("Laptop Pro")
	assert.Equal(t, []string{"$match", "$project"}, operators(p))
	assert.Equal(t, bson.M{"product": "Laptop Pro"}, stageValue(t, p, 0))

	project := stageValue(t, p, 1)
	assert.Len(t, project, 10)
	assert.Equal(t, 0, project["_id"])
	assert.NotContains(t, project, "product")
	assert.NotContains(t, project, "rating")
	for _, f := range FeedbackProjection {
		assert.Equal(t, 1, project[f], f)
	}
}
