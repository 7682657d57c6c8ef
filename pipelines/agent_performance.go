package pipelines

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/apre_backend/models"
)

// CallDurationByDateRange sums call duration per agent name for records dated
// within [start, end] and folds the result into one document of parallel arrays.
func CallDurationByDateRange(start, end time.Time) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{
			"date": bson.M{"$gte": start, "$lte": end},
		}),
		stage("$lookup", bson.M{
			"from":         models.AgentsCollection,
			"localField":   "agentId",
			"foreignField": "agentId",
			"as":           "agentDetails",
		}),
		stage("$unwind", "$agentDetails"),
		stage("$group", bson.M{
			"_id":               "$agentDetails.name",
			"totalCallDuration": bson.M{"$sum": "$callDuration"},
		}),
		stage("$project", bson.M{
			"_id":          0,
			"agent":        "$_id",
			"callDuration": "$totalCallDuration",
		}),
		// $push keeps input order, so sort first for a stable series
		stage("$sort", bson.D{{Key: "agent", Value: 1}}),
		stage("$group", bson.M{
			"_id":           nil,
			"agents":        bson.M{"$push": "$agent"},
			"callDurations": bson.M{"$push": "$callDuration"},
		}),
		stage("$project", bson.M{
			"_id":           0,
			"agents":        1,
			"callDurations": 1,
		}),
	}
}

// PerformanceByMetricType flattens performanceMetrics and keeps entries of one metric type
func PerformanceByMetricType(metricType string) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$unwind", "$performanceMetrics"),
		stage("$match", bson.M{
			"performanceMetrics.metricType": metricType,
		}),
		stage("$project", bson.M{
			"_id":     0,
			"region":  1,
			"team":    1,
			"agentId": 1,
			"value":   "$performanceMetrics.value",
		}),
	}
}
