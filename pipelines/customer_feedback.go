package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ChannelRatingByMonth averages ratings per channel for one calendar month and
// folds the result into one document of parallel channel/average arrays.
func ChannelRatingByMonth(month int) mongo.Pipeline {
	return mongo.Pipeline{
		// feedback dates may be stored as strings
		stage("$addFields", bson.M{
			"date": bson.M{"$toDate": "$date"},
		}),
		stage("$group", bson.M{
			"_id": bson.M{
				"channel": "$channel",
				"month":   bson.M{"$month": "$date"},
			},
			"ratingAvg": bson.M{"$avg": "$rating"},
		}),
		stage("$match", bson.M{
			"_id.month": month,
		}),
		stage("$project", bson.M{
			"_id":       0,
			"channel":   "$_id.channel",
			"ratingAvg": 1,
		}),
		stage("$sort", bson.D{{Key: "channel", Value: 1}}),
		stage("$group", bson.M{
			"_id":       nil,
			"channels":  bson.M{"$push": "$channel"},
			"ratingAvg": bson.M{"$push": "$ratingAvg"},
		}),
		stage("$project", bson.M{
			"_id":       0,
			"channels":  1,
			"ratingAvg": 1,
		}),
	}
}

// FeedbackProjection lists the fields returned by FeedbackByProduct
var FeedbackProjection = []string{
	"region", "category", "channel", "salesperson", "customer",
	"feedbackType", "feedbackText", "feedbackSource", "feedbackStatus",
}

// FeedbackByProduct selects feedback for one product
func FeedbackByProduct(product string) mongo.Pipeline {
	project := bson.M{"_id": 0}
	for _, f := range FeedbackProjection {
		project[f] = 1
	}
	return mongo.Pipeline{
		stage("$match", bson.M{"product": product}),
		stage("$project", project),
	}
}
