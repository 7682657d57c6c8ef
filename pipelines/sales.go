package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SalesByRegion totals sales per salesperson within one region
func SalesByRegion(region string) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{"region": region}),
		stage("$group", bson.M{
			"_id":        "$salesperson",
			"totalSales": bson.M{"$sum": "$amount"},
		}),
		stage("$project", bson.M{
			"_id":         0,
			"salesperson": "$_id",
			"totalSales":  1,
		}),
		stage("$sort", bson.D{{Key: "salesperson", Value: 1}}),
	}
}

// SalesByMonth selects sales whose date falls in the given calendar month of any year
func SalesByMonth(month int) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{
			"$expr": bson.M{"$eq": bson.A{bson.M{"$month": "$date"}, month}},
		}),
		stage("$project", bson.M{
			"_id":         0,
			"id":          "$_id",
			"month":       monthNameExpr("$date"),
			"region":      1,
			"product":     1,
			"category":    1,
			"customer":    1,
			"salesperson": 1,
			"channel":     1,
			"amount":      1,
		}),
	}
}

// SalesByCategoryAndCustomer selects sales matching both category and customer exactly.
// Values are wrapped in $literal so a leading "$" is never read as a field path.
func SalesByCategoryAndCustomer(category, customer string) mongo.Pipeline {
	return mongo.Pipeline{
		stage("$match", bson.M{
			"$expr": bson.M{"$and": bson.A{
				bson.M{"$eq": bson.A{"$category", bson.M{"$literal": category}}},
				bson.M{"$eq": bson.A{"$customer", bson.M{"$literal": customer}}},
			}},
		}),
		stage("$project", bson.M{
			"_id":         0,
			"id":          "$_id",
			"date":        1,
			"region":      1,
			"product":     1,
			"salesperson": 1,
			"channel":     1,
			"amount":      1,
		}),
	}
}
