// Package pipelines builds the aggregation pipeline behind each report.
//
// Every builder is a pure function of its parameters, so a pipeline's shape
// can be checked without a database.
package pipelines

import (
	"go.mongodb.org/mongo-driver/bson"

	"github.com/HSouheill/apre_backend/models"
)

func stage(op string, value interface{}) bson.D {
	return bson.D{{Key: op, Value: value}}
}

// monthNameExpr resolves a date field to its full English month name
func monthNameExpr(dateField string) bson.M {
	names := bson.A{}
	for _, n := range models.MonthNames {
		names = append(names, n)
	}
	return bson.M{"$arrayElemAt": bson.A{
		bson.M{"$literal": names},
		bson.M{"$month": dateField},
	}}
}
