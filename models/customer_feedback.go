package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CustomerFeedback is a document of the customerFeedback collection
type CustomerFeedback struct {
	ID             primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date           time.Time          `json:"date" bson:"date"`
	Region         string             `json:"region" bson:"region"`
	Category       string             `json:"category" bson:"category"`
	Channel        string             `json:"channel" bson:"channel"`
	Product        string             `json:"product" bson:"product"`
	Salesperson    string             `json:"salesperson" bson:"salesperson"`
	Customer       string             `json:"customer" bson:"customer"`
	Rating         float64            `json:"rating" bson:"rating"`
	FeedbackType   string             `json:"feedbackType" bson:"feedbackType"`
	FeedbackText   string             `json:"feedbackText" bson:"feedbackText"`
	FeedbackSource string             `json:"feedbackSource" bson:"feedbackSource"`
	FeedbackStatus string             `json:"feedbackStatus" bson:"feedbackStatus"`
}

// ChannelRatingSeries holds parallel channel and average rating arrays
type ChannelRatingSeries struct {
	Channels  []string  `json:"channels" bson:"channels"`
	RatingAvg []float64 `json:"ratingAvg" bson:"ratingAvg"`
}

// ProductFeedback is one row of the customer-feedback-by-product report.
// The product itself is not part of the row.
type ProductFeedback struct {
	Region         string `json:"region" bson:"region"`
	Category       string `json:"category" bson:"category"`
	Channel        string `json:"channel" bson:"channel"`
	Salesperson    string `json:"salesperson" bson:"salesperson"`
	Customer       string `json:"customer" bson:"customer"`
	FeedbackType   string `json:"feedbackType" bson:"feedbackType"`
	FeedbackText   string `json:"feedbackText" bson:"feedbackText"`
	FeedbackSource string `json:"feedbackSource" bson:"feedbackSource"`
	FeedbackStatus string `json:"feedbackStatus" bson:"feedbackStatus"`
}

func (f ProductFeedback) Field(key string) any {
	switch key {
	case "region":
		return f.Region
	case "category":
		return f.Category
	case "channel":
		return f.Channel
	case "salesperson":
		return f.Salesperson
	case "customer":
		return f.Customer
	case "feedbackType":
		return f.FeedbackType
	case "feedbackText":
		return f.FeedbackText
	case "feedbackSource":
		return f.FeedbackSource
	case "feedbackStatus":
		return f.FeedbackStatus
	}
	return nil
}

// ChannelRatingQuery binds GET /customer-feedback/channel-rating-by-month
type ChannelRatingQuery struct {
	Month string `query:"month" validate:"required"`
}

// FeedbackByProductQuery binds GET /customer-feedback/customer-feedback-by-product
type FeedbackByProductQuery struct {
	Product string `query:"product" validate:"required"`
}
