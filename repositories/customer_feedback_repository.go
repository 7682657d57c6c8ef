package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/pipelines"
)

type CustomerFeedbackRepository struct {
	collection *mongo.Collection
}

func NewCustomerFeedbackRepository(db *mongo.Database) *CustomerFeedbackRepository {
	return &CustomerFeedbackRepository{
		collection: db.Collection(models.CustomerFeedbackCollection),
	}
}

// ChannelRatingByMonth returns zero or one series of per-channel average ratings
func (r *CustomerFeedbackRepository) ChannelRatingByMonth(ctx context.Context, month int) ([]models.ChannelRatingSeries, error) {
	series, err := aggregate[models.ChannelRatingSeries](ctx, r.collection, pipelines.ChannelRatingByMonth(month))
	if err != nil {
		return nil, fmt.Errorf("channel rating by month %d: %w", month, err)
	}
	return series, nil
}

// Products returns the distinct products that received feedback
func (r *CustomerFeedbackRepository) Products(ctx context.Context) ([]string, error) {
	products, err := distinctStrings(ctx, r.collection, "product")
	if err != nil {
		return nil, fmt.Errorf("distinct products: %w", err)
	}
	return products, nil
}

func (r *CustomerFeedbackRepository) FeedbackByProduct(ctx context.Context, product string) ([]models.ProductFeedback, error) {
	rows, err := aggregate[models.ProductFeedback](ctx, r.collection, pipelines.FeedbackByProduct(product))
	if err != nil {
		return nil, fmt.Errorf("feedback by product %q: %w", product, err)
	}
	return rows, nil
}
