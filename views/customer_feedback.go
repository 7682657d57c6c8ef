package views

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/render"
	"github.com/HSouheill/apre_backend/utils"
)

type ChannelRatingForm struct {
	Month string `query:"month" validate:"required,month"`
}

func (f ChannelRatingForm) Invalid() []string { return invalidFields(f) }
func (f ChannelRatingForm) Submittable() bool { return len(f.Invalid()) == 0 }

// ChannelRatingByMonth charts the average rating of each channel in one month
type ChannelRatingByMonth struct {
	report[[]models.ChannelRatingSeries]
	Form ChannelRatingForm
	api  CustomerFeedbackAPI
}

func NewChannelRatingByMonth(api CustomerFeedbackAPI, logger logrus.FieldLogger) *ChannelRatingByMonth {
	return &ChannelRatingByMonth{
		report: newReport[[]models.ChannelRatingSeries]("channel-rating-by-month", logger),
		api:    api,
	}
}

func (v *ChannelRatingByMonth) Months() []Option { return MonthOptions() }

func (v *ChannelRatingByMonth) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.ChannelRatingSeries, error) {
		month, _ := utils.ParseMonth(v.Form.Month)
		return v.api.ChannelRatingByMonth(ctx, month)
	})
}

func (v *ChannelRatingByMonth) Title() string {
	month, err := utils.ParseMonth(v.Form.Month)
	if err != nil {
		return "Average Rating by Channel"
	}
	return "Average Rating by Channel for " + models.MonthName(month)
}

func (v *ChannelRatingByMonth) Results() []models.ChannelRatingSeries { return v.result }

func (v *ChannelRatingByMonth) Chart() (*render.Chart, error) {
	var series models.ChannelRatingSeries
	if len(v.result) > 0 {
		series = v.result[0]
	}
	return render.NewChart(render.ChartBar, "Average Rating", series.RatingAvg, series.Channels)
}

type FeedbackByProductForm struct {
	Product string `query:"product" validate:"required"`
}

func (f FeedbackByProductForm) Invalid() []string { return invalidFields(f) }
func (f FeedbackByProductForm) Submittable() bool { return len(f.Invalid()) == 0 }

// FeedbackColumns are the fields shown by the feedback-by-product table
var FeedbackColumns = []string{
	"region", "category", "channel", "salesperson", "customer",
	"feedbackType", "feedbackText", "feedbackSource", "feedbackStatus",
}

// FeedbackByProduct tabulates the feedback left for one product
type FeedbackByProduct struct {
	report[[]models.ProductFeedback]
	Form     FeedbackByProductForm
	Products []Option
	api      CustomerFeedbackAPI
}

func NewFeedbackByProduct(api CustomerFeedbackAPI, logger logrus.FieldLogger) *FeedbackByProduct {
	return &FeedbackByProduct{
		report: newReport[[]models.ProductFeedback]("feedback-by-product", logger),
		api:    api,
	}
}

func (v *FeedbackByProduct) LoadOptions(ctx context.Context) error {
	products, err := v.api.Products(ctx)
	if err != nil {
		return v.loadFailed(err, "products")
	}
	v.Products = stringOptions(products)
	return nil
}

func (v *FeedbackByProduct) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.ProductFeedback, error) {
		return v.api.FeedbackByProduct(ctx, v.Form.Product)
	})
}

func (v *FeedbackByProduct) Title() string { return "Feedback by Product Data" }

func (v *FeedbackByProduct) Results() []models.ProductFeedback { return v.result }

func (v *FeedbackByProduct) Table() *render.Table[models.ProductFeedback] {
	return render.NewTable(v.Title(), v.result, FeedbackColumns, FeedbackColumns...)
}
