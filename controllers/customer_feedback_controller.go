package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/utils"
)

// CustomerFeedbackStore answers the customer feedback reports
type CustomerFeedbackStore interface {
	ChannelRatingByMonth(ctx context.Context, month int) ([]models.ChannelRatingSeries, error)
	Products(ctx context.Context) ([]string, error)
	FeedbackByProduct(ctx context.Context, product string) ([]models.ProductFeedback, error)
}

type CustomerFeedbackController struct {
	store   CustomerFeedbackStore
	timeout time.Duration
}

func NewCustomerFeedbackController(store CustomerFeedbackStore, timeout time.Duration) *CustomerFeedbackController {
	return &CustomerFeedbackController{store: store, timeout: orDefaultTimeout(timeout)}
}

// GetChannelRatingByMonth averages ratings per channel for one month
// (GET /api/reports/customer-feedback/channel-rating-by-month?month=1)
func (fc *CustomerFeedbackController) GetChannelRatingByMonth(c echo.Context) error {
	var q models.ChannelRatingQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}
	month, err := utils.ParseMonth(q.Month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, cancel := queryContext(c, fc.timeout)
	defer cancel()

	series, err := fc.store.ChannelRatingByMonth(ctx, month)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, series)
}

// GetProducts lists distinct products (GET /api/reports/customer-feedback/products)
func (fc *CustomerFeedbackController) GetProducts(c echo.Context) error {
	ctx, cancel := queryContext(c, fc.timeout)
	defer cancel()

	products, err := fc.store.Products(ctx)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, products)
}

// GetFeedbackByProduct lists feedback for one product
// (GET /api/reports/customer-feedback/customer-feedback-by-product?product=Laptop%20Pro)
func (fc *CustomerFeedbackController) GetFeedbackByProduct(c echo.Context) error {
	var q models.FeedbackByProductQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := queryContext(c, fc.timeout)
	defer cancel()

	rows, err := fc.store.FeedbackByProduct(ctx, q.Product)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
