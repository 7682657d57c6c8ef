// Package views holds one form-and-result model per report screen. A view
// validates its form, issues a single Query Service call on submit and turns
// the rows it got back into a render.Table or render.Chart.
package views

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/utils"
)

var ErrIncompleteForm = errors.New("form is incomplete")

// SalesAPI is the part of the reports client used by the sales views
type SalesAPI interface {
	Regions(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	Customers(ctx context.Context) ([]string, error)
	SalesByRegion(ctx context.Context, region string) ([]models.SalespersonTotal, error)
	SalesByMonth(ctx context.Context, month int) ([]models.MonthlySale, error)
	SalesByCategoryAndCustomer(ctx context.Context, category, customer string) ([]models.CategoryCustomerSale, error)
}

// AgentPerformanceAPI is the part of the reports client used by the agent views
type AgentPerformanceAPI interface {
	CallDurationByDateRange(ctx context.Context, start, end time.Time) ([]models.CallDurationSeries, error)
	PerformanceByMetricType(ctx context.Context, metricType string) ([]models.AgentMetric, error)
}

// CustomerFeedbackAPI is the part of the reports client used by the feedback views
type CustomerFeedbackAPI interface {
	ChannelRatingByMonth(ctx context.Context, month int) ([]models.ChannelRatingSeries, error)
	Products(ctx context.Context) ([]string, error)
	FeedbackByProduct(ctx context.Context, product string) ([]models.ProductFeedback, error)
}

// Option is one dropdown entry
type Option struct {
	Value string
	Label string
}

func stringOptions(values []string) []Option {
	opts := make([]Option, len(values))
	for i, v := range values {
		opts[i] = Option{Value: v, Label: v}
	}
	return opts
}

// MonthOptions lists January through December keyed by month number
func MonthOptions() []Option {
	opts := make([]Option, 0, 12)
	for m := 1; m <= 12; m++ {
		opts = append(opts, Option{Value: strconv.Itoa(m), Label: models.MonthName(m)})
	}
	return opts
}

// MetricTypeOptions lists the performance metrics agents are scored on
func MetricTypeOptions() []Option {
	return stringOptions(models.MetricTypes)
}

var formValidator = utils.NewValidator()

// invalidFields lists the query names of the form fields that fail validation
func invalidFields(form interface{}) []string {
	return formValidator.InvalidFields(form)
}

func incomplete(fields []string) error {
	return fmt.Errorf("%w: %s", ErrIncompleteForm, strings.Join(fields, ", "))
}

// report tracks submissions and the last good result of one view
type report[R any] struct {
	name        string
	logger      logrus.FieldLogger
	submissions int
	result      R
	lastErr     error
}

func newReport[R any](name string, logger logrus.FieldLogger) report[R] {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return report[R]{name: name, logger: logger}
}

// submit counts the invocation, then runs fetch once when invalid is empty.
// A failed fetch is logged and leaves the previous result in place.
func (r *report[R]) submit(ctx context.Context, invalid []string, fetch func(context.Context) (R, error)) error {
	r.submissions++
	if len(invalid) > 0 {
		return incomplete(invalid)
	}

	res, err := fetch(ctx)
	if err != nil {
		r.lastErr = err
		r.logger.WithError(err).WithField("report", r.name).Error("Error fetching data from server")
		return err
	}
	r.result = res
	r.lastErr = nil
	return nil
}

// Submissions counts every Submit call, including blocked ones
func (r *report[R]) Submissions() int {
	return r.submissions
}

// Err is the failure of the latest submit, if it reached the server
func (r *report[R]) Err() error {
	return r.lastErr
}

func (r *report[R]) loadFailed(err error, what string) error {
	r.logger.WithError(err).WithField("report", r.name).Errorf("Error loading %s", what)
	return fmt.Errorf("load %s: %w", what, err)
}
