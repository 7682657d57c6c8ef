package views

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/render"
)

var errServer = errors.New("reports API error: status 500")

type fakeAPI struct {
	err   error
	calls []string

	month      int
	start, end time.Time

	monthly  []models.MonthlySale
	totals   []models.SalespersonTotal
	duration []models.CallDurationSeries
	ratings  []models.ChannelRatingSeries
	metrics  []models.AgentMetric
	feedback []models.ProductFeedback
}

func (f *fakeAPI) record(name string) error {
	f.calls = append(f.calls, name)
	return f.err
}

func (f *fakeAPI) Regions(ctx context.Context) ([]string, error) {
	return []string{"North", "South"}, f.record("regions")
}

func (f *fakeAPI) Categories(ctx context.Context) ([]string, error) {
	return []string{"Electronics"}, f.record("categories")
}

func (f *fakeAPI) Customers(ctx context.Context) ([]string, error) {
	return []string{"Acme Corp"}, f.record("customers")
}

func (f *fakeAPI) SalesByRegion(ctx context.Context, region string) ([]models.SalespersonTotal, error) {
	return f.totals, f.record("sales-by-region:" + region)
}

func (f *fakeAPI) SalesByMonth(ctx context.Context, month int) ([]models.MonthlySale, error) {
	f.month = month
	return f.monthly, f.record("sales-by-month")
}

func (f *fakeAPI) SalesByCategoryAndCustomer(ctx context.Context, category, customer string) ([]models.CategoryCustomerSale, error) {
	return nil, f.record("sales-by-category-and-customer:" + category + "/" + customer)
}

func (f *fakeAPI) CallDurationByDateRange(ctx context.Context, start, end time.Time) ([]models.CallDurationSeries, error) {
	f.start, f.end = start, end
	return f.duration, f.record("call-duration")
}

func (f *fakeAPI) PerformanceByMetricType(ctx context.Context, metricType string) ([]models.AgentMetric, error) {
	return f.metrics, f.record("metric:" + metricType)
}

func (f *fakeAPI) ChannelRatingByMonth(ctx context.Context, month int) ([]models.ChannelRatingSeries, error) {
	f.month = month
	return f.ratings, f.record("channel-rating")
}

func (f *fakeAPI) Products(ctx context.Context) ([]string, error) {
	return []string{"Laptop Pro"}, f.record("products")
}

func (f *fakeAPI) FeedbackByProduct(ctx context.Context, product string) ([]models.ProductFeedback, error) {
	return f.feedback, f.record("feedback:" + product)
}

func TestIncompleteFormIssuesNoRequest(t *testing.T) {
	api := &fakeAPI{}
	logger, _ := test.NewNullLogger()

	byMonth := NewSalesByMonth(api, logger)
	err := byMonth.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm)
	assert.False(t, byMonth.Form.Submittable())

	pair := NewSalesByCategoryAndCustomer(api, logger)
	pair.Form.Category = "Electronics"
	err = pair.Submit(context.Background())
	assert.ErrorIs(t, err, ErrIncompleteForm)
	assert.Equal(t, []string{"customer"}, pair.Form.Invalid())

	assert.Empty(t, api.calls)
	assert.Equal(t, 1, byMonth.Submissions())
	assert.Equal(t, 1, pair.Submissions())
}

func TestFormsRejectInvalidValues(t *testing.T) {
	assert.False(t, SalesByMonthForm{Month: "13"}.Submittable())
	assert.False(t, ChannelRatingForm{Month: "zero"}.Submittable())
	assert.True(t, ChannelRatingForm{Month: "2"}.Submittable())

	form := CallDurationForm{StartDate: "2023-01-01", EndDate: "31/01/2023"}
	assert.Equal(t, []string{"endDate"}, form.Invalid())
	assert.ElementsMatch(t, []string{"startDate", "endDate"}, CallDurationForm{}.Invalid())
	assert.Empty(t, MetricTypeForm{MetricType: models.MetricSalesConversion}.Invalid())
}

func TestSalesByMonthSubmit(t *testing.T) {
	api := &fakeAPI{monthly: []models.MonthlySale{{Month: "December", Region: "North", Amount: 10}}}
	view := NewSalesByMonth(api, nil)
	view.Form.Month = "12"

	require.NoError(t, view.Submit(context.Background()))
	assert.Equal(t, 12, api.month)
	assert.Equal(t, []string{"sales-by-month"}, api.calls)
	assert.Equal(t, "Sales for December", view.Title())

	table := view.Table()
	assert.Equal(t, "Sales for December", table.Title)
	assert.Equal(t, []string{"region", "product", "category", "salesperson", "channel", "amount"}, table.Columns())
	assert.ErrorIs(t, table.ToggleSort("amount"), render.ErrColumnNotSortable)
	assert.Len(t, view.Months(), 12)
}

func TestFailedSubmitKeepsPreviousResult(t *testing.T) {
	logger, hook := test.NewNullLogger()
	api := &fakeAPI{metrics: []models.AgentMetric{{AgentID: 1001, Value: 90}}}
	view := NewAgentPerformanceByMetricType(api, logger)
	view.Form.MetricType = models.MetricCustomerSatisfaction

	require.NoError(t, view.Submit(context.Background()))
	require.Len(t, view.Results(), 1)

	api.err = errServer
	api.metrics = nil
	err := view.Submit(context.Background())
	assert.ErrorIs(t, err, errServer)
	assert.Equal(t, errServer, view.Err())
	assert.Len(t, view.Results(), 1, "previous rows stay displayed")
	assert.Equal(t, 2, view.Submissions())
	assert.Equal(t, []string{"metric:Customer Satisfaction", "metric:Customer Satisfaction"}, api.calls)

	entry := hook.LastEntry()
	require.NotNil(t, entry)
	assert.Equal(t, logrus.ErrorLevel, entry.Level)
	assert.Equal(t, "agent-performance-by-metric-type", entry.Data["report"])

	api.err = nil
	require.NoError(t, view.Submit(context.Background()))
	assert.Empty(t, view.Results())
	assert.NoError(t, view.Err())
}

func TestFirstFailureLeavesEmptyResult(t *testing.T) {
	logger, _ := test.NewNullLogger()
	view := NewFeedbackByProduct(&fakeAPI{err: errServer}, logger)
	view.Form.Product = "Laptop Pro"

	assert.Error(t, view.Submit(context.Background()))
	assert.Empty(t, view.Results())
	assert.Zero(t, view.Table().Len())
}

func TestLoadOptions(t *testing.T) {
	api := &fakeAPI{}
	region := NewSalesByRegion(api, nil)
	require.NoError(t, region.LoadOptions(context.Background()))
	assert.Equal(t, []Option{{Value: "North", Label: "North"}, {Value: "South", Label: "South"}}, region.Regions)

	pair := NewSalesByCategoryAndCustomer(api, nil)
	require.NoError(t, pair.LoadOptions(context.Background()))
	assert.Len(t, pair.Categories, 1)
	assert.Len(t, pair.Customers, 1)

	product := NewFeedbackByProduct(api, nil)
	require.NoError(t, product.LoadOptions(context.Background()))
	assert.Equal(t, "Laptop Pro", product.Products[0].Value)
	assert.Equal(t, []string{"regions", "categories", "customers", "products"}, api.calls)
}

func TestLoadOptionsFailure(t *testing.T) {
	logger, hook := test.NewNullLogger()
	pair := NewSalesByCategoryAndCustomer(&fakeAPI{err: errServer}, logger)

	err := pair.LoadOptions(context.Background())
	assert.ErrorIs(t, err, errServer)
	assert.Empty(t, pair.Categories)
	assert.Empty(t, pair.Customers)
	assert.Len(t, hook.AllEntries(), 2)
}

func TestSalesByRegionChart(t *testing.T) {
	api := &fakeAPI{totals: []models.SalespersonTotal{{Salesperson: "Alice", TotalSales: 40}, {Salesperson: "Bob", TotalSales: 80}}}
	view := NewSalesByRegion(api, nil)
	view.Form.Region = "North"
	require.NoError(t, view.Submit(context.Background()))
	assert.Equal(t, []string{"sales-by-region:North"}, api.calls)

	chart, err := view.Chart()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob"}, chart.Labels())
	assert.Equal(t, 50.0, chart.Bars()[0].Percent)
}

func TestCallDurationChart(t *testing.T) {
	api := &fakeAPI{duration: []models.CallDurationSeries{{Agents: []string{"Ann", "Ben"}, CallDurations: []float64{120, 60}}}}
	view := NewCallDurationByDateRange(api, nil)
	view.Form = CallDurationForm{StartDate: "2023-01-01", EndDate: "2023-01-31"}

	require.NoError(t, view.Submit(context.Background()))
	assert.Equal(t, time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC), api.start)
	assert.Equal(t, time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC), api.end)

	chart, err := view.Chart()
	require.NoError(t, err)
	assert.Equal(t, 2, chart.Len())
	assert.Equal(t, "Call Duration by Agent from 2023-01-01 to 2023-01-31", view.Title())
}

func TestChartOfMismatchedSeries(t *testing.T) {
	api := &fakeAPI{ratings: []models.ChannelRatingSeries{{Channels: []string{"Email", "Phone"}, RatingAvg: []float64{4}}}}
	view := NewChannelRatingByMonth(api, nil)
	view.Form.Month = "2"

	require.NoError(t, view.Submit(context.Background()))
	assert.Equal(t, 2, api.month)
	assert.Equal(t, "Average Rating by Channel for February", view.Title())

	_, err := view.Chart()
	assert.ErrorIs(t, err, render.ErrSeriesLengthMismatch)
}

func TestEmptySeriesChart(t *testing.T) {
	view := NewChannelRatingByMonth(&fakeAPI{ratings: []models.ChannelRatingSeries{}}, nil)
	view.Form.Month = "7"
	require.NoError(t, view.Submit(context.Background()))

	chart, err := view.Chart()
	require.NoError(t, err)
	assert.Zero(t, chart.Len())
}

func TestTitles(t *testing.T) {
	pair := NewSalesByCategoryAndCustomer(&fakeAPI{}, nil)
	pair.Form = SalesByCategoryCustomerForm{Category: "Electronics", Customer: "Acme Corp"}
	assert.Equal(t, "Sales for Electronics Acme Corp", pair.Title())

	metric := NewAgentPerformanceByMetricType(&fakeAPI{}, nil)
	metric.Form.MetricType = models.MetricSalesConversion
	assert.Equal(t, "Agent Performance for Sales Conversion", metric.Title())
	assert.Len(t, metric.MetricTypes(), 2)

	assert.Equal(t, "Feedback by Product Data", NewFeedbackByProduct(&fakeAPI{}, nil).Title())
	assert.Equal(t, "Sales for ", NewSalesByMonth(&fakeAPI{}, nil).Title())
}

func TestFeedbackTableSortsEveryColumn(t *testing.T) {
	api := &fakeAPI{feedback: []models.ProductFeedback{{Region: "West"}, {Region: "East"}}}
	view := NewFeedbackByProduct(api, nil)
	view.Form.Product = "Laptop Pro"
	require.NoError(t, view.Submit(context.Background()))

	table := view.Table()
	for _, col := range FeedbackColumns {
		assert.True(t, table.IsSortable(col), col)
	}
	require.NoError(t, table.ToggleSort("region"))
	assert.Equal(t, "East", table.Rows()[0].Region)
}
