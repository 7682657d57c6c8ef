package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
)

// APIError is a non-2xx answer from the reporting API
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("reports API error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("reports API error: status %d: %s", e.StatusCode, e.Message)
}

// IsStatus reports whether err is an APIError with the given status code
func IsStatus(err error, code int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == code
}

// ReportClient calls the /reports endpoints of the Query Service
type ReportClient struct {
	baseURL    string
	httpClient *http.Client
	logger     logrus.FieldLogger
}

// NewReportClient creates a client rooted at baseURL, e.g. http://localhost:8080/api
func NewReportClient(baseURL string, timeout time.Duration, logger logrus.FieldLogger) *ReportClient {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &ReportClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// getJSON performs one GET against the reports API and decodes the body into out
func (c *ReportClient) getJSON(ctx context.Context, endpoint string, query url.Values, out interface{}) error {
	target := c.baseURL + "/reports/" + endpoint
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	c.logger.WithField("url", target).Debug("reports API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var errBody models.Response
		if json.Unmarshal(body, &errBody) == nil {
			apiErr.Message = errBody.Message
		}
		return apiErr
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to parse response from %s: %w", endpoint, err)
	}
	return nil
}

func (c *ReportClient) Regions(ctx context.Context) ([]string, error) {
	var regions []string
	err := c.getJSON(ctx, "sales/regions", nil, &regions)
	return regions, err
}

func (c *ReportClient) Categories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.getJSON(ctx, "sales/categories", nil, &categories)
	return categories, err
}

func (c *ReportClient) Customers(ctx context.Context) ([]string, error) {
	var customers []string
	err := c.getJSON(ctx, "sales/customers", nil, &customers)
	return customers, err
}

func (c *ReportClient) SalesByRegion(ctx context.Context, region string) ([]models.SalespersonTotal, error) {
	var rows []models.SalespersonTotal
	err := c.getJSON(ctx, "sales/regions/"+url.PathEscape(region), nil, &rows)
	return rows, err
}

func (c *ReportClient) SalesByMonth(ctx context.Context, month int) ([]models.MonthlySale, error) {
	var rows []models.MonthlySale
	q := url.Values{"month": {strconv.Itoa(month)}}
	err := c.getJSON(ctx, "sales/sales-by-month", q, &rows)
	return rows, err
}

func (c *ReportClient) SalesByCategoryAndCustomer(ctx context.Context, category, customer string) ([]models.CategoryCustomerSale, error) {
	var rows []models.CategoryCustomerSale
	q := url.Values{"category": {category}, "customer": {customer}}
	err := c.getJSON(ctx, "sales/sales-by-category-and-customer-tabular", q, &rows)
	return rows, err
}

func (c *ReportClient) CallDurationByDateRange(ctx context.Context, start, end time.Time) ([]models.CallDurationSeries, error) {
	var series []models.CallDurationSeries
	q := url.Values{
		"startDate": {start.UTC().Format(time.RFC3339)},
		"endDate":   {end.UTC().Format(time.RFC3339)},
	}
	err := c.getJSON(ctx, "agent-performance/call-duration-by-date-range", q, &series)
	return series, err
}

func (c *ReportClient) PerformanceByMetricType(ctx context.Context, metricType string) ([]models.AgentMetric, error) {
	var rows []models.AgentMetric
	q := url.Values{"metricType": {metricType}}
	err := c.getJSON(ctx, "agent-performance/agent-performance-by-metric-type-tabular", q, &rows)
	return rows, err
}

func (c *ReportClient) ChannelRatingByMonth(ctx context.Context, month int) ([]models.ChannelRatingSeries, error) {
	var series []models.ChannelRatingSeries
	q := url.Values{"month": {strconv.Itoa(month)}}
	err := c.getJSON(ctx, "customer-feedback/channel-rating-by-month", q, &series)
	return series, err
}

func (c *ReportClient) Products(ctx context.Context) ([]string, error) {
	var products []string
	err := c.getJSON(ctx, "customer-feedback/products", nil, &products)
	return products, err
}

func (c *ReportClient) FeedbackByProduct(ctx context.Context, product string) ([]models.ProductFeedback, error) {
	var rows []models.ProductFeedback
	q := url.Values{"product": {product}}
	err := c.getJSON(ctx, "customer-feedback/customer-feedback-by-product", q, &rows)
	return rows, err
}
