package web

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/render"
	"github.com/HSouheill/apre_backend/views"
)

// ReportAPI is the reports client the pages call
type ReportAPI interface {
	views.SalesAPI
	views.AgentPerformanceAPI
	views.CustomerFeedbackAPI
}

type field struct {
	Name    string
	Label   string
	Kind    string
	Value   string
	Options []views.Option
}

type header struct {
	Label string
	Link  string
	Dir   string
}

type tableData struct {
	Title   string
	Headers []header
	Rows    [][]string
}

type chartData struct {
	Label string
	Bars  []render.Bar
}

type page struct {
	Heading string
	Path    string
	Fields  []field
	Error   string
	Table   *tableData
	Chart   *chartData
}

type link struct {
	Heading string
	Path    string
}

type section struct {
	Name  string
	Pages []link
}

var sections = []section{
	{Name: "Sales", Pages: []link{
		{"Sales by Region", "/app/sales/by-region"},
		{"Sales by Month", "/app/sales/by-month"},
		{"Sales by Category and Customer", "/app/sales/by-category-and-customer"},
	}},
	{Name: "Agent Performance", Pages: []link{
		{"Call Duration by Date Range", "/app/agent-performance/call-duration"},
		{"Agent Performance by Metric Type", "/app/agent-performance/by-metric-type"},
	}},
	{Name: "Customer Feedback", Pages: []link{
		{"Channel Rating by Month", "/app/customer-feedback/channel-rating"},
		{"Feedback by Product", "/app/customer-feedback/by-product"},
	}},
}

// Pages serves the server-rendered report screens under /app
type Pages struct {
	api    ReportAPI
	logger logrus.FieldLogger
}

func NewPages(api ReportAPI, logger logrus.FieldLogger) *Pages {
	return &Pages{api: api, logger: logger}
}

// Register installs the template renderer and mounts the report pages
func (p *Pages) Register(e *echo.Echo) error {
	renderer, err := NewRenderer()
	if err != nil {
		return err
	}
	e.Renderer = renderer

	g := e.Group("/app")
	g.GET("", p.Index)
	g.GET("/sales/by-region", p.SalesByRegion)
	g.GET("/sales/by-month", p.SalesByMonth)
	g.GET("/sales/by-category-and-customer", p.SalesByCategoryAndCustomer)
	g.GET("/agent-performance/call-duration", p.CallDuration)
	g.GET("/agent-performance/by-metric-type", p.AgentPerformanceByMetricType)
	g.GET("/customer-feedback/channel-rating", p.ChannelRating)
	g.GET("/customer-feedback/by-product", p.FeedbackByProduct)
	return nil
}

func (p *Pages) Index(c echo.Context) error {
	return c.Render(http.StatusOK, "index.html", sections)
}

func (p *Pages) SalesByRegion(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewSalesByRegion(p.api, p.logger)
	pg := &page{Heading: "Sales by Region", Path: c.Request().URL.Path}

	if err := v.LoadOptions(ctx); err != nil {
		pg.Error = "Error loading regions"
	}
	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{{Name: "region", Label: "Region", Value: v.Form.Region, Options: v.Regions}}
	if ok {
		pg.Chart = chartView(v.Chart, pg)
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) SalesByMonth(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewSalesByMonth(p.api, p.logger)
	pg := &page{Heading: "Sales by Month", Path: c.Request().URL.Path}

	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{{Name: "month", Label: "Month", Value: v.Form.Month, Options: v.Months()}}
	if ok {
		pg.Table = tableView(c, v.Table())
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) SalesByCategoryAndCustomer(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewSalesByCategoryAndCustomer(p.api, p.logger)
	pg := &page{Heading: "Sales by Category and Customer", Path: c.Request().URL.Path}

	if err := v.LoadOptions(ctx); err != nil {
		pg.Error = "Error loading categories and customers"
	}
	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{
		{Name: "category", Label: "Category", Value: v.Form.Category, Options: v.Categories},
		{Name: "customer", Label: "Customer", Value: v.Form.Customer, Options: v.Customers},
	}
	if ok {
		pg.Table = tableView(c, v.Table())
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) CallDuration(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewCallDurationByDateRange(p.api, p.logger)
	pg := &page{Heading: "Call Duration by Date Range", Path: c.Request().URL.Path}

	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{
		{Name: "startDate", Label: "Start Date", Kind: "date", Value: v.Form.StartDate},
		{Name: "endDate", Label: "End Date", Kind: "date", Value: v.Form.EndDate},
	}
	if ok {
		pg.Chart = chartView(v.Chart, pg)
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) AgentPerformanceByMetricType(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewAgentPerformanceByMetricType(p.api, p.logger)
	pg := &page{Heading: "Agent Performance by Metric Type", Path: c.Request().URL.Path}

	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{{Name: "metricType", Label: "Metric Type", Value: v.Form.MetricType, Options: v.MetricTypes()}}
	if ok {
		pg.Table = tableView(c, v.Table())
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) ChannelRating(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewChannelRatingByMonth(p.api, p.logger)
	pg := &page{Heading: "Channel Rating by Month", Path: c.Request().URL.Path}

	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{{Name: "month", Label: "Month", Value: v.Form.Month, Options: v.Months()}}
	if ok {
		pg.Chart = chartView(v.Chart, pg)
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

func (p *Pages) FeedbackByProduct(c echo.Context) error {
	ctx := c.Request().Context()
	v := views.NewFeedbackByProduct(p.api, p.logger)
	pg := &page{Heading: "Feedback by Product", Path: c.Request().URL.Path}

	if err := v.LoadOptions(ctx); err != nil {
		pg.Error = "Error loading products"
	}
	ok := bindAndSubmit(c, &v.Form, func() error { return v.Submit(ctx) }, pg)
	pg.Fields = []field{{Name: "product", Label: "Product", Value: v.Form.Product, Options: v.Products}}
	if ok {
		pg.Table = tableView(c, v.Table())
	}
	return c.Render(http.StatusOK, "report.html", pg)
}

// bindAndSubmit binds the query string into form and submits once any form
// parameter is present. It reports whether a fresh result is available.
func bindAndSubmit(c echo.Context, form interface{}, submit func() error, pg *page) bool {
	if !hasFormParams(c.QueryParams()) {
		return false
	}
	if err := c.Bind(form); err != nil {
		pg.Error = "Invalid request parameters"
		return false
	}
	if err := submit(); err != nil {
		if errors.Is(err, views.ErrIncompleteForm) {
			pg.Error = err.Error()
		} else {
			pg.Error = "Error fetching data from server"
		}
		return false
	}
	return true
}

// hasFormParams ignores the table sort keys, which never fill a form field
func hasFormParams(q url.Values) bool {
	for key := range q {
		if key != "sort" && key != "dir" {
			return true
		}
	}
	return false
}

func chartView(build func() (*render.Chart, error), pg *page) *chartData {
	chart, err := build()
	if err != nil {
		pg.Error = err.Error()
		return nil
	}
	return &chartData{Label: chart.Label, Bars: chart.Bars()}
}

// tableView applies the sort=<column>&dir=asc|desc query and links every
// sortable header to its next direction
func tableView[R render.Record](c echo.Context, t *render.Table[R]) *tableData {
	if key := c.QueryParam("sort"); key != "" {
		if err := t.ToggleSort(key); err == nil && c.QueryParam("dir") == render.Descending.String() {
			_ = t.ToggleSort(key)
		}
	}

	state := t.SortState()
	columns := t.Columns()
	headers := make([]header, len(columns))
	for i, col := range columns {
		headers[i] = header{Label: render.Header(col)}
		if !t.IsSortable(col) {
			continue
		}
		next := render.Ascending
		if state.Column == col {
			headers[i].Dir = state.Direction.String()
			if state.Direction == render.Ascending {
				next = render.Descending
			}
		}
		q := url.Values{}
		for k, vs := range c.QueryParams() {
			q[k] = vs
		}
		q.Set("sort", col)
		q.Set("dir", next.String())
		headers[i].Link = c.Request().URL.Path + "?" + q.Encode()
	}

	return &tableData{Title: t.Title, Headers: headers, Rows: t.Cells()}
}
