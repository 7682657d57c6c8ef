package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/utils"
)

// SalesStore answers the sales reports
type SalesStore interface {
	Regions(ctx context.Context) ([]string, error)
	Categories(ctx context.Context) ([]string, error)
	Customers(ctx context.Context) ([]string, error)
	SalesByRegion(ctx context.Context, region string) ([]models.SalespersonTotal, error)
	SalesByMonth(ctx context.Context, month int) ([]models.MonthlySale, error)
	SalesByCategoryAndCustomer(ctx context.Context, category, customer string) ([]models.CategoryCustomerSale, error)
}

type SalesController struct {
	store   SalesStore
	timeout time.Duration
}

func NewSalesController(store SalesStore, timeout time.Duration) *SalesController {
	return &SalesController{store: store, timeout: orDefaultTimeout(timeout)}
}

// GetRegions lists distinct sales regions (GET /api/reports/sales/regions)
func (sc *SalesController) GetRegions(c echo.Context) error {
	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	regions, err := sc.store.Regions(ctx)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, regions)
}

// GetSalesByRegion totals sales per salesperson (GET /api/reports/sales/regions/:region)
func (sc *SalesController) GetSalesByRegion(c echo.Context) error {
	region, err := pathParam(c, "region")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "region parameter is malformed")
	}
	if region == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "region parameter is missing")
	}

	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	rows, err := sc.store.SalesByRegion(ctx, region)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GetCategories lists distinct sales categories (GET /api/reports/sales/categories)
func (sc *SalesController) GetCategories(c echo.Context) error {
	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	categories, err := sc.store.Categories(ctx)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, categories)
}

// GetCustomers lists distinct sales customers (GET /api/reports/sales/customers)
func (sc *SalesController) GetCustomers(c echo.Context) error {
	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	customers, err := sc.store.Customers(ctx)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, customers)
}

// GetSalesByMonth returns sales dated in a calendar month (GET /api/reports/sales/sales-by-month?month=12)
func (sc *SalesController) GetSalesByMonth(c echo.Context) error {
	var q models.SalesByMonthQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}
	month, err := utils.ParseMonth(q.Month)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	rows, err := sc.store.SalesByMonth(ctx, month)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, rows)
}

// GetSalesByCategoryAndCustomer returns sales for one category and customer
// (GET /api/reports/sales/sales-by-category-and-customer-tabular?category=..&customer=..)
func (sc *SalesController) GetSalesByCategoryAndCustomer(c echo.Context) error {
	var q models.SalesByCategoryCustomerQuery
	if err := utils.BindQuery(c, &q); err != nil {
		return err
	}

	ctx, cancel := queryContext(c, sc.timeout)
	defer cancel()

	rows, err := sc.store.SalesByCategoryAndCustomer(ctx, q.Category, q.Customer)
	if err != nil {
		return internalError(err)
	}
	return c.JSON(http.StatusOK, rows)
}
