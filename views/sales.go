package views

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/render"
	"github.com/HSouheill/apre_backend/utils"
)

type SalesByRegionForm struct {
	Region string `query:"region" validate:"required"`
}

func (f SalesByRegionForm) Invalid() []string { return invalidFields(f) }
func (f SalesByRegionForm) Submittable() bool { return len(f.Invalid()) == 0 }

// SalesByRegion charts total sales per salesperson for one region
type SalesByRegion struct {
	report[[]models.SalespersonTotal]
	Form    SalesByRegionForm
	Regions []Option
	api     SalesAPI
}

func NewSalesByRegion(api SalesAPI, logger logrus.FieldLogger) *SalesByRegion {
	return &SalesByRegion{report: newReport[[]models.SalespersonTotal]("sales-by-region", logger), api: api}
}

func (v *SalesByRegion) LoadOptions(ctx context.Context) error {
	regions, err := v.api.Regions(ctx)
	if err != nil {
		return v.loadFailed(err, "regions")
	}
	v.Regions = stringOptions(regions)
	return nil
}

func (v *SalesByRegion) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.SalespersonTotal, error) {
		return v.api.SalesByRegion(ctx, v.Form.Region)
	})
}

func (v *SalesByRegion) Title() string { return "Sales by Region" }

func (v *SalesByRegion) Results() []models.SalespersonTotal { return v.result }

func (v *SalesByRegion) Chart() (*render.Chart, error) {
	data := make([]float64, len(v.result))
	labels := make([]string, len(v.result))
	for i, row := range v.result {
		data[i] = row.TotalSales
		labels[i] = row.Salesperson
	}
	return render.NewChart(render.ChartBar, "Sales by Region", data, labels)
}

type SalesByMonthForm struct {
	Month string `query:"month" validate:"required,month"`
}

func (f SalesByMonthForm) Invalid() []string { return invalidFields(f) }
func (f SalesByMonthForm) Submittable() bool { return len(f.Invalid()) == 0 }

// SalesByMonth tabulates the sales dated in one calendar month
type SalesByMonth struct {
	report[[]models.MonthlySale]
	Form SalesByMonthForm
	api  SalesAPI
}

func NewSalesByMonth(api SalesAPI, logger logrus.FieldLogger) *SalesByMonth {
	return &SalesByMonth{report: newReport[[]models.MonthlySale]("sales-by-month", logger), api: api}
}

func (v *SalesByMonth) Months() []Option { return MonthOptions() }

func (v *SalesByMonth) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.MonthlySale, error) {
		month, _ := utils.ParseMonth(v.Form.Month)
		return v.api.SalesByMonth(ctx, month)
	})
}

// SelectedMonth is the month name chosen in the form, or ""
func (v *SalesByMonth) SelectedMonth() string {
	month, err := utils.ParseMonth(v.Form.Month)
	if err != nil {
		return ""
	}
	return models.MonthName(month)
}

func (v *SalesByMonth) Title() string { return "Sales for " + v.SelectedMonth() }

func (v *SalesByMonth) Results() []models.MonthlySale { return v.result }

func (v *SalesByMonth) Table() *render.Table[models.MonthlySale] {
	return render.NewTable(v.Title(), v.result,
		[]string{"region", "product", "category", "salesperson", "channel", "amount"})
}

type SalesByCategoryCustomerForm struct {
	Category string `query:"category" validate:"required"`
	Customer string `query:"customer" validate:"required"`
}

func (f SalesByCategoryCustomerForm) Invalid() []string { return invalidFields(f) }
func (f SalesByCategoryCustomerForm) Submittable() bool { return len(f.Invalid()) == 0 }

// SalesByCategoryAndCustomer tabulates the sales of one category to one customer
type SalesByCategoryAndCustomer struct {
	report[[]models.CategoryCustomerSale]
	Form       SalesByCategoryCustomerForm
	Categories []Option
	Customers  []Option
	api        SalesAPI
}

func NewSalesByCategoryAndCustomer(api SalesAPI, logger logrus.FieldLogger) *SalesByCategoryAndCustomer {
	return &SalesByCategoryAndCustomer{
		report: newReport[[]models.CategoryCustomerSale]("sales-by-category-and-customer", logger),
		api:    api,
	}
}

// LoadOptions fills both dropdowns; a failed list stays empty
func (v *SalesByCategoryAndCustomer) LoadOptions(ctx context.Context) error {
	var errs []error
	if categories, err := v.api.Categories(ctx); err != nil {
		errs = append(errs, v.loadFailed(err, "categories"))
	} else {
		v.Categories = stringOptions(categories)
	}
	if customers, err := v.api.Customers(ctx); err != nil {
		errs = append(errs, v.loadFailed(err, "customers"))
	} else {
		v.Customers = stringOptions(customers)
	}
	return errors.Join(errs...)
}

func (v *SalesByCategoryAndCustomer) Submit(ctx context.Context) error {
	return v.submit(ctx, v.Form.Invalid(), func(ctx context.Context) ([]models.CategoryCustomerSale, error) {
		return v.api.SalesByCategoryAndCustomer(ctx, v.Form.Category, v.Form.Customer)
	})
}

func (v *SalesByCategoryAndCustomer) Title() string {
	return "Sales for " + v.Form.Category + " " + v.Form.Customer
}

func (v *SalesByCategoryAndCustomer) Results() []models.CategoryCustomerSale { return v.result }

func (v *SalesByCategoryAndCustomer) Table() *render.Table[models.CategoryCustomerSale] {
	columns := []string{"region", "product", "salesperson", "channel", "amount"}
	return render.NewTable(v.Title(), v.result, columns, columns...)
}
