package repositories

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/HSouheill/apre_backend/models"
	"github.com/HSouheill/apre_backend/pipelines"
)

type SalesRepository struct {
	collection *mongo.Collection
}

func NewSalesRepository(db *mongo.Database) *SalesRepository {
	return &SalesRepository{
		collection: db.Collection(models.SalesCollection),
	}
}

// Regions returns the distinct sales regions
func (r *SalesRepository) Regions(ctx context.Context) ([]string, error) {
	regions, err := distinctStrings(ctx, r.collection, "region")
	if err != nil {
		return nil, fmt.Errorf("distinct regions: %w", err)
	}
	return regions, nil
}

// Categories returns the distinct sales categories
func (r *SalesRepository) Categories(ctx context.Context) ([]string, error) {
	categories, err := distinctStrings(ctx, r.collection, "category")
	if err != nil {
		return nil, fmt.Errorf("distinct categories: %w", err)
	}
	return categories, nil
}

// Customers returns the distinct sales customers
func (r *SalesRepository) Customers(ctx context.Context) ([]string, error) {
	customers, err := distinctStrings(ctx, r.collection, "customer")
	if err != nil {
		return nil, fmt.Errorf("distinct customers: %w", err)
	}
	return customers, nil
}

func (r *SalesRepository) SalesByRegion(ctx context.Context, region string) ([]models.SalespersonTotal, error) {
	rows, err := aggregate[models.SalespersonTotal](ctx, r.collection, pipelines.SalesByRegion(region))
	if err != nil {
		return nil, fmt.Errorf("sales by region %q: %w", region, err)
	}
	return rows, nil
}

func (r *SalesRepository) SalesByMonth(ctx context.Context, month int) ([]models.MonthlySale, error) {
	rows, err := aggregate[models.MonthlySale](ctx, r.collection, pipelines.SalesByMonth(month))
	if err != nil {
		return nil, fmt.Errorf("sales by month %d: %w", month, err)
	}
	return rows, nil
}

func (r *SalesRepository) SalesByCategoryAndCustomer(ctx context.Context, category, customer string) ([]models.CategoryCustomerSale, error) {
	rows, err := aggregate[models.CategoryCustomerSale](ctx, r.collection, pipelines.SalesByCategoryAndCustomer(category, customer))
	if err != nil {
		return nil, fmt.Errorf("sales by category %q and customer %q: %w", category, customer, err)
	}
	return rows, nil
}
