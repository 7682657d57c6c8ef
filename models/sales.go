// models/sales.go

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Sale is a document of the sales collection
type Sale struct {
	ID          primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Date        time.Time          `json:"date" bson:"date"`
	Region      string             `json:"region" bson:"region"`
	Category    string             `json:"category" bson:"category"`
	Product     string             `json:"product" bson:"product"`
	Customer    string             `json:"customer" bson:"customer"`
	Salesperson string             `json:"salesperson" bson:"salesperson"`
	Channel     string             `json:"channel" bson:"channel"`
	Amount      float64            `json:"amount" bson:"amount"`
}

// SalespersonTotal is one row of the sales-by-region report
type SalespersonTotal struct {
	Salesperson string  `json:"salesperson" bson:"salesperson"`
	TotalSales  float64 `json:"totalSales" bson:"totalSales"`
}

func (s SalespersonTotal) Field(key string) any {
	switch key {
	case "salesperson":
		return s.Salesperson
	case "totalSales":
		return s.TotalSales
	}
	return nil
}

// MonthlySale is one row of the sales-by-month report
type MonthlySale struct {
	ID          primitive.ObjectID `json:"id" bson:"id"`
	Month       string             `json:"month" bson:"month"`
	Region      string             `json:"region" bson:"region"`
	Product     string             `json:"product" bson:"product"`
	Category    string             `json:"category" bson:"category"`
	Customer    string             `json:"customer" bson:"customer"`
	Salesperson string             `json:"salesperson" bson:"salesperson"`
	Channel     string             `json:"channel" bson:"channel"`
	Amount      float64            `json:"amount" bson:"amount"`
}

func (s MonthlySale) Field(key string) any {
	switch key {
	case "id":
		return s.ID.Hex()
	case "month":
		return s.Month
	case "region":
		return s.Region
	case "product":
		return s.Product
	case "category":
		return s.Category
	case "customer":
		return s.Customer
	case "salesperson":
		return s.Salesperson
	case "channel":
		return s.Channel
	case "amount":
		return s.Amount
	}
	return nil
}

// CategoryCustomerSale is one row of the sales-by-category-and-customer report
type CategoryCustomerSale struct {
	ID          primitive.ObjectID `json:"id" bson:"id"`
	Date        time.Time          `json:"date" bson:"date"`
	Region      string             `json:"region" bson:"region"`
	Product     string             `json:"product" bson:"product"`
	Salesperson string             `json:"salesperson" bson:"salesperson"`
	Channel     string             `json:"channel" bson:"channel"`
	Amount      float64            `json:"amount" bson:"amount"`
}

func (s CategoryCustomerSale) Field(key string) any {
	switch key {
	case "id":
		return s.ID.Hex()
	case "date":
		return s.Date
	case "region":
		return s.Region
	case "product":
		return s.Product
	case "salesperson":
		return s.Salesperson
	case "channel":
		return s.Channel
	case "amount":
		return s.Amount
	}
	return nil
}

// SalesByMonthQuery binds GET /sales/sales-by-month
type SalesByMonthQuery struct {
	Month string `query:"month" validate:"required"`
}

// SalesByCategoryCustomerQuery binds GET /sales/sales-by-category-and-customer-tabular
type SalesByCategoryCustomerQuery struct {
	Category string `query:"category" validate:"required"`
	Customer string `query:"customer" validate:"required"`
}
