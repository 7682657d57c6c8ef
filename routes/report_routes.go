package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/HSouheill/apre_backend/controllers"
)

// ReportControllers groups the controllers mounted under /api/reports
type ReportControllers struct {
	Sales            *controllers.SalesController
	AgentPerformance *controllers.AgentPerformanceController
	CustomerFeedback *controllers.CustomerFeedbackController
}

// RegisterReportRoutes mounts every report endpoint under /api/reports
func RegisterReportRoutes(e *echo.Echo, rc ReportControllers) {
	reports := e.Group("/api/reports")

	RegisterSalesRoutes(reports.Group("/sales"), rc.Sales)
	RegisterAgentPerformanceRoutes(reports.Group("/agent-performance"), rc.AgentPerformance)
	RegisterCustomerFeedbackRoutes(reports.Group("/customer-feedback"), rc.CustomerFeedback)
}

// RegisterSalesRoutes sets up the sales report routes
func RegisterSalesRoutes(g *echo.Group, sc *controllers.SalesController) {
	g.GET("/regions", sc.GetRegions)
	g.GET("/regions/:region", sc.GetSalesByRegion)
	g.GET("/categories", sc.GetCategories)
	g.GET("/customers", sc.GetCustomers)
	g.GET("/sales-by-month", sc.GetSalesByMonth)
	g.GET("/sales-by-category-and-customer-tabular", sc.GetSalesByCategoryAndCustomer)
}

// RegisterAgentPerformanceRoutes sets up the agent performance report routes
func RegisterAgentPerformanceRoutes(g *echo.Group, ac *controllers.AgentPerformanceController) {
	g.GET("/call-duration-by-date-range", ac.GetCallDurationByDateRange)
	g.GET("/agent-performance-by-metric-type-tabular", ac.GetPerformanceByMetricType)
}

// RegisterCustomerFeedbackRoutes sets up the customer feedback report routes
func RegisterCustomerFeedbackRoutes(g *echo.Group, fc *controllers.CustomerFeedbackController) {
	g.GET("/channel-rating-by-month", fc.GetChannelRatingByMonth)
	g.GET("/products", fc.GetProducts)
	g.GET("/customer-feedback-by-product", fc.GetFeedbackByProduct)
}
