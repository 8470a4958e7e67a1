package models

// AnalyticsOverview is the admin dashboard headline card data,
// comparing the current 30 days to the 30 days before.
type AnalyticsOverview struct {
	TotalRevenue         float64 `json:"total_revenue"`
	RevenueGrowthPercent float64 `json:"revenue_growth_percent"`
	TotalOrders          int     `json:"total_orders"`
	OrdersGrowthPercent  float64 `json:"orders_growth_percent"`
	AverageOrderValue    float64 `json:"average_order_value"`
	ActiveProducts       int     `json:"active_products"`
}

// TopProduct is one row of the best-seller table.
type TopProduct struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	OrderCount     int     `json:"order_count"`
	SalesCount     int     `json:"sales_count"`
	Revenue        float64 `json:"revenue"`
	RevenuePercent float64 `json:"revenue_percent"`
}

type MonthlyRevenueData struct {
	Month       string  `json:"month"`
	MonthNumber int     `json:"month_number"`
	Revenue     float64 `json:"revenue"`
}
