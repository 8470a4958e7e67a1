package models

import "time"

// WeeklyReport is the automated 7-day sales digest served to the
// back-office. Aggregated server-side; no file export.
type WeeklyReport struct {
	From           time.Time       `json:"from"`
	To             time.Time       `json:"to"`
	TotalRevenue   float64         `json:"total_revenue"`
	TotalOrders    int             `json:"total_orders"`
	ReturnedOrders int             `json:"returned_orders"`
	NewProducts    int             `json:"new_products"`
	Days           []DailySales    `json:"days"`
	TopCategories  []CategorySales `json:"top_categories"`
}

// DailySales is one day of the weekly report; days without orders are
// zero-filled so charts always get 7 points.
type DailySales struct {
	Day        time.Time `json:"day"`
	OrderCount int       `json:"order_count"`
	Revenue    float64   `json:"revenue"`
}

type CategorySales struct {
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name"`
	OrderCount   int     `json:"order_count"`
	Revenue      float64 `json:"revenue"`
}
