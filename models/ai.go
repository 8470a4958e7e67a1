package models

// AutoTagRequest asks for tag suggestions for a product draft. When
// ProductID is set the product is loaded instead of the inline fields.
type AutoTagRequest struct {
	ProductID   *string `json:"product_id,omitempty"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
}

type AutoTagResponse struct {
	Tags   []string `json:"tags"`
	Source string   `json:"source"` // "model" or "heuristic"
}

// InventoryPrediction is a per-variant restock suggestion derived from
// the last 30 days of sales velocity.
type InventoryPrediction struct {
	ProductID      string  `json:"product_id"`
	ProductName    string  `json:"product_name"`
	VariantName    string  `json:"variant_name"`
	CurrentStock   int     `json:"current_stock"`
	SoldLast30Days int     `json:"sold_last_30_days"`
	DaysOfCover    float64 `json:"days_of_cover"`
	Suggestion     string  `json:"suggestion"`
	Source         string  `json:"source"`
}

// ReturnRisk flags products whose return rate stands out.
type ReturnRisk struct {
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	OrderCount  int     `json:"order_count"`
	ReturnCount int     `json:"return_count"`
	ReturnRate  float64 `json:"return_rate"`
	RiskLevel   string  `json:"risk_level"` // "low", "medium", "high"
	Note        string  `json:"note,omitempty"`
	Source      string  `json:"source"`
}
