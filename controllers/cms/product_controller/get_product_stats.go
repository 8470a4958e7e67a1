package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetProductStats godoc
// @Summary Product statistics for the admin dashboard
// @Description Totals per status, average price, summed variant stock and low-stock count
// @Tags CMS - Products
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.ProductStatsResponseItem}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/stats [get]
func GetProductStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Variant stock lives in JSONB, so the sums unnest it.
	query := `
		SELECT
			COUNT(*)::int AS total_products,
			COUNT(*) FILTER (WHERE status = 'Active')::int AS active_products,
			COUNT(*) FILTER (WHERE status = 'Draft')::int AS draft_products,
			COUNT(*) FILTER (WHERE status = 'Archived')::int AS archived_products,
			COALESCE(AVG(price), 0)::float8 AS average_price,
			COALESCE((
				SELECT SUM((v->>'stock')::int)
				FROM products p2, jsonb_array_elements(p2.variants) AS v
				WHERE p2.status != 'Archived'
			), 0)::int AS total_stock,
			(
				SELECT COUNT(DISTINCT p3.id)
				FROM products p3
				WHERE p3.status = 'Active'
					AND NOT EXISTS (
						SELECT 1
						FROM jsonb_array_elements(p3.variants) AS v
						WHERE (v->>'stock')::int > 5
					)
			)::int AS low_stock_products
		FROM products
	`

	var stats models.ProductStatsResponseItem
	if err := config.DB.WithContext(ctx).Raw(query).Scan(&stats).Error; err != nil {
		log.Printf("[admin.product.stats] ERROR query err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch product stats"))
		return
	}

	if stats.TotalProducts > 0 {
		stats.PercentageActive = float64(stats.ActiveProducts) / float64(stats.TotalProducts) * 100
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product stats retrieved", stats))
}
