package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetTopProducts godoc
// @Summary Get top performing products
// @Description Returns the 6 best selling products of the last 30 days with order count, units sold, revenue, and share of total revenue.
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.TopProduct}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/top-products [get]
func GetTopProducts(c *gin.Context) {
	log.Printf("[admin.analytics-top-products] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	periodStart := time.Now().UTC().AddDate(0, 0, -30)

	var totalRevenue float64
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE status IN ? AND created_at >= ?`, revenueStatuses, periodStart).
		Scan(&totalRevenue).Error; err != nil {
		log.Printf("[admin.analytics-top-products] ERROR total revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	topProducts := make([]models.TopProduct, 0)
	if err := config.DB.WithContext(ctx).
		Raw(`
			SELECT
				oi.product_id::text AS product_id,
				oi.product_name,
				COUNT(DISTINCT oi.order_id) AS order_count,
				SUM(oi.quantity) AS sales_count,
				SUM(oi.subtotal)::float8 AS revenue
			FROM order_items oi
			INNER JOIN orders o ON oi.order_id = o.id
			WHERE o.status IN ? AND o.created_at >= ?
			GROUP BY oi.product_id, oi.product_name
			ORDER BY revenue DESC
			LIMIT 6
		`, revenueStatuses, periodStart).
		Scan(&topProducts).Error; err != nil {
		log.Printf("[admin.analytics-top-products] ERROR query top products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch top products"))
		return
	}

	for i := range topProducts {
		if totalRevenue > 0 {
			topProducts[i].RevenuePercent = (topProducts[i].Revenue / totalRevenue) * 100
		}
	}

	log.Printf("[admin.analytics-top-products] respond 200 products=%d total_revenue=%.2f",
		len(topProducts), totalRevenue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Top products retrieved successfully", topProducts))
}
