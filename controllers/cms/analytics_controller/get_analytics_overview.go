package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// revenueStatuses are the order statuses that count as realized revenue.
var revenueStatuses = []string{
	models.OrderStatusConfirmed,
	models.OrderStatusShipped,
	models.OrderStatusDelivered,
}

// GetAnalyticsOverview godoc
// @Summary Get analytics overview
// @Description Returns headline stats: revenue, orders and average order value for the last 30 days with comparison against the 30 days before.
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.AnalyticsOverview}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/overview [get]
func GetAnalyticsOverview(c *gin.Context) {
	log.Printf("[admin.analytics-overview] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now().UTC()
	periodStart := now.AddDate(0, 0, -30)
	previousStart := now.AddDate(0, 0, -60)

	var currentRevenue float64
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE status IN ? AND created_at >= ?`, revenueStatuses, periodStart).
		Scan(&currentRevenue).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR current revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var previousRevenue float64
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT COALESCE(SUM(total_amount), 0) FROM orders
			WHERE status IN ? AND created_at >= ? AND created_at < ?`, revenueStatuses, previousStart, periodStart).
		Scan(&previousRevenue).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	revenueGrowthPercent := 0.0
	if previousRevenue > 0 {
		revenueGrowthPercent = ((currentRevenue - previousRevenue) / previousRevenue) * 100
	} else if currentRevenue > 0 {
		revenueGrowthPercent = 100.0
	}

	var currentOrders int64
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE status IN ? AND created_at >= ?`, revenueStatuses, periodStart).
		Scan(&currentOrders).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR current orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	var previousOrders int64
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT COUNT(*) FROM orders WHERE status IN ? AND created_at >= ? AND created_at < ?`,
			revenueStatuses, previousStart, periodStart).
		Scan(&previousOrders).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR previous orders err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	ordersGrowthPercent := 0.0
	if previousOrders > 0 {
		ordersGrowthPercent = ((float64(currentOrders) - float64(previousOrders)) / float64(previousOrders)) * 100
	} else if currentOrders > 0 {
		ordersGrowthPercent = 100.0
	}

	averageOrderValue := 0.0
	if currentOrders > 0 {
		averageOrderValue = currentRevenue / float64(currentOrders)
	}

	var activeProducts int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("status = ?", models.ProductStatusActive).
		Count(&activeProducts).Error; err != nil {
		log.Printf("[admin.analytics-overview] ERROR active products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch analytics"))
		return
	}

	overview := models.AnalyticsOverview{
		TotalRevenue:         currentRevenue,
		RevenueGrowthPercent: revenueGrowthPercent,
		TotalOrders:          int(currentOrders),
		OrdersGrowthPercent:  ordersGrowthPercent,
		AverageOrderValue:    averageOrderValue,
		ActiveProducts:       int(activeProducts),
	}

	log.Printf("[admin.analytics-overview] respond 200 revenue=%.2f orders=%d avg=%.2f",
		currentRevenue, currentOrders, averageOrderValue)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Analytics overview retrieved successfully", overview))
}
