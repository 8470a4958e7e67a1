package analytics_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetMonthlyRevenue godoc
// @Summary Get monthly revenue for last 12 months
// @Description Returns revenue data for the last 12 months for chart visualization, missing months filled with zero.
// @Tags Admin - Analytics
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.MonthlyRevenueData}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/analytics/monthly-revenue [get]
func GetMonthlyRevenue(c *gin.Context) {
	log.Printf("[admin.analytics-monthly-revenue] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now().UTC()
	// Window starts at the first day of the month 11 months back, so the
	// series covers exactly 12 calendar months and month numbers are
	// unique within it.
	startMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -11, 0)

	var monthlyData []models.MonthlyRevenueData
	if err := config.DB.WithContext(ctx).
		Raw(`
			SELECT
				TO_CHAR(date_trunc('month', created_at), 'Mon') AS month,
				EXTRACT(MONTH FROM created_at)::int AS month_number,
				COALESCE(SUM(total_amount), 0)::float8 AS revenue
			FROM orders
			WHERE status IN ? AND created_at >= ?
			GROUP BY date_trunc('month', created_at), TO_CHAR(date_trunc('month', created_at), 'Mon'), EXTRACT(MONTH FROM created_at)
			ORDER BY date_trunc('month', created_at) ASC
		`, revenueStatuses, startMonth).
		Scan(&monthlyData).Error; err != nil {
		log.Printf("[admin.analytics-monthly-revenue] ERROR query monthly revenue err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch monthly revenue"))
		return
	}

	// Fill missing months with 0 so the chart always gets 12 points.
	monthlyMap := make(map[int]models.MonthlyRevenueData)
	monthNames := []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"}

	for _, data := range monthlyData {
		monthlyMap[data.MonthNumber] = data
	}

	completeData := []models.MonthlyRevenueData{}

	for i := 0; i < 12; i++ {
		currentMonth := startMonth.AddDate(0, i, 0)
		monthNum := int(currentMonth.Month())

		if data, exists := monthlyMap[monthNum]; exists {
			completeData = append(completeData, data)
		} else {
			completeData = append(completeData, models.MonthlyRevenueData{
				Month:       monthNames[monthNum-1],
				MonthNumber: monthNum,
				Revenue:     0,
			})
		}
	}

	log.Printf("[admin.analytics-monthly-revenue] respond 200 months=%d", len(completeData))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Monthly revenue retrieved successfully", completeData))
}
