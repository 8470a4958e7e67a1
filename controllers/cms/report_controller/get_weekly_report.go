package report_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/services"
)

var reportService = services.NewReportService()

// GetWeeklyReport godoc
// @Summary Get the weekly sales report (admin)
// @Description Returns the 7-day sales digest: totals, per-day breakdown with zero-filled days, and top categories.
// @Tags Admin - Reports
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.WeeklyReport}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/reports/weekly [get]
func GetWeeklyReport(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	report, err := reportService.WeeklyReport(ctx)
	if err != nil {
		log.Printf("[admin.report.weekly] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build weekly report"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Weekly report generated successfully", report))
}
