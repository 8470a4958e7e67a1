package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/report_controller"
)

func SetupReportRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")

	reports.GET("/weekly", report_controller.GetWeeklyReport)
}
