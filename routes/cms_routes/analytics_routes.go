package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/analytics_controller"
)

func SetupAnalyticsRoutes(rg *gin.RouterGroup) {
	analytics := rg.Group("/analytics")

	analytics.GET("/overview", analytics_controller.GetAnalyticsOverview)
	analytics.GET("/monthly-revenue", analytics_controller.GetMonthlyRevenue)
	analytics.GET("/top-products", analytics_controller.GetTopProducts)
}
