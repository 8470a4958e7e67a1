package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/order_controller"
)

func SetupOrderRoutes(rg *gin.RouterGroup) {
	order := rg.Group("/orders")

	order.GET("", order_controller.GetOrders)
	order.GET("/:id", order_controller.GetOrderByID)
	order.PATCH("/:id/status", order_controller.UpdateOrderStatus)
}
