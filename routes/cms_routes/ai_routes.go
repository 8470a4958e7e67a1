package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/ai_controller"
)

func SetupAIRoutes(rg *gin.RouterGroup) {
	ai := rg.Group("/ai")

	ai.POST("/auto-tag", ai_controller.AutoTag)
	ai.GET("/inventory-predictions", ai_controller.GetInventoryPredictions)
	ai.GET("/return-risks", ai_controller.GetReturnRisks)
}
