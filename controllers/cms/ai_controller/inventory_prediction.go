package ai_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/services"
)

// GetInventoryPredictions godoc
// @Summary Get restock suggestions (admin)
// @Description Returns a per-variant restock suggestion derived from 30-day sales velocity against current stock.
// @Tags Admin - AI
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.InventoryPrediction}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/ai/inventory-predictions [get]
func GetInventoryPredictions(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	predictions, err := services.GetAIService().PredictInventory(ctx)
	if err != nil {
		log.Printf("[admin.ai.inventory] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build inventory predictions"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory predictions generated successfully", predictions))
}
