package ai_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/services"
)

// GetReturnRisks godoc
// @Summary Get return risk flags (admin)
// @Description Flags products whose 90-day return rate stands out. Only products with at least 3 orders are scored.
// @Tags Admin - AI
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.ReturnRisk}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/ai/return-risks [get]
func GetReturnRisks(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	risks, err := services.GetAIService().ReturnRisks(ctx)
	if err != nil {
		log.Printf("[admin.ai.returns] ERROR err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to build return risks"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Return risks generated successfully", risks))
}
