package ai_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/services"
)

// AutoTag godoc
// @Summary Suggest tags for a product (admin)
// @Description Suggests up to 6 tags from the product name and description. Uses the language model when configured, a keyword heuristic otherwise; the source field tells which.
// @Tags Admin - AI
// @Accept json
// @Produce json
// @Param payload body models.AutoTagRequest true "Product text or product_id"
// @Success 200 {object} models.ApiResponse{data=models.AutoTagResponse}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/ai/auto-tag [post]
func AutoTag(c *gin.Context) {
	var req models.AutoTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	name, description := req.Name, req.Description
	if req.ProductID != nil {
		productID, err := uuid.Parse(*req.ProductID)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
			return
		}
		var product models.Product
		if err := config.DB.WithContext(ctx).First(&product, "id = ?", productID).Error; err != nil {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
			return
		}
		name, description = product.Name, product.Description
	}

	if name == "" && description == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Provide product_id or name/description"))
		return
	}

	resp := services.GetAIService().SuggestTags(ctx, name, description)
	log.Printf("[admin.ai.auto-tag] source=%s tags=%d", resp.Source, len(resp.Tags))

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Tags suggested successfully", resp))
}
