package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GenerateVariants godoc
// @Summary Generate draft variants from attribute selection
// @Description Expands the cartesian product of the given attributes into draft variants and replaces the product's stored variants. Prior variant-level edits (price, stock, SKU) are discarded; the admin UI asks for confirmation first.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param request body models.GenerateVariantsRequest true "Attribute selection"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id}/generate-variants [post]
func GenerateVariants(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.GenerateVariantsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	variants := ExpandVariants(req.Attributes)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"attributes": models.AttributeList(req.Attributes),
			"variants":   models.VariantList(variants),
		})
	if result.Error != nil {
		log.Printf("[admin.product.variants] ERROR regenerating variants id=%s err=%v", productID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to regenerate variants"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	log.Printf("[admin.product.variants] regenerated id=%s attributes=%d variants=%d",
		productID, len(req.Attributes), len(variants))

	c.JSON(http.StatusOK, models.SuccessResponse(
		c,
		"Variants regenerated, previous variant edits discarded",
		variants,
	))
}
