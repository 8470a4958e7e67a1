package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	spec_cache "github.com/kon1973/nexu-webshop-sub001/cache"
	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// DeleteProduct godoc
// @Summary Delete a product
// @Description Permanently deletes a product and its specification list. Use status=Archived to keep the record without exposing it to the storefront.
// @Tags CMS - Products
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [delete]
func DeleteProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.Product{}, "id = ?", productID)
	if result.Error != nil {
		log.Printf("[admin.product.delete] ERROR delete id=%s err=%v", productID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	spec_cache.Invalidate()

	log.Printf("[admin.product.delete] deleted id=%s", productID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product deleted successfully", gin.H{"id": productID.String()}))
}
