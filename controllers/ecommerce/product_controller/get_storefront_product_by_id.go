package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetStorefrontProductByID godoc
// @Summary Get a single storefront product
// @Description Get the public product page payload; bumps the view counter
// @Tags store
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.StorefrontProductDetail}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /store/products/{id} [get]
func GetStorefrontProductByID(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Preload("SubCategory").
		First(&product, "id = ? AND status = 'Active'", productID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	// View counter, best effort. Incremented in SQL so concurrent page
	// views don't overwrite each other.
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		UpdateColumn("views", gorm.Expr("COALESCE(views, 0) + 1")).Error; err != nil {
		log.Printf("[store.product] WARN view counter update failed id=%s err=%v", productID, err)
	}

	detail := models.StorefrontProductDetail{
		ID:             product.ID.String(),
		Name:           product.Name,
		Description:    product.Description,
		Price:          product.Price,
		Image:          product.ImageURL,
		Specifications: product.Specifications,
		Variants:       product.Variants,
		Views:          product.Views + 1,
		CreatedAt:      product.CreatedAt,
	}
	if product.SubCategory != nil {
		detail.CategoryName = product.SubCategory.Name
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product fetched successfully", detail))
}
