package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	spec_cache "github.com/kon1973/nexu-webshop-sub001/cache"
	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// UpdateProduct godoc
// @Summary Update a product
// @Description Partial update; only fields present in the body change. Specification lists are sanitized before persistence.
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param id path string true "Product ID (UUID)"
// @Param product body models.UpdateProductRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products/{id} [patch]
func UpdateProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid product ID"))
		return
	}

	var req models.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.ImageURL != nil {
		updates["image_url"] = *req.ImageURL
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.Tags != nil {
		updates["tags"] = models.TagsList(*req.Tags)
	}
	if req.Specifications != nil {
		updates["specifications"] = specs.Sanitize(*req.Specifications)
	}
	if req.Attributes != nil {
		updates["attributes"] = models.AttributeList(*req.Attributes)
	}
	if req.Variants != nil {
		updates["variants"] = models.VariantList(*req.Variants)
	}

	if req.SubCategoryID != nil {
		var subCategory models.Category
		if err := config.DB.WithContext(ctx).
			Select("id, parent_id").
			First(&subCategory, "id = ?", *req.SubCategoryID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sub_category_id"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		if subCategory.ParentID == nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Products must be assigned to a subcategory"))
			return
		}
		updates["sub_category_id"] = *req.SubCategoryID
	}

	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	result := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(updates)
	if result.Error != nil {
		log.Printf("[admin.product.update] ERROR update id=%s err=%v", productID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update product"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Product not found"))
		return
	}

	spec_cache.Invalidate()

	var product models.Product
	if err := config.DB.WithContext(ctx).
		Preload("SubCategory").
		First(&product, "id = ?", productID).Error; err != nil {
		log.Printf("[admin.product.update] WARN reload failed id=%s err=%v", productID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Product updated successfully", product))
}
