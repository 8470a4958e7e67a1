package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Fails while products or subcategories still reference the category
// @Tags CMS - Categories
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var productCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Product{}).
		Where("sub_category_id = ?", categoryID).
		Count(&productCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if productCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has products"))
		return
	}

	var childCount int64
	if err := config.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("parent_id = ?", categoryID).
		Count(&childCount).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if childCount > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "Category still has subcategories"))
		return
	}

	result := config.DB.WithContext(ctx).Delete(&models.Category{}, "id = ?", categoryID)
	if result.Error != nil {
		log.Printf("[admin.category.delete] ERROR delete id=%s err=%v", categoryID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", gin.H{"id": categoryID.String()}))
}
