package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// UpdateCategory godoc
// @Summary Update a category
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID (UUID)"
// @Param category body models.UpdateCategoryRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Status != nil {
		updates["status"] = *req.Status
	}
	if req.ParentID != nil {
		updates["parent_id"] = *req.ParentID
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).
		Model(&models.Category{}).
		Where("id = ?", categoryID).
		Updates(updates)
	if result.Error != nil {
		log.Printf("[admin.category.update] ERROR update id=%s err=%v", categoryID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		return
	}

	var category models.Category
	if err := config.DB.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err == nil {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", category))
		return
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", nil))
}
