package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// CreateCategory godoc
// @Summary Create a category or subcategory
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var req models.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Only one level of nesting: a subcategory cannot be a parent.
	if req.ParentID != nil {
		var parent models.Category
		if err := config.DB.WithContext(ctx).
			Select("id, parent_id").
			First(&parent, "id = ?", *req.ParentID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid parent_id"))
			} else {
				c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			}
			return
		}
		if parent.ParentID != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Subcategories cannot have children"))
			return
		}
	}

	category := models.Category{
		Name:        req.Name,
		Description: req.Description,
		Status:      "Active",
		ParentID:    req.ParentID,
	}

	if err := config.DB.WithContext(ctx).Create(&category).Error; err != nil {
		log.Printf("[admin.category.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
