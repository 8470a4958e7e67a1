package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetCategories godoc
// @Summary List all categories (admin)
// @Description Flat listing of every category regardless of status, parents first
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.Category}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	categories := make([]models.Category, 0)
	if err := config.DB.WithContext(ctx).
		Order("parent_id NULLS FIRST, created_at ASC").
		Find(&categories).Error; err != nil {
		log.Printf("[admin.category.list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
