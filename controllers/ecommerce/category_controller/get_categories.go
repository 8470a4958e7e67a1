package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Get the active category tree with product counts
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.StorefrontCategory}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id::text AS id,
			c.name,
			c.description,
			c.parent_id::text AS parent_id,
			COUNT(p.id)::int AS product_count
		FROM categories c
		LEFT JOIN products p ON p.sub_category_id = c.id AND p.status = 'Active'
		WHERE c.status = 'Active'
		GROUP BY c.id, c.name, c.description, c.parent_id
		ORDER BY c.created_at ASC
	`

	var flat []struct {
		ID           string  `gorm:"column:id"`
		Name         string  `gorm:"column:name"`
		Description  string  `gorm:"column:description"`
		ParentID     *string `gorm:"column:parent_id"`
		ProductCount int     `gorm:"column:product_count"`
	}

	if err := config.DB.WithContext(ctx).Raw(query).Scan(&flat).Error; err != nil {
		log.Printf("[store.categories] ERROR fetching categories err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	// Two passes: collect every node, then attach subcategories to
	// parents. Parent product counts roll up from their children.
	byID := make(map[string]*models.StorefrontCategory)
	order := make([]string, 0, len(flat))
	for _, row := range flat {
		byID[row.ID] = &models.StorefrontCategory{
			ID:           row.ID,
			Name:         row.Name,
			Description:  row.Description,
			ParentID:     row.ParentID,
			ProductCount: row.ProductCount,
		}
		order = append(order, row.ID)
	}

	tree := make([]models.StorefrontCategory, 0)
	for _, id := range order {
		node := byID[id]
		if node.ParentID != nil {
			continue
		}
		parent := *node
		for _, childID := range order {
			child := byID[childID]
			if child.ParentID != nil && *child.ParentID == id {
				parent.Subcategories = append(parent.Subcategories, *child)
				parent.ProductCount += child.ProductCount
			}
		}
		tree = append(tree, parent)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", tree))
}
