package product_controller

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

func getStorefrontProductsWithFilters(c *gin.Context) {
	page, limit := parsePagination(c)

	searchQuery := c.Query("q")
	category := c.Query("category")
	selection := specs.ParseSelection(c.Query("specs"), c.Query("boolSpecs"))
	minPriceStr := c.Query("minPrice")
	maxPriceStr := c.Query("maxPrice")
	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	conditions := []string{"p.status = 'Active'"}
	args := []interface{}{}

	// Search query (name or description)
	if searchQuery != "" {
		conditions = append(conditions, "(p.name ILIKE ? OR p.description ILIKE ?)")
		args = append(args, "%"+searchQuery+"%", "%"+searchQuery+"%")
	}

	// Category filter: a parent category name covers all of its
	// subcategories, a subcategory name matches directly.
	if category != "" {
		cond := `p.sub_category_id IN (
			SELECT id FROM categories
			WHERE LOWER(name) = LOWER(?)
				OR parent_id IN (
					SELECT id FROM categories
					WHERE LOWER(name) = LOWER(?) AND parent_id IS NULL
				)
		)`
		conditions = append(conditions, cond)
		trimmed := strings.TrimSpace(category)
		args = append(args, trimmed, trimmed)
	}

	// Specification facet selections
	conditions, args = appendSpecConditions(conditions, args, selection)

	// Price range filter
	if minPriceStr != "" {
		if minPrice, err := strconv.ParseFloat(minPriceStr, 64); err == nil {
			conditions = append(conditions, "p.price >= ?")
			args = append(args, minPrice)
		}
	}
	if maxPriceStr != "" {
		if maxPrice, err := strconv.ParseFloat(maxPriceStr, 64); err == nil {
			conditions = append(conditions, "p.price <= ?")
			args = append(args, maxPrice)
		}
	}

	whereClause := strings.Join(conditions, " AND ")
	orderClause := buildStorefrontOrderClause(sortBy, sortOrder)

	products, totalCount, err := fetchStorefrontProductsFromDB(
		c,
		whereClause,
		orderClause,
		args,
		page,
		limit,
	)
	if err != nil {
		log.Printf("[store.products] ERROR fetching filtered products err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch products"))
		return
	}

	totalPages := (totalCount + limit - 1) / limit

	c.JSON(http.StatusOK, models.PaginatedResponse(
		c,
		"Products fetched successfully",
		products,
		&models.Pagination{
			Page:       page,
			Limit:      limit,
			Total:      totalCount,
			TotalPages: totalPages,
		},
	))
}
