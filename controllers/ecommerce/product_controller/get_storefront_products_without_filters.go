package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/models"
)

func getStorefrontProductsWithoutFilters(c *gin.Context) {
	page, limit := parsePagination(c)

	sortBy := c.DefaultQuery("sortBy", "newest")
	sortOrder := c.DefaultQuery("sortOrder", "desc")

	whereClause := "p.status = 'Active'"
	orderClause := buildStorefrontOrderClause(sortBy, sortOrder)

	products, totalCount, err := fetchStorefrontProductsFromDB(
		c,
		whereClause,
		orderClause,
		nil,
		page,
		limit,
	)
	if err != nil {
		log.Printf("[store.products] ERROR fetching products err=%v", err)
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
