package product_controller

import (
	"github.com/gin-gonic/gin"
)

// GetStorefrontProducts godoc
// @Summary Get storefront products
// @Description Get paginated products for the storefront with optional search, category, price, specification and sorting filters
// @Tags store
// @Produce json
// @Param q query string false "Search query"
// @Param category query string false "Parent category or subcategory name"
// @Param specs query string false "Specification selections (key:v1,v2;key2:v3, percent-encoded)"
// @Param boolSpecs query string false "Boolean specification selections (key:true;key2:false)"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param sortBy query string false "Sort by field" Enums(price, name, newest, popular) default(newest)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(desc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/products [get]
func GetStorefrontProducts(c *gin.Context) {
	if hasStorefrontFilters(c) {
		getStorefrontProductsWithFilters(c)
	} else {
		getStorefrontProductsWithoutFilters(c)
	}
}

// hasStorefrontFilters checks if any filter-related query param is present.
func hasStorefrontFilters(c *gin.Context) bool {
	return c.Query("q") != "" ||
		c.Query("category") != "" ||
		c.Query("specs") != "" ||
		c.Query("boolSpecs") != "" ||
		c.Query("minPrice") != "" ||
		c.Query("maxPrice") != ""
}
