package filter_controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	spec_cache "github.com/kon1973/nexu-webshop-sub001/cache"
	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// GetSpecificationFilters godoc
// @Summary Get specification facet groups
// @Description Aggregates the specification lists of all non-archived products (optionally scoped to a category) into grouped facets for the storefront filter panel. Failures degrade to an empty list, never an error.
// @Tags store
// @Produce json
// @Param category query string false "Parent category or subcategory name"
// @Success 200 {object} models.ApiResponse{data=[]specs.Group}
// @Router /store/products/spec-filters [get]
func GetSpecificationFilters(c *gin.Context) {
	category := c.Query("category")

	if groups, ok := spec_cache.Get(category); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Specification filters fetched", groups))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	groups := specs.AggregateForCategory(ctx, config.DB, category)
	spec_cache.Set(category, groups)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Specification filters fetched", groups))
}
