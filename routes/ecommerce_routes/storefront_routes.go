package ecommerce_routes

import (
	"github.com/gin-gonic/gin"

	store_blog "github.com/kon1973/nexu-webshop-sub001/controllers/ecommerce/blog_controller"
	store_category "github.com/kon1973/nexu-webshop-sub001/controllers/ecommerce/category_controller"
	store_filter "github.com/kon1973/nexu-webshop-sub001/controllers/ecommerce/filter_controller"
	store_product "github.com/kon1973/nexu-webshop-sub001/controllers/ecommerce/product_controller"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	products := store.Group("/products")
	{
		products.GET("", store_product.GetStorefrontProducts)             // List with filters
		products.GET("/spec-filters", store_filter.GetSpecificationFilters) // Specification facet groups
		products.GET("/:id", store_product.GetStorefrontProductByID)      // Single product
	}

	categories := store.Group("/categories")
	{
		categories.GET("", store_category.GetCategories)
		categories.GET("/:id", store_category.GetCategoryByID)
	}

	blog := store.Group("/blog")
	{
		blog.GET("", store_blog.GetPublishedPosts)
		blog.GET("/:slug", store_blog.GetPostBySlug)
	}
}
