// @title Nexu Webshop API
// @version 1.0
// @description Nexu webshop storefront and back-office API documentation
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/kon1973/nexu-webshop-sub001/config"
	_ "github.com/kon1973/nexu-webshop-sub001/docs"
	"github.com/kon1973/nexu-webshop-sub001/middleware"
	"github.com/kon1973/nexu-webshop-sub001/routes/cms_routes"
	"github.com/kon1973/nexu-webshop-sub001/routes/ecommerce_routes"
	"github.com/kon1973/nexu-webshop-sub001/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Connect to DB
	config.InitDB()
	// Redis connection
	config.ConnectRedis()
	// AI widgets, runs heuristics only when no key is configured
	services.InitAIService()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	api := router.Group("/api/v1")

	// Back-office routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))

	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupCategoryRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	cms_routes.SetupAnalyticsRoutes(adminGroup)
	cms_routes.SetupBlogRoutes(adminGroup)
	cms_routes.SetupReportRoutes(adminGroup)
	cms_routes.SetupAIRoutes(adminGroup)
	fmt.Println("✅ Admin routes registered")

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupStorefrontRoutes(api)

	// Swagger docs
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
