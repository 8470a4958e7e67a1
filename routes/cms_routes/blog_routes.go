package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/controllers/cms/blog_controller"
)

func SetupBlogRoutes(rg *gin.RouterGroup) {
	blog := rg.Group("/blog")

	blog.GET("", blog_controller.GetPosts)
	blog.GET("/:id", blog_controller.GetPostByID)
	blog.POST("", blog_controller.CreatePost)
	blog.PATCH("/:id", blog_controller.UpdatePost)
	blog.PATCH("/:id/publish", blog_controller.PublishPost)
	blog.DELETE("/:id", blog_controller.DeletePost)
}
