package blog_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetPosts godoc
// @Summary List blog posts (admin)
// @Description Lists all posts including drafts, newest first.
// @Tags Admin - Blog
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPost}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog [get]
func GetPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Count(&total).Error; err != nil {
		log.Printf("[admin.blog.list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	posts := make([]models.BlogPost, 0)
	if err := config.DB.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&posts).Error; err != nil {
		log.Printf("[admin.blog.list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Posts fetched successfully", posts, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}

// GetPostByID godoc
// @Summary Get a blog post by ID (admin)
// @Tags Admin - Blog
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/blog/{id} [get]
func GetPostByID(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}
