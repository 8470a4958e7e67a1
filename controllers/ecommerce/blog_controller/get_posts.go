package blog_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetPublishedPosts godoc
// @Summary List published blog posts
// @Tags store
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} models.ApiResponse{data=[]models.BlogPostListItem}
// @Failure 500 {object} models.ApiResponse
// @Router /store/blog [get]
func GetPublishedPosts(c *gin.Context) {
	page, limit := parseBlogPagination(c)
	offset := (page - 1) * limit

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var total int64
	if err := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("published = ?", true).
		Count(&total).Error; err != nil {
		log.Printf("[store.blog] ERROR counting posts err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch posts"))
		return
	}

	posts := make([]models.BlogPostListItem, 0)
	if err := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Select("id::text AS id, title, slug, excerpt, published_at").
		Where("published = ?", true).
		Order("published_at DESC").
		Limit(limit).
		Offset(offset).
		Scan(&posts).Error; err != nil {
		log.Printf("[store.blog] ERROR fetching posts err=%v", err)
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

// GetPostBySlug godoc
// @Summary Get a published blog post by slug
// @Tags store
// @Produce json
// @Param slug path string true "Post slug"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 404 {object} models.ApiResponse
// @Router /store/blog/{slug} [get]
func GetPostBySlug(c *gin.Context) {
	slug := c.Param("slug")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).
		First(&post, "slug = ? AND published = ?", slug, true).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post fetched successfully", post))
}

func parseBlogPagination(c *gin.Context) (page, limit int) {
	page = 1
	limit = 10
	if p := c.Query("page"); p != "" {
		if v, err := strconv.Atoi(p); err == nil && v > 0 {
			page = v
		}
	}
	if l := c.Query("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 50 {
			limit = v
		}
	}
	return page, limit
}
