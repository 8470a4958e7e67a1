package blog_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/utils"
)

// CreatePost godoc
// @Summary Create a blog post (admin)
// @Description Creates a draft blog post. The slug is derived from the title.
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Param payload body models.BlogPostRequest true "Post payload"
// @Success 201 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse "Slug already taken"
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog [post]
func CreatePost(c *gin.Context) {
	var req models.BlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.blog.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	slug := utils.Slugify(req.Title)
	if slug == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Title must contain at least one letter or digit"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("slug = ?", slug).
		Count(&existing).Error; err != nil {
		log.Printf("[admin.blog.create] ERROR slug check err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A post with this title already exists"))
		return
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}

	post := models.BlogPost{
		Title:   strings.TrimSpace(req.Title),
		Slug:    slug,
		Excerpt: req.Excerpt,
		Body:    req.Body,
		Tags:    models.TagsList(tags),
	}

	if err := config.DB.WithContext(ctx).Create(&post).Error; err != nil {
		log.Printf("[admin.blog.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create post"))
		return
	}

	log.Printf("[admin.blog.create] created id=%s slug=%s", post.ID, post.Slug)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Post created successfully", post))
}
