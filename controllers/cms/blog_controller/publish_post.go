package blog_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

type publishRequest struct {
	Published bool `json:"published"`
}

// PublishPost godoc
// @Summary Publish or unpublish a blog post (admin)
// @Description Toggles visibility. published_at is stamped on first publish and kept afterwards.
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param payload body publishRequest true "Publish flag"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog/{id}/publish [patch]
func PublishPost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	updates := map[string]interface{}{"published": req.Published}
	if req.Published && post.PublishedAt == nil {
		now := time.Now().UTC()
		updates["published_at"] = &now
	}

	if err := config.DB.WithContext(ctx).
		Model(&post).
		Updates(updates).Error; err != nil {
		log.Printf("[admin.blog.publish] ERROR update id=%s err=%v", postID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	log.Printf("[admin.blog.publish] id=%s published=%v", postID, req.Published)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated successfully", post))
}
