package blog_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// UpdatePost godoc
// @Summary Update a blog post (admin)
// @Description Partially updates a blog post. The slug never changes after create.
// @Tags Admin - Blog
// @Accept json
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Param payload body models.UpdateBlogPostRequest true "Fields to update"
// @Success 200 {object} models.ApiResponse{data=models.BlogPost}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog/{id} [patch]
func UpdatePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	var req models.UpdateBlogPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.blog.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	updates := map[string]interface{}{}
	if req.Title != nil {
		updates["title"] = *req.Title
	}
	if req.Excerpt != nil {
		updates["excerpt"] = *req.Excerpt
	}
	if req.Body != nil {
		updates["body"] = *req.Body
	}
	if req.Tags != nil {
		updates["tags"] = models.TagsList(*req.Tags)
	}
	if len(updates) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "No fields to update"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).
		Model(&models.BlogPost{}).
		Where("id = ?", postID).
		Updates(updates)
	if result.Error != nil {
		log.Printf("[admin.blog.update] ERROR update id=%s err=%v", postID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	var post models.BlogPost
	if err := config.DB.WithContext(ctx).First(&post, "id = ?", postID).Error; err != nil {
		log.Printf("[admin.blog.update] ERROR reload id=%s err=%v", postID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update post"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post updated successfully", post))
}

// DeletePost godoc
// @Summary Delete a blog post (admin)
// @Tags Admin - Blog
// @Produce json
// @Param id path string true "Post ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/blog/{id} [delete]
func DeletePost(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid post ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	result := config.DB.WithContext(ctx).Delete(&models.BlogPost{}, "id = ?", postID)
	if result.Error != nil {
		log.Printf("[admin.blog.delete] ERROR delete id=%s err=%v", postID, result.Error)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete post"))
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Post not found"))
		return
	}

	log.Printf("[admin.blog.delete] deleted id=%s", postID)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Post deleted successfully", nil))
}
