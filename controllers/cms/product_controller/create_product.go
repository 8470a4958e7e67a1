package product_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	spec_cache "github.com/kon1973/nexu-webshop-sub001/cache"
	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// CreateProduct godoc
// @Summary Create a new product
// @Description Create a product; the specification list is sanitized before persistence (empty text values dropped, boolean false kept)
// @Tags CMS - Products
// @Accept json
// @Produce json
// @Param product body models.ProductRequest true "Product details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/products [post]
func CreateProduct(c *gin.Context) {
	var req models.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.product.create] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	if req.Status == "" {
		req.Status = models.ProductStatusDraft
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Validate subcategory exists and is a leaf.
	var subCategory models.Category
	if err := config.DB.WithContext(ctx).
		Select("id, name, parent_id").
		First(&subCategory, "id = ?", req.SubCategoryID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid sub_category_id"))
		} else {
			log.Printf("[admin.product.create] ERROR category lookup err=%v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}
	if subCategory.ParentID == nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Products must be assigned to a subcategory"))
		return
	}

	product := models.Product{
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		ImageURL:       req.ImageURL,
		SubCategoryID:  req.SubCategoryID,
		Status:         req.Status,
		Tags:           models.TagsList(req.Tags),
		Specifications: specs.Sanitize(req.Specifications),
		Attributes:     models.AttributeList(req.Attributes),
		Variants:       models.VariantList(req.Variants),
	}

	if err := config.DB.WithContext(ctx).Create(&product).Error; err != nil {
		log.Printf("[admin.product.create] ERROR insert err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create product"))
		return
	}

	spec_cache.Invalidate()

	log.Printf("[admin.product.create] created id=%s name=%q specs=%d", product.ID, product.Name, len(product.Specifications))

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Product created successfully", product))
}
