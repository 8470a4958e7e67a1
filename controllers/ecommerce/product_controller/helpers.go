package product_controller

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
	"github.com/kon1973/nexu-webshop-sub001/specs"
)

// ─────────────────────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────────────────────

// buildStorefrontOrderClause builds the ORDER BY clause shared by handlers.
func buildStorefrontOrderClause(sortBy, sortOrder string) string {
	order := "DESC"
	if strings.ToUpper(sortOrder) == "ASC" {
		order = "ASC"
	}

	switch sortBy {
	case "price":
		return fmt.Sprintf("p.price %s", order)
	case "name":
		return fmt.Sprintf("p.name %s", order)
	case "popular":
		return fmt.Sprintf("p.views %s", order)
	case "newest":
		return fmt.Sprintf("p.created_at %s", order)
	default:
		return "p.created_at DESC"
	}
}

func parsePagination(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "12"))

	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 12
	}

	return page, limit
}

// appendSpecConditions turns the decoded facet selection into JSONB
// intersection filters: for every selected key the product must hold
// an entry with that key and one of the selected values. Booleans
// compare through ->> as "true"/"false" text, same as the stored JSON.
func appendSpecConditions(conditions []string, args []interface{}, selection *specs.Selection) ([]string, []interface{}) {
	for _, kv := range selection.Text() {
		placeholders := make([]string, len(kv.Values))
		for i := range kv.Values {
			placeholders[i] = "?"
		}
		cond := fmt.Sprintf(
			`EXISTS (
				SELECT 1
				FROM jsonb_array_elements(p.specifications) AS spec
				WHERE spec->>'key' = ?
				  AND spec->>'value' IN (%s)
			)`,
			strings.Join(placeholders, ","),
		)
		conditions = append(conditions, cond)
		args = append(args, kv.Key)
		for _, v := range kv.Values {
			args = append(args, v)
		}
	}

	for _, kb := range selection.Bools() {
		cond := `EXISTS (
			SELECT 1
			FROM jsonb_array_elements(p.specifications) AS spec
			WHERE spec->>'key' = ?
			  AND spec->>'value' = ?
		)`
		conditions = append(conditions, cond)
		args = append(args, kb.Key, strconv.FormatBool(kb.Value))
	}

	return conditions, args
}

// ─────────────────────────────────────────────────────────────
// Database fetcher (THIN RESPONSE)
// ─────────────────────────────────────────────────────────────

func fetchStorefrontProductsFromDB(
	c *gin.Context,
	whereClause string,
	orderClause string,
	args []interface{},
	page int,
	limit int,
) ([]models.StorefrontProductResponse, int, error) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	offset := (page - 1) * limit

	countQuery := fmt.Sprintf(`
		SELECT COUNT(DISTINCT p.id)
		FROM products p
		WHERE %s
	`, whereClause)

	var totalCount int64
	if err := config.DB.
		WithContext(ctx).
		Raw(countQuery, args...).
		Scan(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	dataQuery := fmt.Sprintf(`
		SELECT
			p.id::text AS id,
			p.name,
			p.price,
			COALESCE(p.image_url, '') AS image
		FROM products p
		WHERE %s
		ORDER BY %s
		LIMIT ? OFFSET ?
	`, whereClause, orderClause)

	dataArgs := append(args, limit, offset)

	products := make([]models.StorefrontProductResponse, 0)

	if err := config.DB.
		WithContext(ctx).
		Raw(dataQuery, dataArgs...).
		Scan(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, int(totalCount), nil
}
