package order_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// GetOrders godoc
// @Summary List orders (admin)
// @Tags Admin - Orders
// @Produce json
// @Param status query string false "Status filter" Enums(pending, confirmed, shipped, delivered, cancelled, returned)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse{data=[]models.OrderListItem}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/orders [get]
func GetOrders(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	status := c.Query("status")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	where := "1=1"
	args := []interface{}{}
	if status != "" {
		where = "o.status = ?"
		args = append(args, status)
	}

	var total int64
	if err := config.DB.WithContext(ctx).
		Raw("SELECT COUNT(*) FROM orders o WHERE "+where, args...).
		Scan(&total).Error; err != nil {
		log.Printf("[admin.order.list] ERROR count err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	query := `
		SELECT
			o.id::text AS id,
			o.order_number,
			o.customer_name,
			o.status,
			o.total_amount,
			(SELECT COUNT(*) FROM order_items i WHERE i.order_id = o.id)::int AS item_count,
			o.created_at
		FROM orders o
		WHERE ` + where + `
		ORDER BY o.created_at DESC
		LIMIT ? OFFSET ?
	`
	args = append(args, limit, (page-1)*limit)

	orders := make([]models.OrderListItem, 0)
	if err := config.DB.WithContext(ctx).Raw(query, args...).Scan(&orders).Error; err != nil {
		log.Printf("[admin.order.list] ERROR fetch err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch orders"))
		return
	}

	totalPages := (int(total) + limit - 1) / limit
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Orders fetched successfully", orders, &models.Pagination{
		Page:       page,
		Limit:      limit,
		Total:      int(total),
		TotalPages: totalPages,
	}))
}

// GetOrderByID godoc
// @Summary Get an order with its items (admin)
// @Tags Admin - Orders
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Success 200 {object} models.ApiResponse{data=models.OrderWithItems}
// @Failure 404 {object} models.ApiResponse
// @Router /admin/orders/{id} [get]
func GetOrderByID(c *gin.Context) {
	orderID := c.Param("id")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var order models.Order
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT id::text AS id, order_number, customer_name, customer_email,
			subtotal, shipping_cost, total_amount, status, customer_notes, admin_notes,
			created_at, updated_at, confirmed_at, shipped_at, delivered_at, returned_at
			FROM orders WHERE id = ?`, orderID).
		Scan(&order).Error; err != nil || order.ID == "" {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	items := make([]models.OrderItem, 0)
	if err := config.DB.WithContext(ctx).
		Raw(`SELECT id::text AS id, order_id::text AS order_id, product_id::text AS product_id,
			product_name, variant_name, price, quantity, subtotal
			FROM order_items WHERE order_id = ? ORDER BY created_at ASC`, orderID).
		Scan(&items).Error; err != nil {
		log.Printf("[admin.order.get] ERROR fetching items order=%s err=%v", orderID, err)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order fetched successfully", models.OrderWithItems{
		Order: order,
		Items: items,
	}))
}
