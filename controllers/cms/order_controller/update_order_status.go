package order_controller

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kon1973/nexu-webshop-sub001/config"
	"github.com/kon1973/nexu-webshop-sub001/models"
)

// UpdateOrderStatus godoc
// @Summary Update order status (admin)
// @Description Update an order status. admin_notes is optional for all statuses, but required when status is cancelled (cancellation reason).
// @Tags Admin - Orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID (UUID)"
// @Param payload body models.UpdateOrderStatusRequest true "Update payload"
// @Success 200 {object} models.ApiResponse{data=models.UpdateOrderStatusResponse}
// @Failure 400 {object} models.ApiResponse "Bad request"
// @Failure 404 {object} models.ApiResponse "Order not found"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /admin/orders/{id}/status [patch]
func UpdateOrderStatus(c *gin.Context) {
	orderIDStr := strings.TrimSpace(c.Param("id"))
	orderID, err := uuid.Parse(orderIDStr)
	if err != nil {
		log.Printf("[admin.order.update] bad request: invalid order id")
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid order ID"))
		return
	}

	var req models.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("[admin.order.update] bad request: bind json err=%v", err)
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}

	req.Status = strings.TrimSpace(strings.ToLower(req.Status))

	// admin_notes supported for all statuses, but required for cancelled
	if req.Status == models.OrderStatusCancelled {
		if req.AdminNotes == nil || strings.TrimSpace(*req.AdminNotes) == "" {
			log.Printf("[admin.order.update] bad request: cancelled without admin_notes")
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "admin_notes is required when cancelling an order"))
			return
		}
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	q := `
		UPDATE orders
		SET
			status = ?::text,
			admin_notes = CASE
				WHEN ?::text IS NULL THEN admin_notes
				ELSE ?::text
			END,
			updated_at = NOW(),
			confirmed_at = CASE
				WHEN ?::text = 'confirmed' AND confirmed_at IS NULL THEN NOW()
				ELSE confirmed_at
			END,
			shipped_at = CASE
				WHEN ?::text = 'shipped' AND shipped_at IS NULL THEN NOW()
				ELSE shipped_at
			END,
			delivered_at = CASE
				WHEN ?::text = 'delivered' AND delivered_at IS NULL THEN NOW()
				ELSE delivered_at
			END,
			returned_at = CASE
				WHEN ?::text = 'returned' AND returned_at IS NULL THEN NOW()
				ELSE returned_at
			END
		WHERE id = ?
		RETURNING id::text AS id, order_number, status, admin_notes
	`

	var out models.UpdateOrderStatusResponse
	err = config.DB.WithContext(ctx).Raw(
		q,
		req.Status,
		req.AdminNotes,
		req.AdminNotes,
		req.Status,
		req.Status,
		req.Status,
		req.Status,
		orderID,
	).Scan(&out).Error
	if err != nil {
		log.Printf("[admin.order.update] ERROR update failed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update order"))
		return
	}

	if out.OrderNumber == "" {
		log.Printf("[admin.order.update] order not found id=%s", orderID)
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Order not found"))
		return
	}

	log.Printf("[admin.order.update] success order_number=%s status=%s", out.OrderNumber, out.Status)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Order updated successfully", out))
}
