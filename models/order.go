package models

import "time"

// Order statuses in transition order. Cancelled requires an admin
// note with the cancellation reason.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusShipped   = "shipped"
	OrderStatusDelivered = "delivered"
	OrderStatusCancelled = "cancelled"
	OrderStatusReturned  = "returned"
)

// Order represents a customer order. Read through raw SQL, so plain
// struct without GORM hooks.
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	Subtotal      float64    `json:"subtotal"`
	ShippingCost  float64    `json:"shipping_cost"`
	TotalAmount   float64    `json:"total_amount"`
	Status        string     `json:"status"`
	CustomerNotes *string    `json:"customer_notes,omitempty"`
	AdminNotes    *string    `json:"admin_notes,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
	ConfirmedAt   *time.Time `json:"confirmed_at,omitempty"`
	ShippedAt     *time.Time `json:"shipped_at,omitempty"`
	DeliveredAt   *time.Time `json:"delivered_at,omitempty"`
	ReturnedAt    *time.Time `json:"returned_at,omitempty"`
}

// OrderItem is one product line inside an order.
type OrderItem struct {
	ID          string  `json:"id"`
	OrderID     string  `json:"order_id"`
	ProductID   string  `json:"product_id"`
	ProductName string  `json:"product_name"`
	VariantName *string `json:"variant_name,omitempty"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Subtotal    float64 `json:"subtotal"`
}

type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// OrderListItem is the admin list row.
type OrderListItem struct {
	ID           string    `json:"id"`
	OrderNumber  string    `json:"order_number"`
	CustomerName string    `json:"customer_name"`
	Status       string    `json:"status"`
	TotalAmount  float64   `json:"total_amount"`
	ItemCount    int       `json:"item_count"`
	CreatedAt    time.Time `json:"created_at"`
}

type UpdateOrderStatusRequest struct {
	Status     string  `json:"status" binding:"required,oneof=pending confirmed shipped delivered cancelled returned"`
	AdminNotes *string `json:"admin_notes,omitempty"`
}

type UpdateOrderStatusResponse struct {
	ID          string  `json:"id"`
	OrderNumber string  `json:"order_number"`
	Status      string  `json:"status"`
	AdminNotes  *string `json:"admin_notes,omitempty"`
}
