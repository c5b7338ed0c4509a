package models

import (
	"time"

	"github.com/google/uuid"
)

// Order statuses as used by the order-management system. Only delivered
// orders count as sales for reporting purposes.
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Product is catalog metadata referenced by order lines. Products can be
// deleted after orders were placed against them, so a reference from an
// OrderItem may no longer resolve.
type Product struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	SKU  string    `json:"sku"`
	Unit string    `json:"unit"` // unit label, e.g. "pcs", "kg"
}

// OrderItem is a single line of an order. UnitPrice is the price snapshot
// at purchase time, not the current catalog price.
type OrderItem struct {
	ProductID uuid.UUID `json:"product_id"`
	Product   *Product  `json:"product,omitempty"` // nil when the product was deleted
	Quantity  int       `json:"quantity"`
	UnitPrice float64   `json:"unit_price"`
}

// Order is an order record as read from the store. The order-management
// system owns these rows; this service only queries them.
type Order struct {
	ID           uuid.UUID   `json:"id"`
	OrderNumber  string      `json:"order_number"`
	Status       string      `json:"status"`
	CustomerName string      `json:"customer_name,omitempty"` // empty when the order has no customer attached
	CreatedAt    time.Time   `json:"created_at"`
	Items        []OrderItem `json:"items"`
}
