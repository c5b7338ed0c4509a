package storage

import (
	"context"
	"database/sql"
	"time"

	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/google/uuid"
)

// OrdersRepository reads order data owned by the order-management system.
// This service never writes to these tables.
type OrdersRepository interface {
	// FindDeliveredBetween returns all delivered orders whose creation time
	// falls within [start, end], newest first, with their line items. Items
	// are LEFT-JOINed to products so a deleted product shows up as a nil
	// Product reference rather than dropping the line. Orders without items
	// are still returned (they count toward the order total).
	FindDeliveredBetween(ctx context.Context, start, end time.Time) ([]models.Order, error)
}

type ordersRepository struct {
	db *sql.DB
}

func NewOrdersRepository(db *sql.DB) OrdersRepository {
	return &ordersRepository{db: db}
}

const findDeliveredQuery = `
	SELECT o.id, o.order_number, o.status, o.customer_name, o.created_at,
	       i.product_id, i.quantity, i.unit_price,
	       p.id, p.name, p.sku, p.unit
	FROM orders o
	LEFT JOIN order_items i ON i.order_id = o.id
	LEFT JOIN products p ON p.id = i.product_id
	WHERE o.status = $1 AND o.created_at BETWEEN $2 AND $3
	ORDER BY o.created_at DESC, o.id
`

func (r *ordersRepository) FindDeliveredBetween(ctx context.Context, start, end time.Time) ([]models.Order, error) {
	rows, err := r.db.QueryContext(ctx, findDeliveredQuery, models.StatusDelivered, start, end)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var orders []models.Order
	var current *models.Order

	for rows.Next() {
		var (
			orderID      uuid.UUID
			orderNumber  string
			status       string
			customerName sql.NullString
			createdAt    time.Time

			productID uuid.NullUUID
			quantity  sql.NullInt64
			unitPrice sql.NullFloat64

			prodID   uuid.NullUUID
			prodName sql.NullString
			prodSKU  sql.NullString
			prodUnit sql.NullString
		)

		if err := rows.Scan(
			&orderID, &orderNumber, &status, &customerName, &createdAt,
			&productID, &quantity, &unitPrice,
			&prodID, &prodName, &prodSKU, &prodUnit,
		); err != nil {
			return nil, err
		}

		// Rows are ordered by order id, so a change of id starts a new order.
		if current == nil || current.ID != orderID {
			orders = append(orders, models.Order{
				ID:           orderID,
				OrderNumber:  orderNumber,
				Status:       status,
				CustomerName: customerName.String,
				CreatedAt:    createdAt,
			})
			current = &orders[len(orders)-1]
		}

		// NULL product_id means the order has no items at all (LEFT JOIN miss).
		if !productID.Valid {
			continue
		}

		item := models.OrderItem{
			ProductID: productID.UUID,
			Quantity:  int(quantity.Int64),
			UnitPrice: unitPrice.Float64,
		}
		if prodID.Valid {
			item.Product = &models.Product{
				ID:   prodID.UUID,
				Name: prodName.String,
				SKU:  prodSKU.String,
				Unit: prodUnit.String,
			}
		}
		current.Items = append(current.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
