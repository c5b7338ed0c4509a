package storage

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/google/uuid"
)

func newMockOrdersRepo(t *testing.T) (*ordersRepository, sqlmock.Sqlmock, func()) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	repo := &ordersRepository{db: db}
	cleanup := func() { _ = db.Close() }
	return repo, mock, cleanup
}

const ordersQueryPattern = `SELECT o\.id, o\.order_number, o\.status, o\.customer_name, o\.created_at`

var orderColumns = []string{
	"id", "order_number", "status", "customer_name", "created_at",
	"product_id", "quantity", "unit_price",
	"p_id", "p_name", "p_sku", "p_unit",
}

func TestFindDeliveredBetween_AssemblesOrders(t *testing.T) {
	repo, mock, done := newMockOrdersRepo(t)
	defer done()

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 8, 31, 23, 59, 59, 999_000_000, time.UTC)

	order1 := uuid.NewString()
	order2 := uuid.NewString()
	prod := uuid.NewString()
	danglingProd := uuid.NewString()
	created := time.Date(2025, 8, 10, 14, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(orderColumns).
		// order1: one resolvable item, one whose product was deleted
		AddRow(order1, "ORD-001", "delivered", "Alice", created,
			prod, 2, 9.5, prod, "Widget", "WID-1", "pcs").
		AddRow(order1, "ORD-001", "delivered", "Alice", created,
			danglingProd, 1, 4.0, nil, nil, nil, nil).
		// order2: delivered but has no items at all
		AddRow(order2, "ORD-002", "delivered", nil, created.Add(-time.Hour),
			nil, nil, nil, nil, nil, nil, nil)

	mock.ExpectQuery(ordersQueryPattern).
		WithArgs(models.StatusDelivered, start, end).
		WillReturnRows(rows)

	orders, err := repo.FindDeliveredBetween(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}

	first := orders[0]
	if first.OrderNumber != "ORD-001" || first.CustomerName != "Alice" || len(first.Items) != 2 {
		t.Fatalf("unexpected first order: %+v", first)
	}
	if first.Items[0].Product == nil || first.Items[0].Product.Name != "Widget" {
		t.Fatalf("resolvable product not populated: %+v", first.Items[0])
	}
	if first.Items[1].Product != nil {
		t.Fatalf("deleted product must be nil: %+v", first.Items[1])
	}
	if first.Items[1].ProductID.String() != danglingProd {
		t.Fatalf("dangling reference lost: %+v", first.Items[1])
	}

	second := orders[1]
	if second.OrderNumber != "ORD-002" || second.CustomerName != "" || len(second.Items) != 0 {
		t.Fatalf("itemless order mishandled: %+v", second)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestFindDeliveredBetween_Empty(t *testing.T) {
	repo, mock, done := newMockOrdersRepo(t)
	defer done()

	start := time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	mock.ExpectQuery(ordersQueryPattern).
		WithArgs(models.StatusDelivered, start, end).
		WillReturnRows(sqlmock.NewRows(orderColumns))

	orders, err := repo.FindDeliveredBetween(context.Background(), start, end)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(orders) != 0 {
		t.Fatalf("expected no orders, got %d", len(orders))
	}
}

func TestFindDeliveredBetween_QueryError(t *testing.T) {
	repo, mock, done := newMockOrdersRepo(t)
	defer done()

	start := time.Now()
	mock.ExpectQuery(ordersQueryPattern).WillReturnError(errDummy{})

	if _, err := repo.FindDeliveredBetween(context.Background(), start, start); err == nil {
		t.Fatalf("expected error")
	}
}

type errDummy struct{}

func (errDummy) Error() string { return "dummy" }
