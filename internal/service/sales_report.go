package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/gmartins-dev/salesdesk/internal/logger"
	"github.com/gmartins-dev/salesdesk/internal/storage"
)

// DateLayout is the wire format for report dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ErrInvalidRange reports a missing or malformed report date.
var ErrInvalidRange = errors.New("invalid date range")

// SalesReportService computes the per-product sales summary for a date range.
type SalesReportService interface {
	// GetSalesReport aggregates all delivered orders created within the
	// inclusive calendar-day range [startDate, endDate]. The dates are
	// YYYY-MM-DD strings; malformed input yields ErrInvalidRange. The raw
	// strings are echoed back in the summary untouched.
	GetSalesReport(ctx context.Context, startDate, endDate string) (*models.SalesReport, error)
}

type salesReportService struct {
	orders storage.OrdersRepository
}

func NewSalesReportService(orders storage.OrdersRepository) SalesReportService {
	return &salesReportService{orders: orders}
}

func (s *salesReportService) GetSalesReport(ctx context.Context, startDate, endDate string) (*models.SalesReport, error) {
	start, err := time.ParseInLocation(DateLayout, startDate, time.Local)
	if err != nil {
		return nil, ErrInvalidRange
	}
	end, err := time.ParseInLocation(DateLayout, endDate, time.Local)
	if err != nil {
		return nil, ErrInvalidRange
	}

	// Widen to full calendar days: [start 00:00:00.000, end 23:59:59.999].
	end = time.Date(end.Year(), end.Month(), end.Day(), 23, 59, 59, 999_000_000, time.Local)

	logger.L().Info().
		Time("start", start).
		Time("end", end).
		Msg("fetching sales report")

	orders, err := s.orders.FindDeliveredBetween(ctx, start, end)
	if err != nil {
		return nil, err
	}

	logger.L().Info().Int("orders", len(orders)).Msg("delivered orders found")

	report := aggregateSales(orders)
	report.Summary.StartDate = startDate
	report.Summary.EndDate = endDate
	return report, nil
}

// aggregateSales folds delivered orders into per-product rollups plus a
// window summary. It is a pure function of its input: no shared state, so two
// runs over the same orders produce identical output.
//
// Line items whose product no longer exists are logged and skipped entirely;
// they contribute to neither the per-product entries nor the revenue and
// quantity totals. The order itself still counts toward totalOrders.
func aggregateSales(orders []models.Order) *models.SalesReport {
	byProduct := make(map[string]*models.ProductSales)
	salesList := make([]models.ProductSales, 0)
	var index []string // product ids in first-seen order

	summary := models.ReportSummary{TotalOrders: len(orders)}

	for _, order := range orders {
		customerName := order.CustomerName
		if customerName == "" {
			customerName = "N/A"
		}

		for _, item := range order.Items {
			if item.Product == nil {
				logger.L().Warn().
					Str("order_number", order.OrderNumber).
					Str("product_id", item.ProductID.String()).
					Msg("product not found for order item, skipping")
				continue
			}

			itemTotal := float64(item.Quantity) * item.UnitPrice
			summary.TotalRevenue += itemTotal
			summary.TotalQuantity += item.Quantity

			line := models.OrderLine{
				OrderNumber:  order.OrderNumber,
				OrderDate:    order.CreatedAt,
				CustomerName: customerName,
				Status:       order.Status,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
				Subtotal:     itemTotal,
			}

			key := item.Product.ID.String()
			if entry, ok := byProduct[key]; ok {
				entry.Quantity += item.Quantity
				entry.TotalAmount += itemTotal
				entry.UnitPrice = item.UnitPrice
				entry.Orders = append(entry.Orders, line)
			} else {
				unit := item.Product.Unit
				if unit == "" {
					unit = "pcs"
				}
				byProduct[key] = &models.ProductSales{
					ProductID:   key,
					Name:        item.Product.Name,
					SKU:         item.Product.SKU,
					Unit:        unit,
					Quantity:    item.Quantity,
					UnitPrice:   item.UnitPrice,
					TotalAmount: itemTotal,
					Orders:      []models.OrderLine{line},
				}
				index = append(index, key)
			}
		}
	}

	for _, key := range index {
		salesList = append(salesList, *byProduct[key])
	}

	// Highest revenue first; stable sort keeps first-seen order on ties.
	sort.SliceStable(salesList, func(i, j int) bool {
		return salesList[i].TotalAmount > salesList[j].TotalAmount
	})

	summary.ProductCount = len(salesList)

	return &models.SalesReport{SalesList: salesList, Summary: summary}
}
