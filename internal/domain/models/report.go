package models

import (
	"time"

	"github.com/google/uuid"
)

// Report types accepted by the report-record API.
const (
	ReportTypeSales     = "sales"
	ReportTypePurchase  = "purchase"
	ReportTypeInventory = "inventory"
	ReportTypeProfit    = "profit"
)

// Report formats. Only the record is stored; file rendering is handled by a
// downstream export service.
const (
	FormatJSON  = "json"
	FormatPDF   = "pdf"
	FormatExcel = "excel"
	FormatCSV   = "csv"
)

// ReportPeriod is the inclusive calendar-day range a report covers.
// Dates are kept as YYYY-MM-DD strings, exactly as the admin UI sends them.
type ReportPeriod struct {
	StartDate string `json:"startDate" example:"2025-08-01"`
	EndDate   string `json:"endDate" example:"2025-08-31"`
}

// ReportParameters are the per-report options chosen in the admin UI.
type ReportParameters struct {
	IncludeCustomerBreakdown bool `json:"includeCustomerBreakdown"`
	IncludeProductBreakdown  bool `json:"includeProductBreakdown"`
}

// Report is a stored report record, created and listed by the admin UI.
type Report struct {
	ID         uuid.UUID        `json:"id"`
	ReportType string           `json:"reportType" example:"sales"`
	Title      string           `json:"title" example:"Sales Report - August"`
	Period     ReportPeriod     `json:"period"`
	Format     string           `json:"format" example:"json"`
	Parameters ReportParameters `json:"parameters"`
	Status     string           `json:"status" example:"completed"`
	CreatedAt  time.Time        `json:"createdAt"`
}

// OrderLine is one order-line contribution inside a ProductSales entry.
type OrderLine struct {
	OrderNumber  string    `json:"orderNumber"`
	OrderDate    time.Time `json:"orderDate"`
	CustomerName string    `json:"customerName"` // "N/A" when the order has no customer
	Status       string    `json:"status"`
	Quantity     int       `json:"quantity"`
	UnitPrice    float64   `json:"unitPrice"`
	Subtotal     float64   `json:"subtotal"`
}

// ProductSales is the per-product rollup produced by the sales aggregation.
// UnitPrice holds the last unit price seen for the product in the window.
type ProductSales struct {
	ProductID   string      `json:"productId"`
	Name        string      `json:"name"`
	SKU         string      `json:"sku"`
	Unit        string      `json:"unit"`
	Quantity    int         `json:"quantity"`
	UnitPrice   float64     `json:"unitPrice"`
	TotalAmount float64     `json:"totalAmount"`
	Orders      []OrderLine `json:"orders"`
}

// ReportSummary carries the window-wide totals for a sales report.
// StartDate and EndDate echo the caller's raw query strings.
type ReportSummary struct {
	TotalOrders   int     `json:"totalOrders"`
	TotalRevenue  float64 `json:"totalRevenue"`
	TotalQuantity int     `json:"totalQuantity"`
	ProductCount  int     `json:"productCount"`
	StartDate     string  `json:"startDate"`
	EndDate       string  `json:"endDate"`
}

// SalesReport is the full result of one aggregation run. It is never
// persisted; it lives for a single request/response cycle.
type SalesReport struct {
	SalesList []ProductSales `json:"salesList"`
	Summary   ReportSummary  `json:"summary"`
}
