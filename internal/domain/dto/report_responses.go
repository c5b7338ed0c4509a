package dto

import "github.com/gmartins-dev/salesdesk/internal/domain/models"

// SalesReportResponse is the success payload of GET /api/reports/sales.
type SalesReportResponse struct {
	Success   bool                  `json:"success" example:"true"`
	SalesList []models.ProductSales `json:"salesList"`
	Summary   models.ReportSummary  `json:"summary"`
}

// NewSalesReportResponse wraps an aggregation result in the API envelope.
func NewSalesReportResponse(report *models.SalesReport) SalesReportResponse {
	return SalesReportResponse{
		Success:   true,
		SalesList: report.SalesList,
		Summary:   report.Summary,
	}
}

// Pagination describes the page window of a list response.
type Pagination struct {
	Page  int `json:"page" example:"1"`
	Limit int `json:"limit" example:"10"`
	Total int `json:"total" example:"42"`
	Pages int `json:"pages" example:"5"`
}

// ReportListResponse is the payload of GET /api/reports.
type ReportListResponse struct {
	Success    bool            `json:"success" example:"true"`
	Reports    []models.Report `json:"reports"`
	Pagination Pagination      `json:"pagination"`
}

// ReportResponse is the payload of GET /api/reports/:id and the body of
// mutation responses. Message is what the admin UI surfaces to the user.
type ReportResponse struct {
	Success bool           `json:"success" example:"true"`
	Message string         `json:"message,omitempty" example:"Report generated successfully"`
	Report  *models.Report `json:"report,omitempty"`
}
