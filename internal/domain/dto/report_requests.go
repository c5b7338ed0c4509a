package dto

import "github.com/gmartins-dev/salesdesk/internal/domain/models"

// CreateReportRequest is the body of POST /api/reports, as sent by the admin
// UI's report modal. PeriodType is optional; when the period dates are left
// empty the server derives them from it (today, week, month, quarter, year).
type CreateReportRequest struct {
	ReportType string                  `json:"reportType" example:"sales"`
	Title      string                  `json:"title" example:"Sales Report - August"`
	Period     models.ReportPeriod     `json:"period"`
	PeriodType string                  `json:"periodType,omitempty" example:"month"`
	Format     string                  `json:"format" example:"json"`
	Parameters models.ReportParameters `json:"parameters"`
}

// ListReportsQuery captures the supported query parameters of
// GET /api/reports. Sort accepts "createdAt" or "-createdAt".
type ListReportsQuery struct {
	ReportType string `form:"reportType"`
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=10"`
	Sort       string `form:"sort,default=-createdAt"`
}
