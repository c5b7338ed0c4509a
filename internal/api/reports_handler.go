package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmartins-dev/salesdesk/internal/domain/dto"
	"github.com/gmartins-dev/salesdesk/internal/service"
)

// ReportsHandler serves the report-record CRUD consumed by the admin UI.
type ReportsHandler struct {
	svc service.ReportService
}

func NewReportsHandler(svc service.ReportService) *ReportsHandler {
	return &ReportsHandler{svc: svc}
}

// CreateReport handles POST /api/reports.
//
// CreateReport godoc
// @Summary      Create a report record
// @Description  Stores a report record; the period may be derived from a period type (today, week, month, quarter, year)
// @Tags         reports
// @Accept       json
// @Produce      json
// @Param        report  body      dto.CreateReportRequest  true  "Report to create"
// @Security     BearerAuth
// @Success      201  {object}  dto.ReportResponse  "Created"
// @Failure      400  {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/reports [post]
func (h *ReportsHandler) CreateReport(c *gin.Context) {
	var req dto.CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	report, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse(verr.Reason, nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to create report", err))
		return
	}

	c.JSON(http.StatusCreated, dto.ReportResponse{
		Success: true,
		Message: "Report generated successfully",
		Report:  report,
	})
}

// ListReports handles GET /api/reports.
//
// ListReports godoc
// @Summary      List report records
// @Tags         reports
// @Produce      json
// @Param        reportType  query     string  false  "Filter by report type"  example(sales)
// @Param        page        query     int     false  "Page number"            example(1)
// @Param        limit       query     int     false  "Page size"              example(10)
// @Param        sort        query     string  false  "createdAt or -createdAt"
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportListResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse       "Internal Error"
// @Router       /api/reports [get]
func (h *ReportsHandler) ListReports(c *gin.Context) {
	var query dto.ListReportsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameters", err))
		return
	}

	reports, pagination, err := h.svc.List(c.Request.Context(), query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to list reports", err))
		return
	}

	c.JSON(http.StatusOK, dto.ReportListResponse{
		Success:    true,
		Reports:    reports,
		Pagination: pagination,
	})
}

// GetReport handles GET /api/reports/:id.
//
// GetReport godoc
// @Summary      Get one report record
// @Tags         reports
// @Produce      json
// @Param        id  path  string  true  "Report id"
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse   "Not Found"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/reports/{id} [get]
func (h *ReportsHandler) GetReport(c *gin.Context) {
	report, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Report: report})
}

// DeleteReport handles DELETE /api/reports/:id.
//
// DeleteReport godoc
// @Summary      Delete a report record
// @Tags         reports
// @Produce      json
// @Param        id  path  string  true  "Report id"
// @Security     BearerAuth
// @Success      200  {object}  dto.ReportResponse  "Deleted"
// @Failure      404  {object}  dto.ErrorResponse   "Not Found"
// @Failure      500  {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/reports/{id} [delete]
func (h *ReportsHandler) DeleteReport(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ReportResponse{Success: true, Message: "Report deleted successfully"})
}

func (h *ReportsHandler) writeLookupError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(verr.Reason, nil))
	case errors.Is(err, service.ErrReportNotFound):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse("Report not found", nil))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to fetch report", err))
	}
}
