package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gmartins-dev/salesdesk/internal/domain/dto"
	"github.com/gmartins-dev/salesdesk/internal/service"
)

// SalesReportHandler serves the live sales aggregation endpoint.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Invoke the aggregation service
//   - Translate results and errors into the JSON envelope the admin UI expects
type SalesReportHandler struct {
	svc service.SalesReportService
}

func NewSalesReportHandler(svc service.SalesReportService) *SalesReportHandler {
	return &SalesReportHandler{svc: svc}
}

// GetSalesReport handles GET /api/reports/sales.
//
// GetSalesReport godoc
// @Summary      Sales report for a date range
// @Description  Aggregates delivered orders within the inclusive day range into a per-product sales summary
// @Tags         reports
// @Produce      json
// @Param        startDate  query     string  true  "Start date in YYYY-MM-DD"  example(2025-08-01)
// @Param        endDate    query     string  true  "End date in YYYY-MM-DD"    example(2025-08-31)
// @Security     BearerAuth
// @Success      200  {object}  dto.SalesReportResponse  "Success"
// @Failure      400  {object}  dto.ErrorResponse        "Bad Request"
// @Failure      401  {object}  dto.ErrorResponse        "Unauthorized"
// @Failure      500  {object}  dto.ErrorResponse        "Internal Error"
// @Router       /api/reports/sales [get]
func (h *SalesReportHandler) GetSalesReport(c *gin.Context) {
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	// Presence check happens before any store access.
	if startDate == "" || endDate == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("Start date and end date are required", nil))
		return
	}

	report, err := h.svc.GetSalesReport(c.Request.Context(), startDate, endDate)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRange) {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", nil))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Failed to fetch sales report", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewSalesReportResponse(report))
}
