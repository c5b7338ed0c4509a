package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gmartins-dev/salesdesk/internal/domain/dto"
	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/gmartins-dev/salesdesk/internal/storage"
	"github.com/google/uuid"
)

// ErrReportNotFound is returned when no report record matches the given id.
var ErrReportNotFound = errors.New("report not found")

// ValidationError marks client input problems so handlers can map them to 400.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

var knownReportTypes = map[string]bool{
	models.ReportTypeSales:     true,
	models.ReportTypePurchase:  true,
	models.ReportTypeInventory: true,
	models.ReportTypeProfit:    true,
}

var knownFormats = map[string]bool{
	models.FormatJSON:  true,
	models.FormatPDF:   true,
	models.FormatExcel: true,
	models.FormatCSV:   true,
}

// ReportService manages stored report records for the admin UI.
type ReportService interface {
	Create(ctx context.Context, req dto.CreateReportRequest) (*models.Report, error)
	List(ctx context.Context, query dto.ListReportsQuery) ([]models.Report, dto.Pagination, error)
	GetByID(ctx context.Context, id string) (*models.Report, error)
	Delete(ctx context.Context, id string) error
}

type reportService struct {
	repo storage.ReportsRepository
	now  func() time.Time
}

func NewReportService(repo storage.ReportsRepository) ReportService {
	return &reportService{repo: repo, now: time.Now}
}

// Create validates the request (the same rules the report modal enforces:
// known type, non-blank title, both dates present, start not after end) and
// stores the record. When the period is empty and a period type is given, the
// range is derived from the current date.
func (s *reportService) Create(ctx context.Context, req dto.CreateReportRequest) (*models.Report, error) {
	if !knownReportTypes[req.ReportType] {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown report type %q", req.ReportType)}
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, &ValidationError{Reason: "Report title is required"}
	}

	period := req.Period
	if period.StartDate == "" && period.EndDate == "" && req.PeriodType != "" {
		derived, err := DefaultPeriod(req.PeriodType, s.now())
		if err != nil {
			return nil, &ValidationError{Reason: err.Error()}
		}
		period = derived
	}

	if period.StartDate == "" || period.EndDate == "" {
		return nil, &ValidationError{Reason: "Start date and end date are required"}
	}

	start, err := time.Parse(DateLayout, period.StartDate)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid startDate format, expected YYYY-MM-DD"}
	}
	end, err := time.Parse(DateLayout, period.EndDate)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid endDate format, expected YYYY-MM-DD"}
	}
	if start.After(end) {
		return nil, &ValidationError{Reason: "Start date must be before end date"}
	}

	format := req.Format
	if format == "" {
		format = models.FormatJSON
	}
	if !knownFormats[format] {
		return nil, &ValidationError{Reason: fmt.Sprintf("unknown format %q", format)}
	}

	report := &models.Report{
		ID:         uuid.New(),
		ReportType: req.ReportType,
		Title:      title,
		Period:     period,
		Format:     format,
		Parameters: req.Parameters,
		Status:     "completed",
		CreatedAt:  s.now(),
	}

	if err := s.repo.Insert(ctx, report); err != nil {
		return nil, err
	}
	return report, nil
}

func (s *reportService) List(ctx context.Context, query dto.ListReportsQuery) ([]models.Report, dto.Pagination, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	lim := query.Limit
	if lim < 1 {
		lim = 10
	}
	if lim > 100 {
		lim = 100
	}

	reports, total, err := s.repo.List(ctx, storage.ReportFilter{
		ReportType: query.ReportType,
		Page:       page,
		Limit:      lim,
		Sort:       query.Sort,
	})
	if err != nil {
		return nil, dto.Pagination{}, err
	}

	pages := (total + lim - 1) / lim
	return reports, dto.Pagination{Page: page, Limit: lim, Total: total, Pages: pages}, nil
}

func (s *reportService) GetByID(ctx context.Context, id string) (*models.Report, error) {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return nil, &ValidationError{Reason: "invalid report id"}
	}

	report, err := s.repo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	if report == nil {
		return nil, ErrReportNotFound
	}
	return report, nil
}

func (s *reportService) Delete(ctx context.Context, id string) error {
	reportID, err := uuid.Parse(id)
	if err != nil {
		return &ValidationError{Reason: "invalid report id"}
	}

	deleted, err := s.repo.Delete(ctx, reportID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrReportNotFound
	}
	return nil
}
