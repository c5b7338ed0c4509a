package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gmartins-dev/salesdesk/internal/domain/dto"
	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/gmartins-dev/salesdesk/internal/storage"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReportsRepo struct {
	inserted  *models.Report
	insertErr error

	listReports []models.Report
	listTotal   int
	listErr     error
	gotFilter   storage.ReportFilter

	byID    *models.Report
	byIDErr error

	deleted   bool
	deleteErr error
}

func (s *stubReportsRepo) Insert(_ context.Context, report *models.Report) error {
	s.inserted = report
	return s.insertErr
}

func (s *stubReportsRepo) List(_ context.Context, filter storage.ReportFilter) ([]models.Report, int, error) {
	s.gotFilter = filter
	return s.listReports, s.listTotal, s.listErr
}

func (s *stubReportsRepo) GetByID(_ context.Context, _ uuid.UUID) (*models.Report, error) {
	return s.byID, s.byIDErr
}

func (s *stubReportsRepo) Delete(_ context.Context, _ uuid.UUID) (bool, error) {
	return s.deleted, s.deleteErr
}

func validCreateRequest() dto.CreateReportRequest {
	return dto.CreateReportRequest{
		ReportType: models.ReportTypeSales,
		Title:      "Sales Report - August",
		Period:     models.ReportPeriod{StartDate: "2025-08-01", EndDate: "2025-08-31"},
		Format:     models.FormatJSON,
		Parameters: models.ReportParameters{IncludeProductBreakdown: true},
	}
}

func TestCreateReport_Validation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*dto.CreateReportRequest)
	}{
		{"unknown type", func(r *dto.CreateReportRequest) { r.ReportType = "payroll" }},
		{"blank title", func(r *dto.CreateReportRequest) { r.Title = "   " }},
		{"missing start date", func(r *dto.CreateReportRequest) { r.Period.StartDate = "" }},
		{"missing end date", func(r *dto.CreateReportRequest) { r.Period.EndDate = "" }},
		{"malformed start date", func(r *dto.CreateReportRequest) { r.Period.StartDate = "08/01/2025" }},
		{"start after end", func(r *dto.CreateReportRequest) {
			r.Period = models.ReportPeriod{StartDate: "2025-08-31", EndDate: "2025-08-01"}
		}},
		{"unknown format", func(r *dto.CreateReportRequest) { r.Format = "docx" }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &stubReportsRepo{}
			svc := NewReportService(repo)

			req := validCreateRequest()
			tc.mutate(&req)

			_, err := svc.Create(context.Background(), req)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Nil(t, repo.inserted, "nothing must be stored on validation failure")
		})
	}
}

func TestCreateReport_Success(t *testing.T) {
	repo := &stubReportsRepo{}
	svc := NewReportService(repo)

	report, err := svc.Create(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.Equal(t, models.ReportTypeSales, report.ReportType)
	assert.Equal(t, "completed", report.Status)
	assert.NotEqual(t, uuid.Nil, report.ID)
	assert.Equal(t, repo.inserted, report)
}

func TestCreateReport_TrimsTitleAndDefaultsFormat(t *testing.T) {
	repo := &stubReportsRepo{}
	svc := NewReportService(repo)

	req := validCreateRequest()
	req.Title = "  Monthly Sales  "
	req.Format = ""

	report, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Monthly Sales", report.Title)
	assert.Equal(t, models.FormatJSON, report.Format)
}

func TestCreateReport_DerivesPeriodFromType(t *testing.T) {
	repo := &stubReportsRepo{}
	svc := &reportService{
		repo: repo,
		now:  func() time.Time { return time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC) },
	}

	req := validCreateRequest()
	req.Period = models.ReportPeriod{}
	req.PeriodType = PeriodMonth

	report, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "2025-08-01", report.Period.StartDate)
	assert.Equal(t, "2025-08-31", report.Period.EndDate)
}

func TestCreateReport_StoreFailure(t *testing.T) {
	repo := &stubReportsRepo{insertErr: errors.New("insert failed")}
	svc := NewReportService(repo)

	_, err := svc.Create(context.Background(), validCreateRequest())
	require.Error(t, err)
	var verr *ValidationError
	assert.False(t, errors.As(err, &verr), "store errors are not validation errors")
}

func TestListReports_PaginationClamps(t *testing.T) {
	repo := &stubReportsRepo{listTotal: 42}
	svc := NewReportService(repo)

	_, pagination, err := svc.List(context.Background(), dto.ListReportsQuery{Page: -3, Limit: 500})
	require.NoError(t, err)

	assert.Equal(t, 1, pagination.Page)
	assert.Equal(t, 100, pagination.Limit)
	assert.Equal(t, 42, pagination.Total)
	assert.Equal(t, 1, pagination.Pages)
	assert.Equal(t, 1, repo.gotFilter.Page)
	assert.Equal(t, 100, repo.gotFilter.Limit)
}

func TestListReports_PageCount(t *testing.T) {
	repo := &stubReportsRepo{listTotal: 25}
	svc := NewReportService(repo)

	_, pagination, err := svc.List(context.Background(), dto.ListReportsQuery{Page: 2, Limit: 10, ReportType: "sales"})
	require.NoError(t, err)
	assert.Equal(t, 3, pagination.Pages)
	assert.Equal(t, "sales", repo.gotFilter.ReportType)
}

func TestGetByID(t *testing.T) {
	stored := &models.Report{ID: uuid.New(), Title: "kept"}

	cases := []struct {
		name    string
		id      string
		repo    *stubReportsRepo
		wantErr error
	}{
		{"found", stored.ID.String(), &stubReportsRepo{byID: stored}, nil},
		{"not found", uuid.NewString(), &stubReportsRepo{}, ErrReportNotFound},
		{"bad id", "not-a-uuid", &stubReportsRepo{}, nil}, // validation error
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := NewReportService(tc.repo)
			report, err := svc.GetByID(context.Background(), tc.id)
			switch {
			case tc.wantErr != nil:
				require.ErrorIs(t, err, tc.wantErr)
			case tc.name == "bad id":
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
			default:
				require.NoError(t, err)
				assert.Equal(t, stored, report)
			}
		})
	}
}

func TestDelete(t *testing.T) {
	svc := NewReportService(&stubReportsRepo{deleted: true})
	require.NoError(t, svc.Delete(context.Background(), uuid.NewString()))

	svc = NewReportService(&stubReportsRepo{deleted: false})
	require.ErrorIs(t, svc.Delete(context.Background(), uuid.NewString()), ErrReportNotFound)

	svc = NewReportService(&stubReportsRepo{deleteErr: errors.New("boom")})
	err := svc.Delete(context.Background(), uuid.NewString())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrReportNotFound)
}
