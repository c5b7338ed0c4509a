package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gmartins-dev/salesdesk/internal/domain/models"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// ReportFilter narrows and pages a report listing.
type ReportFilter struct {
	ReportType string // empty means all types
	Page       int    // 1-based
	Limit      int
	Sort       string // "createdAt" or "-createdAt" (default)
}

// ReportsRepository persists report records created by the admin UI.
type ReportsRepository interface {
	Insert(ctx context.Context, report *models.Report) error
	// List returns one page of reports plus the total match count.
	List(ctx context.Context, filter ReportFilter) ([]models.Report, int, error)
	// GetByID returns nil, nil when no report with the given id exists.
	GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error)
	// Delete reports whether a row was actually removed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

type reportsRepository struct {
	db *sql.DB
}

func NewReportsRepository(db *sql.DB) ReportsRepository {
	return &reportsRepository{db: db}
}

func (r *reportsRepository) Insert(ctx context.Context, report *models.Report) error {
	params, err := json.Marshal(report.Parameters)
	if err != nil {
		return fmt.Errorf("marshal report parameters: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO reports (id, report_type, title, period_start, period_end, format, parameters, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`,
		report.ID, report.ReportType, report.Title,
		report.Period.StartDate, report.Period.EndDate,
		report.Format, params, report.Status, report.CreatedAt,
	)
	return err
}

func (r *reportsRepository) List(ctx context.Context, filter ReportFilter) ([]models.Report, int, error) {
	conditions := "1=1"
	var args []interface{}
	if filter.ReportType != "" {
		args = append(args, filter.ReportType)
		conditions += fmt.Sprintf(" AND report_type = $%d", len(args))
	}

	order := "created_at DESC"
	if filter.Sort == "createdAt" {
		order = "created_at ASC"
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	lim := filter.Limit
	if lim < 1 {
		lim = 10
	}
	offset := (page - 1) * lim

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM reports WHERE %s`, conditions)
	pageQuery := fmt.Sprintf(`
		SELECT id, report_type, title, period_start, period_end, format, parameters, status, created_at
		FROM reports
		WHERE %s
		ORDER BY %s
		LIMIT %d OFFSET %d
	`, conditions, order, lim, offset)

	var (
		reports []models.Report
		total   int
	)

	// Count and page are independent reads; run them concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return r.db.QueryRowContext(gctx, countQuery, args...).Scan(&total)
	})
	g.Go(func() error {
		rows, err := r.db.QueryContext(gctx, pageQuery, args...)
		if err != nil {
			return err
		}
		defer func() { _ = rows.Close() }()

		for rows.Next() {
			rec, err := scanReport(rows)
			if err != nil {
				return err
			}
			reports = append(reports, *rec)
		}
		return rows.Err()
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	return reports, total, nil
}

func (r *reportsRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Report, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT id, report_type, title, period_start, period_end, format, parameters, status, created_at
		FROM reports
		WHERE id = $1
	`, id)

	rec, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *reportsRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanReport(row rowScanner) (*models.Report, error) {
	var (
		rec    models.Report
		params []byte
	)
	if err := row.Scan(
		&rec.ID, &rec.ReportType, &rec.Title,
		&rec.Period.StartDate, &rec.Period.EndDate,
		&rec.Format, &params, &rec.Status, &rec.CreatedAt,
	); err != nil {
		return nil, err
	}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &rec.Parameters); err != nil {
			return nil, fmt.Errorf("unmarshal report parameters: %w", err)
		}
	}
	return &rec, nil
}
