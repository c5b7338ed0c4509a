package service

import (
	"fmt"
	"time"

	"github.com/gmartins-dev/salesdesk/internal/domain/models"
)

// Period type selectors offered by the report modal.
const (
	PeriodToday   = "today"
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
	PeriodCustom  = "custom"
)

// DefaultPeriod derives the date range for a period-type selection, computed
// from the given reference time:
//
//	today   — the reference day itself
//	week    — the last 7 days, ending on the reference day
//	month   — the reference day's calendar month
//	quarter — the reference day's calendar quarter
//	year    — the reference day's calendar year
//	custom  — no default; the caller must supply explicit dates
func DefaultPeriod(periodType string, now time.Time) (models.ReportPeriod, error) {
	var start, end time.Time

	switch periodType {
	case PeriodToday:
		start, end = now, now
	case PeriodWeek:
		start, end = now.AddDate(0, 0, -7), now
	case PeriodMonth:
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 1, -1)
	case PeriodQuarter:
		quarterMonth := time.Month((int(now.Month())-1)/3*3 + 1)
		start = time.Date(now.Year(), quarterMonth, 1, 0, 0, 0, 0, now.Location())
		end = start.AddDate(0, 3, -1)
	case PeriodYear:
		start = time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())
		end = time.Date(now.Year(), time.December, 31, 0, 0, 0, 0, now.Location())
	case PeriodCustom:
		return models.ReportPeriod{}, nil
	default:
		return models.ReportPeriod{}, fmt.Errorf("unknown period type %q", periodType)
	}

	return models.ReportPeriod{
		StartDate: start.Format(DateLayout),
		EndDate:   end.Format(DateLayout),
	}, nil
}
