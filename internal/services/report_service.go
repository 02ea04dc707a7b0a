package services

import (
	"context"
	"encoding/csv"
	"io"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/slices"

	"shopBack/internal/models"
)

type ReportStore interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
	SalesRows(ctx context.Context, from, to time.Time) ([]models.SalesRow, error)
}

// SummaryCache is the cache-aside seam in front of the dashboard query.
type SummaryCache interface {
	Get(ctx context.Context) (models.DashboardSummary, bool)
	Set(ctx context.Context, summary models.DashboardSummary)
}

type ReportService struct {
	Reports ReportStore
	Cache   SummaryCache
}

// Dashboard serves the aggregate snapshot, preferring the cached copy.
func (s *ReportService) Dashboard(ctx context.Context) (models.DashboardSummary, error) {
	if s.Cache != nil {
		if summary, ok := s.Cache.Get(ctx); ok {
			return summary, nil
		}
	}

	summary, err := s.Reports.Summary(ctx)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	summary.GeneratedAt = time.Now()

	if s.Cache != nil {
		s.Cache.Set(ctx, summary)
	}
	return summary, nil
}

var salesCSVHeader = []string{"order_number", "email", "status", "payment_status", "total", "created_at"}

// WriteSalesCSV streams the sales report for [from, to] as CSV, oldest
// order first.
func (s *ReportService) WriteSalesCSV(ctx context.Context, w io.Writer, from, to time.Time) error {
	rows, err := s.Reports.SalesRows(ctx, from, to)
	if err != nil {
		return err
	}

	slices.SortFunc(rows, func(a, b models.SalesRow) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.OrderNumber, b.OrderNumber)
	})

	cw := csv.NewWriter(w)
	if err := cw.Write(salesCSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.OrderNumber,
			row.Email,
			row.Status,
			row.PaymentStatus,
			strconv.FormatFloat(row.Total, 'f', 2, 64),
			row.CreatedAt.Format(time.RFC3339),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
