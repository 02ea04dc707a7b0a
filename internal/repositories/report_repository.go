package repositories

import (
	"context"
	"database/sql"
	"time"

	"shopBack/internal/models"
)

// ReportRepository runs the multi-statement reporting queries. The statements
// are not wrapped in a transaction; the snapshot may drift under concurrent
// writes, which is acceptable for reporting.
type ReportRepository struct {
	DB *sql.DB
}

func (r *ReportRepository) Summary(ctx context.Context) (models.DashboardSummary, error) {
	var summary models.DashboardSummary

	err := r.DB.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(total), 0) FROM orders`).
		Scan(&summary.TotalOrders, &summary.TotalRevenue)
	if err != nil {
		return models.DashboardSummary{}, err
	}

	rows, err := r.DB.QueryContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return models.DashboardSummary{}, err
	}
	defer rows.Close()

	summary.OrdersByStatus = make(map[string]int)
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return models.DashboardSummary{}, err
		}
		summary.OrdersByStatus[status] = count
	}
	if err := rows.Err(); err != nil {
		return models.DashboardSummary{}, err
	}

	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM users`).Scan(&summary.TotalUsers); err != nil {
		return models.DashboardSummary{}, err
	}
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM products`).Scan(&summary.TotalProducts); err != nil {
		return models.DashboardSummary{}, err
	}
	return summary, nil
}

func (r *ReportRepository) SalesRows(ctx context.Context, from, to time.Time) ([]models.SalesRow, error) {
	query := `SELECT o.order_number, u.email, o.status, o.payment_status, o.total, o.created_at
	          FROM orders o
	          JOIN users u ON u.id = o.user_id
	          WHERE o.created_at >= ? AND o.created_at <= ?`

	rows, err := r.DB.QueryContext(ctx, query, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []models.SalesRow
	for rows.Next() {
		var row models.SalesRow
		if err := rows.Scan(&row.OrderNumber, &row.Email, &row.Status, &row.PaymentStatus, &row.Total, &row.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}
