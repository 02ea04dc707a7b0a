package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shopBack/internal/models"
)

type OrderRepository struct {
	DB *sql.DB
}

const orderColumns = `id, order_number, user_id, status, payment_status, total, shipping_address, created_at, updated_at`

func scanOrder(row *sql.Row) (models.Order, error) {
	var order models.Order
	err := row.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.Status, &order.PaymentStatus,
		&order.Total, &order.ShippingAddress, &order.CreatedAt, &order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, models.ErrOrderNotFound
	}
	return order, err
}

func (r *OrderRepository) GetOrderByID(ctx context.Context, id int) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = ?`
	return scanOrder(r.DB.QueryRowContext(ctx, query, id))
}

func (r *OrderRepository) GetOrderByNumber(ctx context.Context, number string) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE order_number = ?`
	return scanOrder(r.DB.QueryRowContext(ctx, query, number))
}

func (r *OrderRepository) UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error) {
	query := `UPDATE orders SET status = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.DB.ExecContext(ctx, query, status, id); err != nil {
		return models.Order{}, err
	}
	// MySQL reports 0 affected rows for a same-value update, so re-fetch
	// instead of checking RowsAffected
	return r.GetOrderByID(ctx, id)
}

func (r *OrderRepository) UpdateOrderPaymentStatus(ctx context.Context, id int, status string) (models.Order, error) {
	query := `UPDATE orders SET payment_status = ?, updated_at = NOW() WHERE id = ?`
	if _, err := r.DB.ExecContext(ctx, query, status, id); err != nil {
		return models.Order{}, err
	}
	return r.GetOrderByID(ctx, id)
}

func (r *OrderRepository) DeleteOrder(ctx context.Context, id int) error {
	res, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) GetOrdersByUserID(ctx context.Context, userID int) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE user_id = ? ORDER BY created_at DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func (r *OrderRepository) GetOrders(ctx context.Context, status string) ([]models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders`
	args := []any{}
	if status != "" {
		query += ` WHERE status = ?`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectOrders(rows)
}

func collectOrders(rows *sql.Rows) ([]models.Order, error) {
	var orders []models.Order
	for rows.Next() {
		var order models.Order
		if err := rows.Scan(&order.ID, &order.OrderNumber, &order.UserID, &order.Status, &order.PaymentStatus,
			&order.Total, &order.ShippingAddress, &order.CreatedAt, &order.UpdatedAt); err != nil {
			return nil, err
		}
		orders = append(orders, order)
	}
	return orders, rows.Err()
}
