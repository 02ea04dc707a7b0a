package models

import (
	"time"
)

// DashboardSummary is a reporting snapshot with no cross-statement
// transactional guarantee; it may observe a moving target under
// concurrent writes.
type DashboardSummary struct {
	TotalOrders    int            `json:"total_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
	OrdersByStatus map[string]int `json:"orders_by_status"`
	TotalUsers     int            `json:"total_users"`
	TotalProducts  int            `json:"total_products"`
	GeneratedAt    time.Time      `json:"generated_at"`
}

type SalesRow struct {
	OrderNumber   string
	Email         string
	Status        string
	PaymentStatus string
	Total         float64
	CreatedAt     time.Time
}
