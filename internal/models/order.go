package models

import (
	"strings"
	"time"
)

// OrderNumberPrefix marks human-readable order identifiers. Everything that
// does not carry the prefix is treated as a numeric primary key.
const OrderNumberPrefix = "ORD-"

type Order struct {
	ID              int        `json:"id"`
	OrderNumber     string     `json:"order_number"`
	UserID          int        `json:"user_id"`
	Status          string     `json:"status"`
	PaymentStatus   string     `json:"payment_status"`
	Total           float64    `json:"total"`
	ShippingAddress string     `json:"shipping_address"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

type OrderRefKind int

const (
	OrderRefID OrderRefKind = iota
	OrderRefNumber
)

// OrderRef is a classified order identifier taken from the request path.
// Raw keeps the untouched token; for OrderRefNumber the full token including
// the prefix is the lookup key.
type OrderRef struct {
	Kind OrderRefKind
	Raw  string
}

// Fulfillment and payment statuses are independent axes.
var OrderStatuses = []string{"pending", "processing", "shipped", "delivered", "cancelled"}
var PaymentStatuses = []string{"pending", "paid", "refunded", "failed"}

func IsOrderStatus(s string) bool {
	return containsStatus(OrderStatuses, s)
}

func IsPaymentStatus(s string) bool {
	return containsStatus(PaymentStatuses, s)
}

func containsStatus(set []string, s string) bool {
	s = strings.TrimSpace(s)
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
