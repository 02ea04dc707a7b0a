package services

import (
	"encoding/json"
	"io"
	"strings"

	"shopBack/internal/models"
)

// ResolveOrderRef classifies a raw path identifier. Tokens carrying the
// order-number prefix are looked up by number with the full token as the key;
// everything else is treated as a numeric primary key. No format validation
// happens here — a malformed numeric token is answered as "not found" further
// down instead of reaching the store.
func ResolveOrderRef(raw string) models.OrderRef {
	if strings.HasPrefix(raw, models.OrderNumberPrefix) {
		return models.OrderRef{Kind: models.OrderRefNumber, Raw: raw}
	}
	return models.OrderRef{Kind: models.OrderRefID, Raw: raw}
}

// canAccessOrder is the ownership-or-admin rule. Pure, no I/O.
func canAccessOrder(p models.Principal, o models.Order) bool {
	return p.IsAdmin || p.UserID == o.UserID
}

type OrderUpdateKind int

const (
	UpdateOrderStatus OrderUpdateKind = iota
	UpdateOrderPayment
)

type OrderUpdate struct {
	Kind  OrderUpdateKind
	Value string
}

// DecodeOrderUpdate parses an update body into exactly one mutation.
// The fulfillment status field wins when both fields are present; this
// precedence is a compatibility rule, not an accident of check order.
// A body naming neither field, or naming an unknown status value, is
// rejected as a whole and must trigger no store call.
func DecodeOrderUpdate(body io.Reader) (OrderUpdate, error) {
	var req struct {
		Status        *string `json:"status"`
		PaymentStatus *string `json:"paymentStatus"`
	}
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		return OrderUpdate{}, models.ErrInvalidOrderUpdate
	}

	if req.Status != nil {
		if !models.IsOrderStatus(*req.Status) {
			return OrderUpdate{}, models.ErrInvalidOrderUpdate
		}
		return OrderUpdate{Kind: UpdateOrderStatus, Value: strings.TrimSpace(*req.Status)}, nil
	}
	if req.PaymentStatus != nil {
		if !models.IsPaymentStatus(*req.PaymentStatus) {
			return OrderUpdate{}, models.ErrInvalidOrderUpdate
		}
		return OrderUpdate{Kind: UpdateOrderPayment, Value: strings.TrimSpace(*req.PaymentStatus)}, nil
	}
	return OrderUpdate{}, models.ErrInvalidOrderUpdate
}
