package services

import (
	"context"
	"strconv"

	"shopBack/internal/models"
)

// OrderStore is the persistence seam for orders. Implemented by
// repositories.OrderRepository.
type OrderStore interface {
	GetOrderByID(ctx context.Context, id int) (models.Order, error)
	GetOrderByNumber(ctx context.Context, number string) (models.Order, error)
	UpdateOrderStatus(ctx context.Context, id int, status string) (models.Order, error)
	UpdateOrderPaymentStatus(ctx context.Context, id int, status string) (models.Order, error)
	DeleteOrder(ctx context.Context, id int) error
	GetOrdersByUserID(ctx context.Context, userID int) ([]models.Order, error)
	GetOrders(ctx context.Context, status string) ([]models.Order, error)
}

type OrderService struct {
	Orders        OrderStore
	Notifications *NotificationService
}

// GetOrder fetches the referenced order and authorizes the caller before the
// order leaves the service. A caller who is neither the owner nor an admin
// gets ErrForbidden and never sees the record.
func (s *OrderService) GetOrder(ctx context.Context, p models.Principal, ref models.OrderRef) (models.Order, error) {
	order, err := s.fetchByRef(ctx, ref)
	if err != nil {
		return models.Order{}, err
	}
	if !canAccessOrder(p, order) {
		return models.Order{}, models.ErrForbidden
	}
	return order, nil
}

// UpdateOrder applies exactly one mutation, selected by DecodeOrderUpdate.
func (s *OrderService) UpdateOrder(ctx context.Context, p models.Principal, ref models.OrderRef, upd OrderUpdate) (models.Order, error) {
	order, err := s.fetchByRef(ctx, ref)
	if err != nil {
		return models.Order{}, err
	}

	switch upd.Kind {
	case UpdateOrderStatus:
		updated, err := s.Orders.UpdateOrderStatus(ctx, order.ID, upd.Value)
		if err != nil {
			return models.Order{}, err
		}
		s.Notifications.OrderStatusChanged(ctx, updated.UserID, updated.OrderNumber, updated.Status)
		return updated, nil
	case UpdateOrderPayment:
		return s.Orders.UpdateOrderPaymentStatus(ctx, order.ID, upd.Value)
	}
	return models.Order{}, models.ErrInvalidOrderUpdate
}

// DeleteOrder enforces the same ownership-or-admin rule as reads before
// removing the record.
func (s *OrderService) DeleteOrder(ctx context.Context, p models.Principal, ref models.OrderRef) error {
	order, err := s.fetchByRef(ctx, ref)
	if err != nil {
		return err
	}
	if !canAccessOrder(p, order) {
		return models.ErrForbidden
	}
	return s.Orders.DeleteOrder(ctx, order.ID)
}

func (s *OrderService) ListUserOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.Orders.GetOrdersByUserID(ctx, userID)
}

func (s *OrderService) ListOrders(ctx context.Context, status string) ([]models.Order, error) {
	return s.Orders.GetOrders(ctx, status)
}

func (s *OrderService) fetchByRef(ctx context.Context, ref models.OrderRef) (models.Order, error) {
	if ref.Kind == models.OrderRefNumber {
		return s.Orders.GetOrderByNumber(ctx, ref.Raw)
	}
	id, err := strconv.Atoi(ref.Raw)
	if err != nil {
		// malformed numeric token: same outcome as a store miss,
		// without the guaranteed-failing round trip
		return models.Order{}, models.ErrOrderNotFound
	}
	return s.Orders.GetOrderByID(ctx, id)
}
