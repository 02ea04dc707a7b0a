package services

import (
	"context"
	"fmt"
	"log"

	"firebase.google.com/go/messaging"
)

// DeviceTokenStore resolves a user's registered push token.
type DeviceTokenStore interface {
	DeviceToken(ctx context.Context, userID int) (string, error)
}

// NotificationService pushes order updates over FCM. A nil service or a nil
// client disables pushes entirely; delivery failures are logged, never
// surfaced to the request.
type NotificationService struct {
	Client *messaging.Client
	Users  DeviceTokenStore
}

func (s *NotificationService) OrderStatusChanged(ctx context.Context, userID int, orderNumber, status string) {
	if s == nil || s.Client == nil {
		return
	}

	go func() {
		token, err := s.Users.DeviceToken(context.Background(), userID)
		if err != nil || token == "" {
			return
		}

		msg := &messaging.Message{
			Token: token,
			Notification: &messaging.Notification{
				Title: "Order " + orderNumber,
				Body:  fmt.Sprintf("Your order is now %s", status),
			},
			Data: map[string]string{
				"order_number": orderNumber,
				"status":       status,
			},
			Android: &messaging.AndroidConfig{
				Priority: "high",
			},
		}

		if _, err := s.Client.Send(context.Background(), msg); err != nil {
			log.Printf("fcm send failed for user %d: %v", userID, err)
		}
	}()
}
