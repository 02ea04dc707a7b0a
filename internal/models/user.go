package models

import (
	"time"

	"github.com/golang-jwt/jwt"
)

type User struct {
	ID          int        `json:"id"`
	Name        string     `json:"name"`
	Phone       string     `json:"phone,omitempty"`
	Email       string     `json:"email,omitempty"`
	Role        string     `json:"role"`
	DeviceToken string     `json:"device_token,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty"`
}

type Claims struct {
	UserID uint   `json:"user_id"`
	Role   string `json:"role"`
	jwt.StandardClaims
}

// Principal is the authenticated caller for the duration of one request.
// It is never persisted.
type Principal struct {
	UserID  int
	IsAdmin bool
}
