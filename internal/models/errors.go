package models

import (
	"errors"
)

var (
	ErrNoRecord           = errors.New("models: no matching record found")
	ErrOrderNotFound      = errors.New("models: order not found")
	ErrProductNotFound    = errors.New("models: product not found")
	ErrUserNotFound       = errors.New("models: user not found")
	ErrForbidden          = errors.New("models: access denied")
	ErrInvalidOrderUpdate = errors.New("models: invalid order update")
)
