package repositories

import (
	"context"
	"database/sql"
	"errors"

	"shopBack/internal/models"
)

type UserRepository struct {
	DB *sql.DB
}

func (r *UserRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = ?)`, email).Scan(&exists)
	return exists, err
}

func (r *UserRepository) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE phone = ?)`, phone).Scan(&exists)
	return exists, err
}

// EmailHasContactInfo reports whether the account behind the email has a
// phone number on file.
func (r *UserRepository) EmailHasContactInfo(ctx context.Context, email string) (bool, error) {
	var phone sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT phone FROM users WHERE email = ?`, email).Scan(&phone)
	if errors.Is(err, sql.ErrNoRows) {
		return false, models.ErrUserNotFound
	}
	if err != nil {
		return false, err
	}
	return phone.Valid && phone.String != "", nil
}

func (r *UserRepository) DeviceToken(ctx context.Context, userID int) (string, error) {
	var token sql.NullString
	err := r.DB.QueryRowContext(ctx, `SELECT device_token FROM users WHERE id = ?`, userID).Scan(&token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", models.ErrUserNotFound
	}
	if err != nil {
		return "", err
	}
	return token.String, nil
}
