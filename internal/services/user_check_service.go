package services

import (
	"context"
)

// UserStore covers the identifier existence checks the public check
// endpoints need.
type UserStore interface {
	EmailExists(ctx context.Context, email string) (bool, error)
	PhoneExists(ctx context.Context, phone string) (bool, error)
	EmailHasContactInfo(ctx context.Context, email string) (bool, error)
}

type UserCheckService struct {
	Users UserStore
}

func (s *UserCheckService) PhoneExists(ctx context.Context, phone string) (bool, error) {
	return s.Users.PhoneExists(ctx, phone)
}

func (s *UserCheckService) EmailAvailable(ctx context.Context, email string) (bool, error) {
	exists, err := s.Users.EmailExists(ctx, email)
	if err != nil {
		return false, err
	}
	return !exists, nil
}

// EmailLookup reports whether the email is registered and whether the account
// has a phone number on file.
func (s *UserCheckService) EmailLookup(ctx context.Context, email string) (exists, hasContactInfo bool, err error) {
	exists, err = s.Users.EmailExists(ctx, email)
	if err != nil || !exists {
		return exists, false, err
	}
	hasContactInfo, err = s.Users.EmailHasContactInfo(ctx, email)
	return exists, hasContactInfo, err
}
