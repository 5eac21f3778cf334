package user

import (
	"context"
	"errors"
)

var ErrUserNotFound = errors.New("user not found")

type Service interface {
	Sync(ctx context.Context, id string, tokenEmail, tokenName string, req SyncRequest) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Sync upserts the caller's profile row. Request fields win over token
// claims; token claims fill the gaps on first sync so a bare POST from
// a fresh sign-in still lands a usable row.
func (s *service) Sync(ctx context.Context, id string, tokenEmail, tokenName string, req SyncRequest) (*User, error) {
	email := req.Email
	if email == nil && tokenEmail != "" {
		email = &tokenEmail
	}

	name := req.Name
	if name == nil && tokenName != "" {
		name = &tokenName
	}

	return s.repo.Upsert(ctx, id, email, name, req.PhoneNumber)
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}
	return u, nil
}
