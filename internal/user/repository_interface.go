package user

import "context"

type Repository interface {
	Upsert(ctx context.Context, id string, email, name, phoneNumber *string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}
