package user

import "time"

// User mirrors the identity provider's subject. Rows exist so purchased
// passes can be attributed to a person and receipts can be emailed; the
// provider stays the source of truth for credentials.
type User struct {
	ID          string    `db:"id" json:"id"`
	Email       *string   `db:"email" json:"email,omitempty"`
	Name        *string   `db:"name" json:"name,omitempty"`
	PhoneNumber *string   `db:"phone_number" json:"phone_number,omitempty"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

type SyncRequest struct {
	Email       *string `json:"email,omitempty" validate:"omitempty,email"`
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=120"`
	PhoneNumber *string `json:"phone_number,omitempty" validate:"omitempty,e164"`
}
