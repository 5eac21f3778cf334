package gym

import "time"

type Gym struct {
	ID           int       `db:"id" json:"id"`
	Name         string    `db:"name" json:"name"`
	Location     *string   `db:"location" json:"location,omitempty"`
	QRIdentifier string    `db:"qr_identifier" json:"qr_identifier"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type PassType struct {
	ID           int       `db:"id" json:"id"`
	GymID        int       `db:"gym_id" json:"gym_id"`
	Name         string    `db:"name" json:"name"`
	DurationDays int       `db:"duration_days" json:"duration_days"`
	PriceCents   int64     `db:"price_cents" json:"price_cents"`
	Currency     string    `db:"currency" json:"currency"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

type GymWithPasses struct {
	Gym
	Passes []PassType `json:"passes"`
}

type CreateGymRequest struct {
	Name         string  `json:"name" binding:"required"`
	Location     *string `json:"location"`
	QRIdentifier string  `json:"qr_identifier" binding:"required"`
}

type CreatePassTypeRequest struct {
	Name         string `json:"name" binding:"required"`
	DurationDays int    `json:"duration_days" binding:"required,min=1"`
	PriceCents   int64  `json:"price_cents" binding:"required,min=0"`
	Currency     string `json:"currency" binding:"required,len=3"`
}
