package gym

import "context"

type Repository interface {
	CreateGym(ctx context.Context, name string, location *string, qrIdentifier string) (*Gym, error)
	GetAllGyms(ctx context.Context) ([]Gym, error)
	GetGymByID(ctx context.Context, id int) (*Gym, error)
	GetGymByQRIdentifier(ctx context.Context, qrIdentifier string) (*Gym, error)
	QRIdentifierExists(ctx context.Context, qrIdentifier string) (bool, error)
	CreatePassType(ctx context.Context, gymID int, name string, durationDays int, priceCents int64, currency string) (*PassType, error)
	GetPassTypesByGym(ctx context.Context, gymID int) ([]PassType, error)
	GetPassTypeByID(ctx context.Context, id int) (*PassType, error)
}
