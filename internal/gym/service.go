package gym

import (
	"context"
	"errors"
)

var (
	ErrGymNotFound           = errors.New("gym not found")
	ErrPassTypeNotFound      = errors.New("pass type not found")
	ErrDuplicateQRIdentifier = errors.New("qr identifier already in use")
)

type Service interface {
	CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error)
	GetAllGyms(ctx context.Context) ([]Gym, error)
	GetGymByQRIdentifier(ctx context.Context, qrIdentifier string) (*GymWithPasses, error)
	CreatePassType(ctx context.Context, gymID int, req CreatePassTypeRequest) (*PassType, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
	}
}

func (s *service) CreateGym(ctx context.Context, req CreateGymRequest) (*Gym, error) {
	taken, err := s.repo.QRIdentifierExists(ctx, req.QRIdentifier)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrDuplicateQRIdentifier
	}

	return s.repo.CreateGym(ctx, req.Name, req.Location, req.QRIdentifier)
}

func (s *service) GetAllGyms(ctx context.Context) ([]Gym, error) {
	return s.repo.GetAllGyms(ctx)
}

func (s *service) GetGymByQRIdentifier(ctx context.Context, qrIdentifier string) (*GymWithPasses, error) {
	gym, err := s.repo.GetGymByQRIdentifier(ctx, qrIdentifier)
	if err != nil {
		return nil, ErrGymNotFound
	}

	passes, err := s.repo.GetPassTypesByGym(ctx, gym.ID)
	if err != nil {
		return nil, err
	}

	return &GymWithPasses{
		Gym:    *gym,
		Passes: passes,
	}, nil
}

func (s *service) CreatePassType(ctx context.Context, gymID int, req CreatePassTypeRequest) (*PassType, error) {
	_, err := s.repo.GetGymByID(ctx, gymID)
	if err != nil {
		return nil, ErrGymNotFound
	}

	return s.repo.CreatePassType(ctx, gymID, req.Name, req.DurationDays, req.PriceCents, req.Currency)
}
