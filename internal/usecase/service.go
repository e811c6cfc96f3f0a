package usecase

import (
	"salon-booking/internal/data/repository"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
}

func NewService(repo *repository.Repository, log *zap.Logger) *Service {
	return &Service{
		Booking: NewBookingService(repo, log),
	}
}
