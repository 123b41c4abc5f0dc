package mock

import (
	"context"

	"github.com/fwojciec/reservo"
)

var _ reservo.ReservationService = (*ReservationService)(nil)

// ReservationService is a mock implementation of reservo.ReservationService.
type ReservationService struct {
	CreateReservationFn   func(ctx context.Context, r *reservo.Reservation) error
	FindReservationByIDFn func(ctx context.Context, id string) (*reservo.Reservation, error)
	FindReservationsFn    func(ctx context.Context, filter reservo.ReservationFilter) ([]*reservo.Reservation, error)
	UpdateReservationFn   func(ctx context.Context, id string, upd reservo.ReservationUpdate) (*reservo.Reservation, error)
	DeleteReservationFn   func(ctx context.Context, id string) error
}

func (s *ReservationService) CreateReservation(ctx context.Context, r *reservo.Reservation) error {
	return s.CreateReservationFn(ctx, r)
}

func (s *ReservationService) FindReservationByID(ctx context.Context, id string) (*reservo.Reservation, error) {
	return s.FindReservationByIDFn(ctx, id)
}

func (s *ReservationService) FindReservations(ctx context.Context, filter reservo.ReservationFilter) ([]*reservo.Reservation, error) {
	return s.FindReservationsFn(ctx, filter)
}

func (s *ReservationService) UpdateReservation(ctx context.Context, id string, upd reservo.ReservationUpdate) (*reservo.Reservation, error) {
	return s.UpdateReservationFn(ctx, id, upd)
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id string) error {
	return s.DeleteReservationFn(ctx, id)
}
