package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/fwojciec/reservo"
)

// Ensure ReservationService implements reservo.ReservationService.
var _ reservo.ReservationService = (*ReservationService)(nil)

// ReservationService implements reservo.ReservationService over the
// /reservations endpoints. Availability and conflict checks happen on the
// server; a conflicting booking is reported as ECONFLICT.
type ReservationService struct {
	client *Client
}

// NewReservationService creates a new ReservationService.
func NewReservationService(client *Client) *ReservationService {
	return &ReservationService{client: client}
}

func (s *ReservationService) CreateReservation(ctx context.Context, r *reservo.Reservation) error {
	if err := r.Validate(); err != nil {
		return err
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/reservations", nil, r, &raw); err != nil {
		return err
	}

	var created reservo.Reservation
	if err := decodeEnvelope(raw, "reservation", &created); err != nil {
		return err
	}
	r.ID = created.ID
	if created.Status != "" {
		r.Status = created.Status
	}
	return nil
}

func (s *ReservationService) FindReservationByID(ctx context.Context, id string) (*reservo.Reservation, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/reservations/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}

	var r reservo.Reservation
	if err := decodeEnvelope(raw, "reservation", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReservationService) FindReservations(ctx context.Context, filter reservo.ReservationFilter) ([]*reservo.Reservation, error) {
	q := url.Values{}
	if filter.RestaurantID != nil {
		q.Set("restaurantId", *filter.RestaurantID)
	}
	if filter.Status != nil {
		q.Set("status", string(*filter.Status))
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/reservations", q, nil, &raw); err != nil {
		return nil, err
	}

	var reservations []*reservo.Reservation
	if err := decodeEnvelope(raw, "reservations", &reservations); err != nil {
		return nil, err
	}
	return reservations, nil
}

func (s *ReservationService) UpdateReservation(ctx context.Context, id string, upd reservo.ReservationUpdate) (*reservo.Reservation, error) {
	if upd.Status != nil && !upd.Status.Valid() {
		return nil, reservo.Errorf(reservo.EINVALID, "unknown reservation status %q", *upd.Status)
	}
	if upd.PartySize != nil && *upd.PartySize <= 0 {
		return nil, reservo.Errorf(reservo.EINVALID, "reservation party size must be positive")
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPut, "/reservations/"+url.PathEscape(id), nil, upd, &raw); err != nil {
		return nil, err
	}

	var r reservo.Reservation
	if err := decodeEnvelope(raw, "reservation", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *ReservationService) DeleteReservation(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/reservations/"+url.PathEscape(id), nil, nil, nil)
}
