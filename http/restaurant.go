package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fwojciec/reservo"
)

// Ensure RestaurantService implements reservo.RestaurantService.
var _ reservo.RestaurantService = (*RestaurantService)(nil)

// RestaurantService implements reservo.RestaurantService over the
// /restaurants endpoints of the reservation API.
type RestaurantService struct {
	client *Client
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(client *Client) *RestaurantService {
	return &RestaurantService{client: client}
}

// CreateRestaurant posts the restaurant and copies the server-assigned
// fields (ID, timestamps) back onto r.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, r *reservo.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPost, "/restaurants", nil, r, &raw); err != nil {
		return err
	}

	var created reservo.Restaurant
	if err := decodeEnvelope(raw, "restaurant", &created); err != nil {
		return err
	}
	r.ID = created.ID
	r.CreatedAt = created.CreatedAt
	r.UpdatedAt = created.UpdatedAt
	return nil
}

// FindRestaurantByID retrieves a restaurant by ID.
func (s *RestaurantService) FindRestaurantByID(ctx context.Context, id string) (*reservo.Restaurant, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/restaurants/"+url.PathEscape(id), nil, nil, &raw); err != nil {
		return nil, err
	}

	var r reservo.Restaurant
	if err := decodeEnvelope(raw, "restaurant", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// FindRestaurants retrieves restaurants matching the filter.
func (s *RestaurantService) FindRestaurants(ctx context.Context, filter reservo.RestaurantFilter) ([]*reservo.Restaurant, error) {
	q := url.Values{}
	if filter.ID != nil {
		q.Set("id", *filter.ID)
	}
	if filter.Name != nil {
		q.Set("name", *filter.Name)
	}
	if filter.City != nil {
		q.Set("city", *filter.City)
	}
	if filter.Cuisine != nil {
		q.Set("cuisine", *filter.Cuisine)
	}
	if filter.Limit > 0 {
		q.Set("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		q.Set("offset", strconv.Itoa(filter.Offset))
	}

	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodGet, "/restaurants", q, nil, &raw); err != nil {
		return nil, err
	}

	var restaurants []*reservo.Restaurant
	if err := decodeEnvelope(raw, "restaurants", &restaurants); err != nil {
		return nil, err
	}
	return restaurants, nil
}

// UpdateRestaurant updates an existing restaurant.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, upd reservo.RestaurantUpdate) (*reservo.Restaurant, error) {
	var raw json.RawMessage
	if err := s.client.do(ctx, http.MethodPut, "/restaurants/"+url.PathEscape(id), nil, upd, &raw); err != nil {
		return nil, err
	}

	var r reservo.Restaurant
	if err := decodeEnvelope(raw, "restaurant", &r); err != nil {
		return nil, err
	}
	return &r, nil
}

// DeleteRestaurant permanently removes a restaurant.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	return s.client.do(ctx, http.MethodDelete, "/restaurants/"+url.PathEscape(id), nil, nil, nil)
}
