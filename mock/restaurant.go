package mock

import (
	"context"

	"github.com/fwojciec/reservo"
)

var _ reservo.RestaurantService = (*RestaurantService)(nil)

// RestaurantService is a mock implementation of reservo.RestaurantService.
type RestaurantService struct {
	CreateRestaurantFn   func(ctx context.Context, r *reservo.Restaurant) error
	FindRestaurantByIDFn func(ctx context.Context, id string) (*reservo.Restaurant, error)
	FindRestaurantsFn    func(ctx context.Context, filter reservo.RestaurantFilter) ([]*reservo.Restaurant, error)
	UpdateRestaurantFn   func(ctx context.Context, id string, upd reservo.RestaurantUpdate) (*reservo.Restaurant, error)
	DeleteRestaurantFn   func(ctx context.Context, id string) error
}

func (s *RestaurantService) CreateRestaurant(ctx context.Context, r *reservo.Restaurant) error {
	return s.CreateRestaurantFn(ctx, r)
}

func (s *RestaurantService) FindRestaurantByID(ctx context.Context, id string) (*reservo.Restaurant, error) {
	return s.FindRestaurantByIDFn(ctx, id)
}

func (s *RestaurantService) FindRestaurants(ctx context.Context, filter reservo.RestaurantFilter) ([]*reservo.Restaurant, error) {
	return s.FindRestaurantsFn(ctx, filter)
}

func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, upd reservo.RestaurantUpdate) (*reservo.Restaurant, error) {
	return s.UpdateRestaurantFn(ctx, id, upd)
}

func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	return s.DeleteRestaurantFn(ctx, id)
}
