package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/reservo"
)

// Ensure LoggingRestaurantService implements reservo.RestaurantService.
var _ reservo.RestaurantService = (*LoggingRestaurantService)(nil)

// LoggingRestaurantService wraps a RestaurantService with logging.
// Writes log at info level, reads at debug.
type LoggingRestaurantService struct {
	next   reservo.RestaurantService
	logger *slog.Logger
}

// NewLoggingRestaurantService creates a new LoggingRestaurantService.
func NewLoggingRestaurantService(next reservo.RestaurantService, logger *slog.Logger) *LoggingRestaurantService {
	return &LoggingRestaurantService{next: next, logger: logger}
}

func (s *LoggingRestaurantService) CreateRestaurant(ctx context.Context, r *reservo.Restaurant) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("create restaurant",
			"id", r.ID,
			"name", r.Name,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.CreateRestaurant(ctx, r)
}

func (s *LoggingRestaurantService) FindRestaurantByID(ctx context.Context, id string) (r *reservo.Restaurant, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find restaurant",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRestaurantByID(ctx, id)
}

func (s *LoggingRestaurantService) FindRestaurants(ctx context.Context, filter reservo.RestaurantFilter) (rs []*reservo.Restaurant, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("find restaurants",
			"count", len(rs),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.FindRestaurants(ctx, filter)
}

func (s *LoggingRestaurantService) UpdateRestaurant(ctx context.Context, id string, upd reservo.RestaurantUpdate) (r *reservo.Restaurant, err error) {
	defer func(begin time.Time) {
		s.logger.Info("update restaurant",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.UpdateRestaurant(ctx, id, upd)
}

func (s *LoggingRestaurantService) DeleteRestaurant(ctx context.Context, id string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("delete restaurant",
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.DeleteRestaurant(ctx, id)
}
