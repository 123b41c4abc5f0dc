package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/reservo"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ reservo.RestaurantService = (*RestaurantService)(nil)

const restaurantColumns = `id, name, cuisine, address, city, state, zip_code, phone_number, email,
	description, opening_time, closing_time, price_range, rating, image_url, gallery, website,
	source_url, source, created_at, updated_at`

// RestaurantService implements reservo.RestaurantService using SQLite.
type RestaurantService struct {
	db *DB
}

// NewRestaurantService creates a new RestaurantService.
func NewRestaurantService(db *DB) *RestaurantService {
	return &RestaurantService{db: db}
}

// CreateRestaurant creates a new restaurant.
func (s *RestaurantService) CreateRestaurant(ctx context.Context, r *reservo.Restaurant) error {
	if err := r.Validate(); err != nil {
		return err
	}

	gallery, err := marshalGallery(r.Gallery)
	if err != nil {
		return err
	}

	r.ID = uuid.New().String()
	now := time.Now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO restaurants (`+restaurantColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, r.ID, r.Name, r.Cuisine, r.Address, r.City, r.State, r.ZipCode, r.PhoneNumber, r.Email,
		r.Description, r.OpeningTime, r.ClosingTime, r.PriceRange, r.Rating, r.ImageURL, gallery, r.Website,
		r.SourceURL, r.Source, timestamp(r.CreatedAt), timestamp(r.UpdatedAt))

	return err
}

// FindRestaurantByID retrieves a restaurant by ID.
func (s *RestaurantService) FindRestaurantByID(ctx context.Context, id string) (*reservo.Restaurant, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+restaurantColumns+` FROM restaurants WHERE id = ?`, id)

	r, err := scanRestaurant(row)
	if err == sql.ErrNoRows {
		return nil, reservo.Errorf(reservo.ENOTFOUND, "restaurant not found")
	}
	if err != nil {
		return nil, err
	}
	return r, nil
}

// FindRestaurants retrieves restaurants matching the filter.
// City and cuisine match case-insensitively.
func (s *RestaurantService) FindRestaurants(ctx context.Context, filter reservo.RestaurantFilter) ([]*reservo.Restaurant, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + restaurantColumns + " FROM restaurants WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.Name != nil {
		query.WriteString(" AND name = ?")
		args = append(args, *filter.Name)
	}
	if filter.City != nil {
		query.WriteString(" AND city = ? COLLATE NOCASE")
		args = append(args, *filter.City)
	}
	if filter.Cuisine != nil {
		query.WriteString(" AND cuisine = ? COLLATE NOCASE")
		args = append(args, *filter.Cuisine)
	}

	query.WriteString(" ORDER BY created_at DESC, name ASC")
	page, pageArgs := paginate(filter.Limit, filter.Offset)
	query.WriteString(page)
	args = append(args, pageArgs...)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var restaurants []*reservo.Restaurant
	for rows.Next() {
		r, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, r)
	}

	return restaurants, rows.Err()
}

// UpdateRestaurant updates an existing restaurant.
func (s *RestaurantService) UpdateRestaurant(ctx context.Context, id string, upd reservo.RestaurantUpdate) (*reservo.Restaurant, error) {
	r, err := s.FindRestaurantByID(ctx, id)
	if err != nil {
		return nil, err
	}

	upd.Apply(r)

	// Validate before persisting
	if err := r.Validate(); err != nil {
		return nil, err
	}

	gallery, err := marshalGallery(r.Gallery)
	if err != nil {
		return nil, err
	}
	r.UpdatedAt = time.Now().UTC()

	_, err = s.db.ExecContext(ctx, `
		UPDATE restaurants
		SET name = ?, cuisine = ?, address = ?, city = ?, state = ?, zip_code = ?, phone_number = ?,
			email = ?, description = ?, opening_time = ?, closing_time = ?, price_range = ?,
			rating = ?, image_url = ?, gallery = ?, website = ?, updated_at = ?
		WHERE id = ?
	`, r.Name, r.Cuisine, r.Address, r.City, r.State, r.ZipCode, r.PhoneNumber,
		r.Email, r.Description, r.OpeningTime, r.ClosingTime, r.PriceRange,
		r.Rating, r.ImageURL, gallery, r.Website, timestamp(r.UpdatedAt), id)
	if err != nil {
		return nil, err
	}

	return r, nil
}

// DeleteRestaurant permanently removes a restaurant.
func (s *RestaurantService) DeleteRestaurant(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM restaurants WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return reservo.Errorf(reservo.ENOTFOUND, "restaurant not found")
	}

	return nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRestaurant(sc scanner) (*reservo.Restaurant, error) {
	var r reservo.Restaurant
	var gallery, createdAt, updatedAt string

	if err := sc.Scan(&r.ID, &r.Name, &r.Cuisine, &r.Address, &r.City, &r.State, &r.ZipCode,
		&r.PhoneNumber, &r.Email, &r.Description, &r.OpeningTime, &r.ClosingTime, &r.PriceRange,
		&r.Rating, &r.ImageURL, &gallery, &r.Website, &r.SourceURL, &r.Source,
		&createdAt, &updatedAt); err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(gallery), &r.Gallery); err != nil {
		return nil, fmt.Errorf("failed to parse gallery: %w", err)
	}

	var err error
	if r.CreatedAt, err = parseTimestamp(createdAt, "created_at"); err != nil {
		return nil, err
	}
	if r.UpdatedAt, err = parseTimestamp(updatedAt, "updated_at"); err != nil {
		return nil, err
	}

	return &r, nil
}

func marshalGallery(gallery []string) (string, error) {
	if gallery == nil {
		gallery = []string{}
	}
	b, err := json.Marshal(gallery)
	if err != nil {
		return "", fmt.Errorf("failed to encode gallery: %w", err)
	}
	return string(b), nil
}
