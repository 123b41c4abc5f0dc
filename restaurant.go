package reservo

import (
	"context"
	"time"
)

// Restaurant represents a restaurant in the catalog.
type Restaurant struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Cuisine     string    `json:"cuisine"`
	Address     string    `json:"address"`
	City        string    `json:"city"`
	State       string    `json:"state"`
	ZipCode     string    `json:"zipCode"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Description string    `json:"description"`
	OpeningTime string    `json:"openingTime"`
	ClosingTime string    `json:"closingTime"`
	PriceRange  string    `json:"priceRange"`
	Rating      float64   `json:"rating"`
	ImageURL    string    `json:"imageUrl"`
	Gallery     []string  `json:"gallery"`
	Website     string    `json:"website"`
	SourceURL   string    `json:"sourceUrl"`
	Source      string    `json:"source"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// NewRestaurantFromExtraction builds a catalog entry from an extraction
// result and the URL it was derived from.
func NewRestaurantFromExtraction(sourceURL string, res *ExtractionResult) *Restaurant {
	gallery := make([]string, len(res.Gallery))
	copy(gallery, res.Gallery)
	return &Restaurant{
		Name:        res.Name,
		Cuisine:     res.Cuisine,
		Address:     res.Address,
		City:        res.City,
		State:       res.State,
		ZipCode:     res.ZipCode,
		PhoneNumber: res.PhoneNumber,
		Email:       res.Email,
		Description: res.Description,
		OpeningTime: res.OpeningTime,
		ClosingTime: res.ClosingTime,
		PriceRange:  res.PriceRange,
		Rating:      res.Rating,
		ImageURL:    res.ImageURL,
		Gallery:     gallery,
		Website:     res.Website,
		SourceURL:   sourceURL,
		Source:      res.Source,
	}
}

// Validate returns an error if the restaurant contains invalid fields.
func (r *Restaurant) Validate() error {
	if r.Name == "" {
		return Errorf(EINVALID, "restaurant name required")
	}
	if r.SourceURL == "" {
		return Errorf(EINVALID, "restaurant source URL required")
	}
	if r.Rating < 0 || r.Rating > 5 {
		return Errorf(EINVALID, "restaurant rating must be between 0 and 5")
	}
	return nil
}

// RestaurantService represents a service for managing restaurants.
type RestaurantService interface {
	// CreateRestaurant creates a new restaurant.
	CreateRestaurant(ctx context.Context, restaurant *Restaurant) error

	// FindRestaurantByID retrieves a restaurant by ID.
	// Returns ENOTFOUND if restaurant does not exist.
	FindRestaurantByID(ctx context.Context, id string) (*Restaurant, error)

	// FindRestaurants retrieves restaurants matching the filter.
	FindRestaurants(ctx context.Context, filter RestaurantFilter) ([]*Restaurant, error)

	// UpdateRestaurant updates an existing restaurant.
	// Returns ENOTFOUND if restaurant does not exist.
	UpdateRestaurant(ctx context.Context, id string, upd RestaurantUpdate) (*Restaurant, error)

	// DeleteRestaurant permanently removes a restaurant.
	// Returns ENOTFOUND if restaurant does not exist.
	DeleteRestaurant(ctx context.Context, id string) error
}

// RestaurantFilter represents a filter for FindRestaurants.
type RestaurantFilter struct {
	ID      *string `json:"id"`
	Name    *string `json:"name"`
	City    *string `json:"city"`
	Cuisine *string `json:"cuisine"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}

// RestaurantUpdate represents fields that can be updated on a restaurant.
type RestaurantUpdate struct {
	Name        *string   `json:"name,omitempty"`
	Cuisine     *string   `json:"cuisine,omitempty"`
	Address     *string   `json:"address,omitempty"`
	City        *string   `json:"city,omitempty"`
	State       *string   `json:"state,omitempty"`
	ZipCode     *string   `json:"zipCode,omitempty"`
	PhoneNumber *string   `json:"phoneNumber,omitempty"`
	Email       *string   `json:"email,omitempty"`
	Description *string   `json:"description,omitempty"`
	OpeningTime *string   `json:"openingTime,omitempty"`
	ClosingTime *string   `json:"closingTime,omitempty"`
	PriceRange  *string   `json:"priceRange,omitempty"`
	Rating      *float64  `json:"rating,omitempty"`
	ImageURL    *string   `json:"imageUrl,omitempty"`
	Gallery     *[]string `json:"gallery,omitempty"`
	Website     *string   `json:"website,omitempty"`
}

// Apply copies the set fields of upd onto r.
func (upd RestaurantUpdate) Apply(r *Restaurant) {
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&r.Name, upd.Name)
	set(&r.Cuisine, upd.Cuisine)
	set(&r.Address, upd.Address)
	set(&r.City, upd.City)
	set(&r.State, upd.State)
	set(&r.ZipCode, upd.ZipCode)
	set(&r.PhoneNumber, upd.PhoneNumber)
	set(&r.Email, upd.Email)
	set(&r.Description, upd.Description)
	set(&r.OpeningTime, upd.OpeningTime)
	set(&r.ClosingTime, upd.ClosingTime)
	set(&r.PriceRange, upd.PriceRange)
	set(&r.ImageURL, upd.ImageURL)
	set(&r.Website, upd.Website)
	if upd.Rating != nil {
		r.Rating = *upd.Rating
	}
	if upd.Gallery != nil {
		r.Gallery = append([]string{}, (*upd.Gallery)...)
	}
}

// ExtractionResult returns the metadata fields of r.
func (r *Restaurant) ExtractionResult() *ExtractionResult {
	gallery := make([]string, len(r.Gallery))
	copy(gallery, r.Gallery)
	return &ExtractionResult{
		Name:        r.Name,
		Cuisine:     r.Cuisine,
		Address:     r.Address,
		City:        r.City,
		State:       r.State,
		ZipCode:     r.ZipCode,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
		Description: r.Description,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		PriceRange:  r.PriceRange,
		Rating:      r.Rating,
		ImageURL:    r.ImageURL,
		Gallery:     gallery,
		Website:     r.Website,
		Source:      r.Source,
	}
}
