package directory

import (
	"slices"

	"github.com/fwojciec/reservo"
)

// DefaultPlaceholders returns the values used for fields that cannot be
// derived from a URL. Extraction never fails on sparse input; it returns
// these stand-ins instead.
func DefaultPlaceholders() reservo.ExtractionResult {
	return reservo.ExtractionResult{
		Name:        "Restaurant Name",
		Cuisine:     "International",
		Address:     "123 Main Street",
		City:        "City",
		State:       "State",
		ZipCode:     "00000",
		PhoneNumber: "(555) 123-4567",
		Email:       "info@restaurant.com",
		Description: "Restaurant description",
		OpeningTime: "09:00",
		ClosingTime: "22:00",
		PriceRange:  "$$",
		Rating:      4.0,
		ImageURL:    "https://images.unsplash.com/photo-1517248135467-4c7edcad34c4",
		Gallery:     []string{},
		Website:     "https://www.restaurant.com",
	}
}

// IsPlaceholder reports whether the named field of res still holds its
// value from placeholders. Field names follow the JSON tags.
func IsPlaceholder(res *reservo.ExtractionResult, p reservo.ExtractionResult, field string) bool {
	switch field {
	case "name":
		return res.Name == p.Name
	case "cuisine":
		return res.Cuisine == p.Cuisine
	case "address":
		return res.Address == p.Address
	case "city":
		return res.City == p.City
	case "state":
		return res.State == p.State
	case "zipCode":
		return res.ZipCode == p.ZipCode
	case "phoneNumber":
		return res.PhoneNumber == p.PhoneNumber
	case "email":
		return res.Email == p.Email
	case "description":
		return res.Description == p.Description
	case "openingTime":
		return res.OpeningTime == p.OpeningTime
	case "closingTime":
		return res.ClosingTime == p.ClosingTime
	case "priceRange":
		return res.PriceRange == p.PriceRange
	case "rating":
		return res.Rating == p.Rating
	case "imageUrl":
		return res.ImageURL == p.ImageURL
	case "gallery":
		return slices.Equal(res.Gallery, p.Gallery)
	case "website":
		return res.Website == p.Website
	}
	return false
}

func clonePlaceholders(p reservo.ExtractionResult) *reservo.ExtractionResult {
	res := p
	res.Gallery = make([]string, len(p.Gallery))
	copy(res.Gallery, p.Gallery)
	return &res
}
