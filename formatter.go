package reservo

import (
	"fmt"
	"strings"
)

// FormatExtraction formats a result as aligned "Field: value" lines for display.
// Gallery and website lines are omitted when empty.
func FormatExtraction(res *ExtractionResult) string {
	if res == nil {
		return ""
	}

	var sb strings.Builder
	line := func(label, value string) {
		fmt.Fprintf(&sb, "%-12s %s\n", label+":", value)
	}

	line("Name", res.Name)
	line("Cuisine", res.Cuisine)
	line("Address", res.Address)
	line("City", res.City)
	line("State", res.State)
	line("Zip", res.ZipCode)
	line("Phone", res.PhoneNumber)
	line("Email", res.Email)
	line("Hours", res.OpeningTime+" - "+res.ClosingTime)
	line("Price", res.PriceRange)
	line("Rating", fmt.Sprintf("%.1f", res.Rating))
	line("Image", res.ImageURL)
	if len(res.Gallery) > 0 {
		line("Gallery", strings.Join(res.Gallery, ", "))
	}
	if res.Website != "" {
		line("Website", res.Website)
	}
	line("Description", res.Description)

	return strings.TrimSuffix(sb.String(), "\n")
}

// FormatRestaurants formats catalog entries one per line.
// Uses name if available, falls back to source URL.
func FormatRestaurants(restaurants []*Restaurant) string {
	if len(restaurants) == 0 {
		return ""
	}

	lines := make([]string, 0, len(restaurants))
	for _, r := range restaurants {
		name := r.Name
		if name == "" {
			name = r.SourceURL
		}
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %s", r.ID, name, r.City, r.Cuisine))
	}

	return strings.Join(lines, "\n")
}

// FormatReservations formats reservations one per line in local time.
func FormatReservations(reservations []*Reservation) string {
	if len(reservations) == 0 {
		return ""
	}

	lines := make([]string, 0, len(reservations))
	for _, r := range reservations {
		lines = append(lines, fmt.Sprintf("%s  %s  party of %d  %s  %s",
			r.ID, r.Time.Local().Format("2006-01-02 15:04"), r.PartySize, r.CustomerName, r.Status))
	}

	return strings.Join(lines, "\n")
}
