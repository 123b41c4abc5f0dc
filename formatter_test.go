package reservo_test

import (
	"testing"
	"time"

	"github.com/fwojciec/reservo"
	"github.com/stretchr/testify/assert"
)

func TestFormatExtraction(t *testing.T) {
	t.Parallel()

	t.Run("formats fields as labelled lines", func(t *testing.T) {
		t.Parallel()

		res := &reservo.ExtractionResult{
			Name:        "Al Mahara",
			Cuisine:     "International",
			City:        "Dubai",
			OpeningTime: "09:00",
			ClosingTime: "22:00",
			Rating:      4,
		}

		out := reservo.FormatExtraction(res)

		assert.Contains(t, out, "Name:        Al Mahara")
		assert.Contains(t, out, "City:        Dubai")
		assert.Contains(t, out, "Hours:       09:00 - 22:00")
		assert.Contains(t, out, "Rating:      4.0")
		assert.NotContains(t, out, "Gallery:")
		assert.NotContains(t, out, "Website:")
	})

	t.Run("includes gallery and website when set", func(t *testing.T) {
		t.Parallel()

		res := &reservo.ExtractionResult{
			Gallery: []string{"https://img.example.com/1.jpg", "https://img.example.com/2.jpg"},
			Website: "https://example.com",
		}

		out := reservo.FormatExtraction(res)

		assert.Contains(t, out, "Gallery:     https://img.example.com/1.jpg, https://img.example.com/2.jpg")
		assert.Contains(t, out, "Website:     https://example.com")
	})

	t.Run("returns empty string for nil result", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, reservo.FormatExtraction(nil))
	})
}

func TestFormatRestaurants(t *testing.T) {
	t.Parallel()

	t.Run("formats one restaurant per line", func(t *testing.T) {
		t.Parallel()

		restaurants := []*reservo.Restaurant{
			{ID: "r1", Name: "Al Mahara", City: "Dubai", Cuisine: "Seafood"},
			{ID: "r2", Name: "Joes Pizza", City: "New York", Cuisine: "Italian"},
		}

		out := reservo.FormatRestaurants(restaurants)

		assert.Equal(t, "r1  Al Mahara  Dubai  Seafood\nr2  Joes Pizza  New York  Italian", out)
	})

	t.Run("uses source URL when name is empty", func(t *testing.T) {
		t.Parallel()

		restaurants := []*reservo.Restaurant{
			{ID: "r1", SourceURL: "https://example.com/x"},
		}

		out := reservo.FormatRestaurants(restaurants)

		assert.Contains(t, out, "https://example.com/x")
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, reservo.FormatRestaurants(nil))
	})
}

func TestFormatReservations(t *testing.T) {
	t.Parallel()

	t.Run("formats one reservation per line", func(t *testing.T) {
		t.Parallel()

		at := time.Date(2026, 3, 14, 19, 30, 0, 0, time.Local)
		reservations := []*reservo.Reservation{
			{ID: "res-1", CustomerName: "Ada", PartySize: 4, Time: at, Status: reservo.StatusConfirmed},
			{ID: "res-2", CustomerName: "Grace", PartySize: 2, Time: at.Add(30 * time.Minute), Status: reservo.StatusPending},
		}

		out := reservo.FormatReservations(reservations)

		assert.Equal(t,
			"res-1  2026-03-14 19:30  party of 4  Ada  confirmed\n"+
				"res-2  2026-03-14 20:00  party of 2  Grace  pending", out)
	})

	t.Run("returns empty string for empty slice", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, reservo.FormatReservations(nil))
	})
}
