package directory_test

import (
	"testing"

	"github.com/fwojciec/reservo/directory"
	"github.com/stretchr/testify/assert"
)

func TestIsPlaceholder(t *testing.T) {
	t.Parallel()

	t.Run("reports placeholder fields", func(t *testing.T) {
		t.Parallel()

		p := directory.DefaultPlaceholders()
		res := directory.DefaultPlaceholders()

		for _, field := range []string{
			"name", "cuisine", "address", "city", "state", "zipCode", "phoneNumber",
			"email", "description", "openingTime", "closingTime", "priceRange",
			"rating", "imageUrl", "gallery", "website",
		} {
			assert.True(t, directory.IsPlaceholder(&res, p, field), field)
		}
	})

	t.Run("reports derived fields", func(t *testing.T) {
		t.Parallel()

		res := directory.DefaultPlaceholders()
		res.Name = "Al Mahara"
		res.Gallery = []string{"a.jpg"}

		assert.False(t, directory.IsPlaceholder(&res, directory.DefaultPlaceholders(), "name"))
		assert.False(t, directory.IsPlaceholder(&res, directory.DefaultPlaceholders(), "gallery"))
	})

	t.Run("compares against custom placeholders", func(t *testing.T) {
		t.Parallel()

		p := directory.DefaultPlaceholders()
		p.PhoneNumber = "n/a"

		res, err := directory.NewExtractor(directory.WithPlaceholders(p)).Extract("https://example.com")
		assert.NoError(t, err)

		assert.True(t, directory.IsPlaceholder(res, p, "phoneNumber"))
		assert.False(t, directory.IsPlaceholder(res, directory.DefaultPlaceholders(), "phoneNumber"))
	})

	t.Run("returns false for unknown field", func(t *testing.T) {
		t.Parallel()

		res := directory.DefaultPlaceholders()

		assert.False(t, directory.IsPlaceholder(&res, directory.DefaultPlaceholders(), "favoriteColor"))
	})
}

func TestLookupCity(t *testing.T) {
	t.Parallel()

	c, ok := directory.LookupCity("NEW-YORK")
	assert.True(t, ok)
	assert.Equal(t, "New York", c.Name)
	assert.Equal(t, "NY", c.State)

	_, ok = directory.LookupCity("atlantis")
	assert.False(t, ok)
}
