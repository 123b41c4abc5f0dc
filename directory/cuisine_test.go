package directory_test

import (
	"testing"

	"github.com/fwojciec/reservo/directory"
	"github.com/stretchr/testify/assert"
)

func TestCuisineMatcher_Detect(t *testing.T) {
	t.Parallel()

	t.Run("returns cuisine for keyword", func(t *testing.T) {
		t.Parallel()

		m := directory.NewCuisineMatcher(directory.DefaultCuisines())

		assert.Equal(t, "Indian", m.Detect("the curry house"))
		assert.Equal(t, "Mexican", m.Detect("https://example.com/MEXICAN-grill"))
	})

	t.Run("prefers earlier table entry over earlier position in text", func(t *testing.T) {
		t.Parallel()

		m := directory.NewCuisineMatcher([]directory.CuisineKeyword{
			{Keyword: "chinese", Cuisine: "Chinese"},
			{Keyword: "sushi", Cuisine: "Japanese"},
		})

		assert.Equal(t, "Chinese", m.Detect("sushi and chinese"))
	})

	t.Run("returns empty string when nothing matches", func(t *testing.T) {
		t.Parallel()

		m := directory.NewCuisineMatcher(directory.DefaultCuisines())

		assert.Empty(t, m.Detect("golden spoon"))
	})

	t.Run("ignores blank keywords", func(t *testing.T) {
		t.Parallel()

		m := directory.NewCuisineMatcher([]directory.CuisineKeyword{
			{Keyword: "  ", Cuisine: "Nothing"},
		})

		assert.Empty(t, m.Detect("anything at all"))
	})
}

func TestExtractor_WithCuisines(t *testing.T) {
	t.Parallel()

	e := directory.NewExtractor(directory.WithCuisines([]directory.CuisineKeyword{
		{Keyword: "spoon", Cuisine: "Diner"},
	}))

	res, err := e.Extract("https://example.com/golden-spoon")

	assert.NoError(t, err)
	assert.Equal(t, "Diner", res.Cuisine)
}
