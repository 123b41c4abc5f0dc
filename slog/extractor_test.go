package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/reservo"
	"github.com/fwojciec/reservo/mock"
	resslog "github.com/fwojciec/reservo/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func debugLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs matched source", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(rawURL string) (*reservo.ExtractionResult, error) {
				return &reservo.ExtractionResult{Name: "Blue Door Bistro", Source: "yelp"}, nil
			},
		}

		res, err := resslog.NewLoggingExtractor(inner, debugLogger(&buf)).Extract("https://www.yelp.com/biz/blue-door-bistro")

		require.NoError(t, err)
		assert.Equal(t, "Blue Door Bistro", res.Name)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "source=yelp")
	})

	t.Run("logs malformed URL error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.Extractor{
			ExtractFn: func(rawURL string) (*reservo.ExtractionResult, error) {
				return nil, reservo.Errorf(reservo.EMALFORMED, "malformed URL")
			},
		}

		_, err := resslog.NewLoggingExtractor(inner, debugLogger(&buf)).Extract("::")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "code=malformed_url")
	})

	t.Run("silent above debug level", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(rawURL string) (*reservo.ExtractionResult, error) {
				return &reservo.ExtractionResult{}, nil
			},
		}

		_, err := resslog.NewLoggingExtractor(inner, logger).Extract("https://example.com")

		require.NoError(t, err)
		assert.Empty(t, buf.String())
	})
}

func TestLoggingEnricher_Enrich(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	inner := &mock.Enricher{
		EnrichFn: func(html string, res *reservo.ExtractionResult) error {
			res.Name = "Graph Diner"
			return nil
		},
	}

	res := &reservo.ExtractionResult{}
	err := resslog.NewLoggingEnricher(inner, debugLogger(&buf)).Enrich("<html></html>", res)

	require.NoError(t, err)
	output := buf.String()
	assert.Contains(t, output, "msg=enrich")
	assert.Contains(t, output, `name="Graph Diner"`)
	assert.Contains(t, output, "bytes=13")
}

func TestLoggingRestaurantService(t *testing.T) {
	t.Parallel()

	t.Run("logs create with assigned ID", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RestaurantService{
			CreateRestaurantFn: func(ctx context.Context, r *reservo.Restaurant) error {
				r.ID = "r-1"
				return nil
			},
		}

		svc := resslog.NewLoggingRestaurantService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := svc.CreateRestaurant(context.Background(), &reservo.Restaurant{Name: "Zuma"})

		require.NoError(t, err)
		output := buf.String()
		assert.Contains(t, output, `msg="create restaurant"`)
		assert.Contains(t, output, "id=r-1")
		assert.Contains(t, output, "name=Zuma")
	})

	t.Run("logs delete error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RestaurantService{
			DeleteRestaurantFn: func(ctx context.Context, id string) error {
				return reservo.Errorf(reservo.ENOTFOUND, "restaurant not found")
			},
		}

		svc := resslog.NewLoggingRestaurantService(inner, slog.New(slog.NewTextHandler(&buf, nil)))
		err := svc.DeleteRestaurant(context.Background(), "missing")

		assert.Equal(t, reservo.ENOTFOUND, reservo.ErrorCode(err))
		assert.Contains(t, buf.String(), "code=not_found")
	})

	t.Run("logs find count at debug", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		inner := &mock.RestaurantService{
			FindRestaurantsFn: func(ctx context.Context, filter reservo.RestaurantFilter) ([]*reservo.Restaurant, error) {
				return []*reservo.Restaurant{{ID: "a"}, {ID: "b"}}, nil
			},
		}

		svc := resslog.NewLoggingRestaurantService(inner, debugLogger(&buf))
		rs, err := svc.FindRestaurants(context.Background(), reservo.RestaurantFilter{})

		require.NoError(t, err)
		assert.Len(t, rs, 2)
		assert.Contains(t, buf.String(), "count=2")
	})
}
