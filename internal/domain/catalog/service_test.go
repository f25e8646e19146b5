package catalog

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/backendtest"
	"github.com/your-org/storefront-client/internal/config"
)

func newTestService(t *testing.T, baseURL string) *Service {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{API: config.APIConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		UserAgent:   "storefront-test",
		MaxBodySize: 1 << 20,
	}}
	return NewService(api.NewClient(cfg, logger), logger)
}

func TestGetCategories(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Mug", "kitchen", 250, 8)
	backend.SeedProduct("Lamp", "home", 1200, 4)

	service := newTestService(t, backend.URL())

	categories, err := service.GetCategories(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "kitchen", categories[0].Name)
	assert.Equal(t, "home", categories[1].Name)
}

func TestGetProductsByCategory(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Mug", "kitchen", 250, 8)
	backend.SeedProduct("Plate", "kitchen", 400, 0)
	backend.SeedProduct("Lamp", "home", 1200, 4)

	service := newTestService(t, backend.URL())

	products, err := service.GetProductsByCategory(context.Background(), "kitchen")
	require.NoError(t, err)
	require.Len(t, products, 2)

	// Out-of-stock products are still listed
	var inStock, outOfStock int
	for _, p := range products {
		if p.InStock() {
			inStock++
		} else {
			outOfStock++
		}
	}
	assert.Equal(t, 1, inStock)
	assert.Equal(t, 1, outOfStock)
}

func TestBannersAndLogos(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedBanner("/uploads/banners/sale.png")
	backend.SeedLogo("/uploads/logos/store.png")

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	banners := service.GetBanners(ctx)
	require.Len(t, banners, 1)
	assert.Equal(t, "/uploads/banners/sale.png", banners[0].ImageURL)

	assert.Equal(t, "/uploads/logos/store.png", service.PrimaryLogoURL(ctx))
}

func TestBannersDegradeToEmpty(t *testing.T) {
	backend := backendtest.New()
	backend.Close() // unreachable backend

	service := newTestService(t, backend.URL())

	assert.Nil(t, service.GetBanners(context.Background()))
	assert.Nil(t, service.GetLogos(context.Background()))
	assert.Equal(t, "", service.PrimaryLogoURL(context.Background()))
}
