// internal/domain/catalog/service.go
package catalog

import (
	"context"
	"fmt"
	"net/url"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
)

// Service exposes the read-only catalog projections of the backend
type Service struct {
	client *api.Client
	logger *logrus.Logger
}

// NewService creates a new catalog service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// GetCategories retrieves all product categories
func (s *Service) GetCategories(ctx context.Context) ([]Category, error) {
	var categories []Category
	if err := s.client.Get(ctx, "/api/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}
	return categories, nil
}

// GetProductsByCategory retrieves the products of one category. Out-of-stock
// products are included; callers decide whether to show them.
func (s *Service) GetProductsByCategory(ctx context.Context, category string) ([]Product, error) {
	var products []Product
	path := "/api/products/" + url.PathEscape(category)
	if err := s.client.Get(ctx, path, &products); err != nil {
		return nil, fmt.Errorf("failed to retrieve products for category %q: %w", category, err)
	}
	return products, nil
}

// GetBanners retrieves homepage banners. Failures degrade to an empty slice
// so a missing asset never blocks the page.
func (s *Service) GetBanners(ctx context.Context) []Banner {
	var banners []Banner
	if err := s.client.Get(ctx, "/api/banners", &banners); err != nil {
		s.logger.WithError(err).Warn("Banner fetch failed, continuing without banners")
		return nil
	}
	return banners
}

// GetLogos retrieves store logos, best-effort like GetBanners
func (s *Service) GetLogos(ctx context.Context) []Logo {
	var logos []Logo
	if err := s.client.Get(ctx, "/api/logos", &logos); err != nil {
		s.logger.WithError(err).Warn("Logo fetch failed, continuing without logos")
		return nil
	}
	return logos
}

// PrimaryLogoURL returns the first configured logo URL, or empty when none
func (s *Service) PrimaryLogoURL(ctx context.Context) string {
	logos := s.GetLogos(ctx)
	if len(logos) == 0 {
		return ""
	}
	return logos[0].ImageURL
}
