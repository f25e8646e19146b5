// internal/domain/admin/dashboard.go
package admin

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/session"
)

// LowStockThreshold marks products that need restocking soon
const LowStockThreshold = 5

// Stats is the dashboard headline row
type Stats struct {
	Orders   int     `json:"orders"`
	Users    int     `json:"users"`
	Products int     `json:"products"`
	Revenue  float64 `json:"revenue"`
}

// GetStats fetches the dashboard counters
func (s *Service) GetStats(ctx context.Context, sess *session.Session) (*Stats, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var stats Stats
	if err := s.client.Get(ctx, "/api/admin/dashboard", &stats); err != nil {
		return nil, fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}
	return &stats, nil
}

// LowStockProducts returns products running below the restock threshold
// for the dashboard's alert panel
func (s *Service) LowStockProducts(ctx context.Context, sess *session.Session) ([]catalog.Product, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := s.client.Get(ctx, "/api/admin/dashboard/low-stock-products", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch low stock products: %w", err)
	}
	return products, nil
}

// OutOfStockProducts returns products with no stock left
func (s *Service) OutOfStockProducts(ctx context.Context, sess *session.Session) ([]catalog.Product, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := s.client.Get(ctx, "/api/admin/dashboard/out-of-stock-products", &products); err != nil {
		return nil, fmt.Errorf("failed to fetch out of stock products: %w", err)
	}
	return products, nil
}

// StockAlerts splits the product list into low-stock and out-of-stock sets.
// It mirrors the partition the backend applies for the dashboard endpoints.
func StockAlerts(products []catalog.Product) (low, out []catalog.Product) {
	for _, p := range products {
		switch {
		case p.Quantity == 0:
			out = append(out, p)
		case p.Quantity <= LowStockThreshold:
			low = append(low, p)
		}
	}
	return low, out
}
