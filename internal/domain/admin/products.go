// internal/domain/admin/products.go
package admin

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/session"
)

// ProductRequest represents product create/update data
type ProductRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	CategoryID  int64   `json:"category_id"`
	ImageURL    string  `json:"image_url"`
}

// ListProducts returns every product across all categories as a bare array
func (s *Service) ListProducts(ctx context.Context, sess *session.Session) ([]catalog.Product, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var products []catalog.Product
	if err := s.client.Get(ctx, "/api/admin/products", &products); err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return products, nil
}

// CreateProduct adds a new product to the catalog
func (s *Service) CreateProduct(ctx context.Context, sess *session.Session, req *ProductRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := s.client.Post(ctx, "/api/admin/products", req, nil); err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	s.logger.WithField("name", req.Name).Info("Product created")
	return nil
}

// UpdateProduct replaces a product's fields
func (s *Service) UpdateProduct(ctx context.Context, sess *session.Session, productID int64, req *ProductRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/products/%d", productID)
	if err := s.client.Put(ctx, path, req, nil); err != nil {
		return fmt.Errorf("failed to update product %d: %w", productID, err)
	}
	return nil
}

// DeleteProduct removes a product from the catalog
func (s *Service) DeleteProduct(ctx context.Context, sess *session.Session, productID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/products/%d", productID)
	if err := s.client.Delete(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete product %d: %w", productID, err)
	}
	s.logger.WithField("product_id", productID).Info("Product deleted")
	return nil
}
