// internal/domain/admin/categories.go
package admin

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/session"
)

// CategoryRequest represents category create/update data
type CategoryRequest struct {
	Name     string `json:"name"`
	ImageURL string `json:"image_url"`
}

// ListCategories returns all catalog categories as a bare array
func (s *Service) ListCategories(ctx context.Context, sess *session.Session) ([]catalog.Category, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var categories []catalog.Category
	if err := s.client.Get(ctx, "/api/admin/categories", &categories); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// CreateCategory adds a catalog category
func (s *Service) CreateCategory(ctx context.Context, sess *session.Session, req *CategoryRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	if err := s.client.Post(ctx, "/api/admin/categories", req, nil); err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	s.logger.WithField("name", req.Name).Info("Category created")
	return nil
}

// UpdateCategory renames a category or swaps its image
func (s *Service) UpdateCategory(ctx context.Context, sess *session.Session, categoryID int64, req *CategoryRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/categories/%d", categoryID)
	if err := s.client.Put(ctx, path, req, nil); err != nil {
		return fmt.Errorf("failed to update category %d: %w", categoryID, err)
	}
	return nil
}

// DeleteCategory removes a category
func (s *Service) DeleteCategory(ctx context.Context, sess *session.Session, categoryID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/categories/%d", categoryID)
	if err := s.client.Delete(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, err)
	}
	s.logger.WithField("category_id", categoryID).Info("Category deleted")
	return nil
}
