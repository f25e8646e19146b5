// internal/domain/admin/assets.go
package admin

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/session"
)

type uploadResponse struct {
	URL      string `json:"url"`
	ImageURL string `json:"image_url"`
}

// imageURL tolerates both field names the backend has used for uploads
func (r uploadResponse) imageURL() string {
	if r.URL != "" {
		return r.URL
	}
	return r.ImageURL
}

// UploadProductImage uploads a product photo and returns its public URL
func (s *Service) UploadProductImage(ctx context.Context, sess *session.Session, fileName string, file io.Reader) (string, error) {
	return s.uploadImage(ctx, sess, "/api/upload/products", fileName, file)
}

// UploadCategoryImage uploads a category tile image and returns its public URL
func (s *Service) UploadCategoryImage(ctx context.Context, sess *session.Session, fileName string, file io.Reader) (string, error) {
	return s.uploadImage(ctx, sess, "/api/upload/categories", fileName, file)
}

// UploadBanner adds a homepage banner
func (s *Service) UploadBanner(ctx context.Context, sess *session.Session, fileName string, file io.Reader) (string, error) {
	return s.uploadImage(ctx, sess, "/api/banners/upload", fileName, file)
}

// UploadLogo adds a store logo
func (s *Service) UploadLogo(ctx context.Context, sess *session.Session, fileName string, file io.Reader) (string, error) {
	return s.uploadImage(ctx, sess, "/api/logos/upload", fileName, file)
}

func (s *Service) uploadImage(ctx context.Context, sess *session.Session, path, fileName string, file io.Reader) (string, error) {
	if err := requireAdmin(sess); err != nil {
		return "", err
	}
	var resp uploadResponse
	if err := s.client.PostMultipart(ctx, path, nil, "file", fileName, file, &resp); err != nil {
		return "", fmt.Errorf("failed to upload %s: %w", fileName, err)
	}
	s.logger.WithFields(logrus.Fields{
		"path": path,
		"file": fileName,
	}).Info("Asset uploaded")
	return resp.imageURL(), nil
}

// DeleteBanner removes a homepage banner
func (s *Service) DeleteBanner(ctx context.Context, sess *session.Session, bannerID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/banners/%d", bannerID)
	if err := s.client.Delete(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete banner %d: %w", bannerID, err)
	}
	return nil
}

// DeleteLogo removes a store logo
func (s *Service) DeleteLogo(ctx context.Context, sess *session.Session, logoID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/logos/%d", logoID)
	if err := s.client.Delete(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete logo %d: %w", logoID, err)
	}
	return nil
}
