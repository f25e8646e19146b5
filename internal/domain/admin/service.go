// internal/domain/admin/service.go
package admin

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/session"
)

// ErrNotAdmin is returned when a non-admin session calls an admin operation
var ErrNotAdmin = errors.New("admin access required")

// Service exposes the management surface: product, category, user and order
// administration plus dashboard metrics and asset uploads
type Service struct {
	client *api.Client
	logger *logrus.Logger
}

// NewService creates a new admin service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{client: client, logger: logger}
}

// requireAdmin gates every operation on the session's admin flag
func requireAdmin(sess *session.Session) error {
	if sess == nil || !sess.IsAdmin {
		return ErrNotAdmin
	}
	return nil
}
