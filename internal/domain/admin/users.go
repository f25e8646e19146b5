// internal/domain/admin/users.go
package admin

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-client/internal/session"
)

// User is a registered account as the management views see it
type User struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	IsAdmin  bool   `json:"is_admin"`
	Created  string `json:"created_at"`
}

type listUsersResponse struct {
	Users []User `json:"users"`
}

// ListUsers returns every registered account
func (s *Service) ListUsers(ctx context.Context, sess *session.Session) ([]User, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var resp listUsersResponse
	if err := s.client.Get(ctx, "/api/admin/users", &resp); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return resp.Users, nil
}

// DeleteUser removes an account
func (s *Service) DeleteUser(ctx context.Context, sess *session.Session, userID int64) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/users/%d", userID)
	if err := s.client.Delete(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to delete user %d: %w", userID, err)
	}
	s.logger.WithField("user_id", userID).Info("User deleted")
	return nil
}
