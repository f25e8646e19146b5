// internal/domain/profile/service.go
package profile

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/session"
)

// Profile represents the user's profile as served by the backend
type Profile struct {
	UserID     string `json:"user_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	DOB        string `json:"dob"`
	Gender     string `json:"gender"`
	Address    string `json:"address"`
	ProfilePic string `json:"profile_pic"`
}

// EditRequest carries profile fields to update. ProfilePic, when non-nil,
// is uploaded as part of the multipart body.
type EditRequest struct {
	FullName       string
	DOB            string
	Gender         string
	Phone          string
	Address        string
	ProfilePic     io.Reader
	ProfilePicName string
}

// saveAddressRequest is the backend's address creation payload
type saveAddressRequest struct {
	UserID  string `json:"userId"`
	Address string `json:"address"`
}

// Service exposes profile and saved-address operations
type Service struct {
	client *api.Client
	logger *logrus.Logger
}

// NewService creates a new profile service
func NewService(client *api.Client, logger *logrus.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// Get retrieves the user's profile
func (s *Service) Get(ctx context.Context, sess *session.Session) (*Profile, error) {
	var profile Profile
	if err := s.client.Get(ctx, "/api/profile/"+sess.UserID, &profile); err != nil {
		return nil, fmt.Errorf("failed to retrieve profile: %w", err)
	}
	if profile.UserID == "" {
		profile.UserID = sess.UserID
	}
	return &profile, nil
}

// Edit updates the profile via the backend's multipart endpoint
func (s *Service) Edit(ctx context.Context, sess *session.Session, req *EditRequest) error {
	fields := map[string]string{
		"user_id":   sess.UserID,
		"full_name": req.FullName,
		"dob":       req.DOB,
		"gender":    req.Gender,
		"phone":     req.Phone,
		"address":   req.Address,
	}

	fileName := req.ProfilePicName
	if fileName == "" {
		fileName = "profile.jpg"
	}

	if err := s.client.PostMultipart(ctx, "/api/profile/edit", fields, "profile_pic", fileName, req.ProfilePic, nil); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// SavedAddresses retrieves the user's saved delivery addresses
func (s *Service) SavedAddresses(ctx context.Context, sess *session.Session) ([]string, error) {
	var addresses []string
	if err := s.client.Get(ctx, "/api/user-addresses/"+sess.UserID, &addresses); err != nil {
		return nil, fmt.Errorf("failed to retrieve saved addresses: %w", err)
	}
	return addresses, nil
}

// SaveAddress persists a new delivery address for the user
func (s *Service) SaveAddress(ctx context.Context, sess *session.Session, address string) error {
	req := saveAddressRequest{UserID: sess.UserID, Address: address}
	if err := s.client.Post(ctx, "/api/user-addresses", req, nil); err != nil {
		return fmt.Errorf("failed to save address: %w", err)
	}
	return nil
}
