// internal/domain/auth/service.go
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/session"
)

// Service handles login, registration and password recovery
type Service struct {
	client   *api.Client
	sessions *session.Manager
	logger   *logrus.Logger
}

// NewService creates a new auth service
func NewService(client *api.Client, sessions *session.Manager, logger *logrus.Logger) *Service {
	return &Service{client: client, sessions: sessions, logger: logger}
}

// LoginRequest represents user login data
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginUser struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// The backend puts the user at the top level of the login response. Some
// deployments wrap it in a data envelope and issue a token, so both shapes
// are accepted.
type loginResponse struct {
	Message string    `json:"message"`
	Token   string    `json:"token"`
	User    loginUser `json:"user"`
	Data    struct {
		User loginUser `json:"user"`
	} `json:"data"`
}

// tokenClaims mirrors the backend's JWT payload. The token is only decoded
// for its claims here; signature verification happens server side.
type tokenClaims struct {
	UserID  int64 `json:"user_id"`
	IsAdmin bool  `json:"is_admin"`
	jwt.RegisteredClaims
}

// Login authenticates against the backend and opens a local session
func (s *Service) Login(ctx context.Context, req *LoginRequest) (*session.Session, error) {
	var resp loginResponse
	if err := s.client.Post(ctx, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login failed: %w", err)
	}

	userID := resp.User.ID
	isAdmin := resp.User.IsAdmin
	if userID == 0 {
		userID = resp.Data.User.ID
		isAdmin = resp.Data.User.IsAdmin
	}

	if resp.Token != "" {
		if claims := decodeClaims(resp.Token); claims != nil {
			if userID == 0 {
				userID = claims.UserID
			}
			isAdmin = isAdmin || claims.IsAdmin
		}
	}
	if userID == 0 {
		return nil, fmt.Errorf("login response did not identify the user")
	}

	sess, err := s.sessions.Create(ctx, fmt.Sprintf("%d", userID), isAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"user_id":  sess.UserID,
		"is_admin": sess.IsAdmin,
	}).Info("User logged in")
	return sess, nil
}

func decodeClaims(token string) *tokenClaims {
	claims := &tokenClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil
	}
	return claims
}

// Logout destroys the local session
func (s *Service) Logout(ctx context.Context) error {
	if err := s.sessions.Destroy(ctx); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	s.logger.Info("User logged out")
	return nil
}

// RegisterRequest represents new account data collected before OTP delivery
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

type sendOTPRequest struct {
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// SendOTP requests a one-time code for the pending registration
func (s *Service) SendOTP(ctx context.Context, req *RegisterRequest) error {
	payload := sendOTPRequest{Phone: req.Phone, Email: req.Email}
	if err := s.client.Post(ctx, "/api/auth/send-otp", payload, nil); err != nil {
		return fmt.Errorf("failed to send OTP: %w", err)
	}
	return nil
}

type verifyOTPRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	OTP      string `json:"otp"`
}

// VerifyOTP completes registration with the delivered code
func (s *Service) VerifyOTP(ctx context.Context, req *RegisterRequest, otp string) error {
	payload := verifyOTPRequest{
		FullName: req.FullName,
		Email:    req.Email,
		Phone:    req.Phone,
		Password: req.Password,
		OTP:      otp,
	}
	if err := s.client.Post(ctx, "/api/auth/verify-otp", payload, nil); err != nil {
		return fmt.Errorf("OTP verification failed: %w", err)
	}
	s.logger.WithField("email", req.Email).Info("Registration completed")
	return nil
}

// ForgotPassword starts password recovery for the email
func (s *Service) ForgotPassword(ctx context.Context, email string) error {
	payload := map[string]string{"email": email}
	if err := s.client.Post(ctx, "/api/auth/forgot-password", payload, nil); err != nil {
		return fmt.Errorf("failed to request password reset: %w", err)
	}
	return nil
}

// ResetPassword sets a new password using the emailed reset token
func (s *Service) ResetPassword(ctx context.Context, token, password string) error {
	payload := map[string]string{"password": password}
	path := fmt.Sprintf("/api/auth/reset-password/%s", token)
	if err := s.client.Post(ctx, path, payload, nil); err != nil {
		return fmt.Errorf("failed to reset password: %w", err)
	}
	return nil
}
