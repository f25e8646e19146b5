package profile

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/backendtest"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/session"
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

func TestGetProfile(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()
	backend.SeedUser("Asha Rao", "asha@example.com", "secret", false)

	service := newTestService(t, backend.URL())
	sess := &session.Session{UserID: "1"}

	prof, err := service.Get(context.Background(), sess)
	require.NoError(t, err)
	assert.Equal(t, "1", prof.UserID)
	assert.Equal(t, "Asha Rao", prof.FullName)
	assert.Equal(t, "asha@example.com", prof.Email)
}

func TestEditProfile(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()
	backend.SeedUser("Asha Rao", "asha@example.com", "secret", false)

	service := newTestService(t, backend.URL())
	sess := &session.Session{UserID: "1"}
	ctx := context.Background()

	err := service.Edit(ctx, sess, &EditRequest{
		FullName:       "Asha R.",
		Phone:          "555-1234",
		Address:        "12 Main St",
		ProfilePic:     strings.NewReader("image-bytes"),
		ProfilePicName: "avatar.jpg",
	})
	require.NoError(t, err)

	prof, err := service.Get(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, "Asha R.", prof.FullName)
	assert.Equal(t, "555-1234", prof.Phone)
	assert.Equal(t, "12 Main St", prof.Address)
}

func TestSavedAddresses(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	service := newTestService(t, backend.URL())
	sess := &session.Session{UserID: "1"}
	ctx := context.Background()

	addresses, err := service.SavedAddresses(ctx, sess)
	require.NoError(t, err)
	assert.Empty(t, addresses)

	require.NoError(t, service.SaveAddress(ctx, sess, "12 Main St"))
	require.NoError(t, service.SaveAddress(ctx, sess, "4 Hill Rd"))

	addresses, err = service.SavedAddresses(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, []string{"12 Main St", "4 Hill Rd"}, addresses)
}
