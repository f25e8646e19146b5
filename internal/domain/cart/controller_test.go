package cart

import (
	"context"
	"io"
	"strconv"
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

func newTestController(t *testing.T, baseURL string) (*Controller, *session.Manager) {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := &config.Config{API: config.APIConfig{
		BaseURL:     baseURL,
		Timeout:     5 * time.Second,
		UserAgent:   "storefront-test",
		MaxBodySize: 1 << 20,
	}}
	sessions := session.NewManager(session.NewMemoryStorage())
	return NewController(api.NewClient(cfg, logger), sessions, logger), sessions
}

func TestGetCartRefreshesMirror(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	productID := backend.SeedProduct("Headphones", "electronics", 1999, 10)
	backend.SeedCart("7", productID, 2)

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	items, err := controller.GetCart(ctx, sess)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ProductID)
	assert.Equal(t, 2, items[0].Quantity)
	assert.Equal(t, 10, items[0].Stock)

	assert.True(t, controller.InCart(ctx, productID))
	assert.False(t, controller.InCart(ctx, productID+100))
}

func TestAddToCartPersistsAndMirrors(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	productID := backend.SeedProduct("Keyboard", "electronics", 899, 5)

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	require.NoError(t, controller.AddToCart(ctx, sess, productID, 2))

	lines := backend.Cart("7")
	require.Len(t, lines, 1)
	assert.Equal(t, productID, lines[0].ProductID)
	assert.Equal(t, 2, lines[0].Quantity)
	assert.True(t, controller.InCart(ctx, productID))
}

func TestFailedAddLeavesMirrorUnchanged(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	err := controller.AddToCart(ctx, sess, 999, 1)
	require.Error(t, err)
	assert.True(t, api.IsStatus(err, 404))

	assert.False(t, controller.InCart(ctx, 999))
	assert.Empty(t, backend.Cart("7"))
}

func TestRemoveFromCartBulkClearsOrderedItems(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	first := backend.SeedProduct("Mug", "kitchen", 250, 8)
	second := backend.SeedProduct("Plate", "kitchen", 400, 8)
	third := backend.SeedProduct("Bowl", "kitchen", 300, 8)
	for _, id := range []int64{first, second, third} {
		backend.SeedCart("7", id, 1)
	}

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	_, err := controller.GetCart(ctx, sess)
	require.NoError(t, err)

	require.NoError(t, controller.RemoveFromCartBulk(ctx, sess, []int64{first, second}))

	lines := backend.Cart("7")
	require.Len(t, lines, 1)
	assert.Equal(t, third, lines[0].ProductID)
	assert.False(t, controller.InCart(ctx, first))
	assert.True(t, controller.InCart(ctx, third))
}

func TestToggleWishlistTwiceRestoresState(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	productID := backend.SeedProduct("Lamp", "home", 1200, 4)

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	wishlisted, err := controller.ToggleWishlist(ctx, sess, productID)
	require.NoError(t, err)
	assert.True(t, wishlisted)
	assert.Equal(t, []int64{productID}, backend.Wishlist("7"))

	wishlisted, err = controller.ToggleWishlist(ctx, sess, productID)
	require.NoError(t, err)
	assert.False(t, wishlisted)
	assert.Empty(t, backend.Wishlist("7"))
	assert.False(t, controller.InWishlist(ctx, productID))
}

func TestGetWishlistRefreshesMirror(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	productID := backend.SeedProduct("Chair", "home", 4500, 2)
	backend.SeedWishlist("7", productID)

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()
	sess := &session.Session{UserID: "7"}

	items, err := controller.GetWishlist(ctx, sess)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, productID, items[0].ID)
	assert.True(t, controller.InWishlist(ctx, productID))
}

func TestMirrorIsPerUserID(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	productID := backend.SeedProduct("Desk", "home", 8000, 2)

	controller, _ := newTestController(t, backend.URL())
	ctx := context.Background()

	require.NoError(t, controller.AddToCart(ctx, &session.Session{UserID: "7"}, productID, 1))

	// Backend keeps carts per user even though the mirror is session-local
	assert.Empty(t, backend.Cart(strconv.Itoa(8)))
	require.Len(t, backend.Cart("7"), 1)
}
