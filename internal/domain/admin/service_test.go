package admin

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
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/session"
)

var (
	adminSession   = &session.Session{UserID: "1", IsAdmin: true}
	shopperSession = &session.Session{UserID: "2", IsAdmin: false}
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

func TestNonAdminIsRejected(t *testing.T) {
	service := newTestService(t, "http://127.0.0.1:0")
	ctx := context.Background()

	_, err := service.ListProducts(ctx, shopperSession)
	assert.ErrorIs(t, err, ErrNotAdmin)

	err = service.CreateProduct(ctx, nil, &ProductRequest{Name: "x"})
	assert.ErrorIs(t, err, ErrNotAdmin)

	_, err = service.GetStats(ctx, shopperSession)
	assert.ErrorIs(t, err, ErrNotAdmin)

	err = service.UpdateOrderStatus(ctx, shopperSession, 1, &StatusUpdateRequest{Status: order.StatusPacked})
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestProductCRUD(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	require.NoError(t, service.CreateProduct(ctx, adminSession, &ProductRequest{
		Name: "Mug", Description: "Ceramic", Price: 250, Quantity: 8, CategoryID: 1,
	}))

	products, err := service.ListProducts(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "Mug", products[0].Name)

	productID := products[0].ID
	require.NoError(t, service.UpdateProduct(ctx, adminSession, productID, &ProductRequest{
		Name: "Big Mug", Price: 300, Quantity: 5,
	}))

	products, err = service.ListProducts(ctx, adminSession)
	require.NoError(t, err)
	assert.Equal(t, "Big Mug", products[0].Name)

	require.NoError(t, service.DeleteProduct(ctx, adminSession, productID))
	products, err = service.ListProducts(ctx, adminSession)
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestOrderAdministration(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Mug", "kitchen", 250, 8)

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	orderID := placeBackendOrder(t, backend)

	orders, err := service.ListOrders(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, order.StatusPending, orders[0].Status)

	require.NoError(t, service.UpdateOrderStatus(ctx, adminSession, orderID, &StatusUpdateRequest{
		Status:     order.StatusShipped,
		TrackingID: "TRK7",
	}))

	assert.Equal(t, "Shipped", backend.Order(orderID).Status)
	assert.Equal(t, "TRK7", backend.Order(orderID).TrackingID)
}

func TestStats(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedUser("Asha Rao", "asha@example.com", "secret", false)
	backend.SeedProduct("Mug", "kitchen", 250, 8)
	placeBackendOrder(t, backend)

	service := newTestService(t, backend.URL())

	stats, err := service.GetStats(context.Background(), adminSession)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Orders)
	assert.Equal(t, 1, stats.Users)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 500.0, stats.Revenue)
}

func TestPendingOrders(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Mug", "kitchen", 250, 8)

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	pendingID := placeBackendOrder(t, backend)
	shippedID := placeBackendOrder(t, backend)
	require.NoError(t, service.UpdateOrderStatus(ctx, adminSession, shippedID, &StatusUpdateRequest{
		Status: order.StatusShipped,
	}))

	pending, err := service.ListPendingOrders(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, pendingID, pending[0].ID)

	counts, err := service.StatusCounts(ctx, adminSession)
	require.NoError(t, err)
	assert.Equal(t, 1, counts["Pending"])
	assert.Equal(t, 1, counts["Shipped"])
}

func TestUpdatePaymentStatus(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Mug", "kitchen", 250, 8)

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	orderID := placeBackendOrder(t, backend)
	require.Equal(t, "Unpaid", backend.Order(orderID).PaymentStatus)

	require.NoError(t, service.UpdatePaymentStatus(ctx, adminSession, orderID, order.PaymentStatusPaid))
	assert.Equal(t, "Paid", backend.Order(orderID).PaymentStatus)

	err := service.UpdatePaymentStatus(ctx, adminSession, 999, order.PaymentStatusPaid)
	assert.Error(t, err)
}

func TestCategoryCRUD(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	require.NoError(t, service.CreateCategory(ctx, adminSession, &CategoryRequest{
		Name: "kitchen", ImageURL: "/uploads/categories/kitchen.png",
	}))

	categories, err := service.ListCategories(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "kitchen", categories[0].Name)
	assert.Equal(t, "/uploads/categories/kitchen.png", categories[0].ImageURL)

	categoryID := categories[0].ID
	require.NoError(t, service.UpdateCategory(ctx, adminSession, categoryID, &CategoryRequest{Name: "home & kitchen"}))

	categories, err = service.ListCategories(ctx, adminSession)
	require.NoError(t, err)
	assert.Equal(t, "home & kitchen", categories[0].Name)

	require.NoError(t, service.DeleteCategory(ctx, adminSession, categoryID))
	categories, err = service.ListCategories(ctx, adminSession)
	require.NoError(t, err)
	assert.Empty(t, categories)
}

func TestUserAdministration(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedUser("Asha Rao", "asha@example.com", "secret", true)
	shopperID := backend.SeedUser("Ravi Kumar", "ravi@example.com", "secret", false)

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	users, err := service.ListUsers(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Asha Rao", users[0].FullName)
	assert.True(t, users[0].IsAdmin)
	assert.Equal(t, "Ravi Kumar", users[1].FullName)
	assert.False(t, users[1].IsAdmin)

	require.NoError(t, service.DeleteUser(ctx, adminSession, shopperID))
	users, err = service.ListUsers(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "Asha Rao", users[0].FullName)
}

func TestImageUploads(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	url, err := service.UploadProductImage(ctx, adminSession, "mug.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/products/mug.png", url)

	url, err = service.UploadCategoryImage(ctx, adminSession, "kitchen.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "/uploads/categories/kitchen.png", url)

	_, err = service.UploadProductImage(ctx, shopperSession, "mug.png", strings.NewReader("png-bytes"))
	assert.ErrorIs(t, err, ErrNotAdmin)
}

func TestBannerAndLogoLifecycle(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	service := newTestService(t, backend.URL())
	catalogService := catalog.NewService(service.client, logger)
	ctx := context.Background()

	_, err := service.UploadBanner(ctx, adminSession, "sale.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)
	_, err = service.UploadLogo(ctx, adminSession, "logo.png", strings.NewReader("png-bytes"))
	require.NoError(t, err)

	banners := catalogService.GetBanners(ctx)
	require.Len(t, banners, 1)
	assert.Equal(t, "/uploads/banners/sale.png", banners[0].ImageURL)

	logos := catalogService.GetLogos(ctx)
	require.Len(t, logos, 1)

	require.NoError(t, service.DeleteBanner(ctx, adminSession, banners[0].ID))
	assert.Empty(t, catalogService.GetBanners(ctx))

	require.NoError(t, service.DeleteLogo(ctx, adminSession, logos[0].ID))
	assert.Empty(t, catalogService.GetLogos(ctx))
}

func TestDashboardStockPanels(t *testing.T) {
	backend := backendtest.New()
	defer backend.Close()

	backend.SeedProduct("Plenty", "kitchen", 100, 50)
	lowID := backend.SeedProduct("Low", "kitchen", 100, 3)
	boundaryID := backend.SeedProduct("Boundary", "kitchen", 100, LowStockThreshold)
	goneID := backend.SeedProduct("Gone", "kitchen", 100, 0)

	service := newTestService(t, backend.URL())
	ctx := context.Background()

	low, err := service.LowStockProducts(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, lowID, low[0].ID)
	assert.Equal(t, boundaryID, low[1].ID)

	out, err := service.OutOfStockProducts(ctx, adminSession)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, goneID, out[0].ID)
}

func TestStockAlerts(t *testing.T) {
	products := []catalog.Product{
		{ID: 1, Name: "Plenty", Quantity: 50},
		{ID: 2, Name: "Low", Quantity: 3},
		{ID: 3, Name: "Boundary", Quantity: LowStockThreshold},
		{ID: 4, Name: "Gone", Quantity: 0},
	}

	low, out := StockAlerts(products)
	require.Len(t, low, 2)
	assert.Equal(t, int64(2), low[0].ID)
	assert.Equal(t, int64(3), low[1].ID)
	require.Len(t, out, 1)
	assert.Equal(t, int64(4), out[0].ID)
}

// placeBackendOrder submits an order straight to the fake backend
func placeBackendOrder(t *testing.T, backend *backendtest.Server) int64 {
	t.Helper()

	service := newTestService(t, backend.URL())

	payload := map[string]interface{}{
		"userId":        "2",
		"name":          "Asha Rao",
		"address":       "12 Main St",
		"paymentMethod": "Cash on Delivery",
		"totalPrice":    500.0,
		"items": []map[string]interface{}{
			{"productId": 1, "quantity": 2, "price": 250, "productName": "Mug"},
		},
	}
	var resp struct {
		OrderID int64 `json:"orderId"`
	}
	require.NoError(t, service.client.Post(context.Background(), "/api/order/place", payload, &resp))
	return resp.OrderID
}
