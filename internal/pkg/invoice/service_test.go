package invoice

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/order"
)

func testService() *Service {
	return NewService(&config.Config{Company: config.CompanyConfig{
		Name:    "HoverSale",
		Address: "1 Market Rd, Chennai",
		Phone:   "+91 98765 43210",
		Email:   "support@hoversale.example",
		Website: "hoversale.example",
	}})
}

func testOrder() *order.Order {
	return &order.Order{
		ID:            42,
		Name:          "Asha Rao",
		Email:         "asha@example.com",
		Phone:         "555-1234",
		Address:       "12 Main St",
		Status:        order.StatusDelivered,
		PaymentStatus: order.PaymentStatusPaid,
		PaymentMethod: order.PaymentMethodCOD,
		OrderDate:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		TotalPrice:    800,
		Items: []order.Item{
			{ProductID: 1, ProductName: "Mug", Price: 250, Quantity: 2},
			{ProductID: 3, ProductName: "Bowl", Price: 300, Quantity: 1},
		},
	}
}

func TestGenerateHTML(t *testing.T) {
	service := testService()

	html, err := service.generateHTML(service.invoiceData(testOrder()))
	require.NoError(t, err)

	assert.Contains(t, html, "INV-42")
	assert.Contains(t, html, "HoverSale")
	assert.Contains(t, html, "Asha Rao")
	assert.Contains(t, html, "12 Main St")
	assert.Contains(t, html, "Mug")
	assert.Contains(t, html, "₹250.00")
	assert.Contains(t, html, "₹500.00", "line total is price times quantity")
	assert.Contains(t, html, "₹800.00")
	assert.Contains(t, html, "Paid")
	assert.Contains(t, html, "March 14, 2026")
}

func TestGenerateHTMLLocksCanceledPaymentStatus(t *testing.T) {
	service := testService()

	o := testOrder()
	o.Status = order.StatusCanceled

	html, err := service.generateHTML(service.invoiceData(o))
	require.NoError(t, err)
	assert.Contains(t, html, "Locked due to cancellation")
}

func TestGenerateHTMLEscapesUserInput(t *testing.T) {
	service := testService()

	o := testOrder()
	o.Items[0].ProductName = `<script>alert("x")</script>`

	html, err := service.generateHTML(service.invoiceData(o))
	require.NoError(t, err)
	assert.False(t, strings.Contains(html, "<script>alert"))
}
