// internal/domain/payment/razorpay.go
package payment

import (
	"context"
	"fmt"

	"github.com/your-org/storefront-client/internal/api"
)

// CheckoutOpener hands checkout options to an external overlay and waits for
// its completion callback. Headless integrations plug in their own opener;
// tests use a scripted one.
type CheckoutOpener func(ctx context.Context, opts CheckoutOptions) (*Completion, error)

// RazorpayGateway is the REST-backed Gateway. Key fetch and order creation go
// through the backend's payment endpoints; the overlay itself is external and
// reached through the injected opener.
type RazorpayGateway struct {
	client *api.Client
	opener CheckoutOpener
}

// NewRazorpayGateway creates a gateway over the backend payment endpoints
func NewRazorpayGateway(client *api.Client, opener CheckoutOpener) *RazorpayGateway {
	return &RazorpayGateway{
		client: client,
		opener: opener,
	}
}

// FetchKey retrieves the publishable gateway key
func (g *RazorpayGateway) FetchKey(ctx context.Context) (string, error) {
	var resp struct {
		Key string `json:"key"`
	}
	if err := g.client.Get(ctx, "/api/payment/razorpay-key", &resp); err != nil {
		return "", fmt.Errorf("failed to fetch gateway key: %w", err)
	}
	if resp.Key == "" {
		return "", fmt.Errorf("backend returned an empty gateway key")
	}
	return resp.Key, nil
}

// CreateOrder creates a gateway order for the given amount
func (g *RazorpayGateway) CreateOrder(ctx context.Context, amount float64) (*GatewayOrder, error) {
	req := struct {
		Amount float64 `json:"amount"`
	}{Amount: amount}

	var order GatewayOrder
	if err := g.client.Post(ctx, "/api/payment/razorpay-order", req, &order); err != nil {
		return nil, fmt.Errorf("failed to create gateway order: %w", err)
	}
	if order.ID == "" {
		return nil, fmt.Errorf("backend returned an empty gateway order id")
	}
	return &order, nil
}

// OpenCheckout delegates to the injected opener
func (g *RazorpayGateway) OpenCheckout(ctx context.Context, opts CheckoutOptions) (*Completion, error) {
	if g.opener == nil {
		return nil, fmt.Errorf("no checkout opener configured")
	}
	return g.opener(ctx, opts)
}
