// internal/domain/payment/gateway.go
package payment

import "context"

// Session carries one payment attempt from the order composer or the
// lifecycle viewer's "pay now" action into the bridge. It is transient and
// discarded once the attempt completes.
type Session struct {
	Amount  float64
	OrderID int64
	Name    string
	Email   string
	Phone   string
}

// GatewayOrder is the gateway-side order created for a payment attempt
type GatewayOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Prefill pre-populates the checkout overlay's contact fields
type Prefill struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
}

// CheckoutOptions configures the third-party checkout overlay
type CheckoutOptions struct {
	Key         string  `json:"key"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	Prefill     Prefill `json:"prefill"`
	ThemeColor  string  `json:"theme_color"`
}

// Completion is the overlay's completion callback payload
type Completion struct {
	GatewayOrderID   string `json:"razorpay_order_id"`
	GatewayPaymentID string `json:"razorpay_payment_id"`
	GatewaySignature string `json:"razorpay_signature"`
}

// Gateway is the payment-gateway capability injected into the bridge.
// OpenCheckout hands control to the external overlay and blocks until the
// completion callback fires; it returns (nil, nil) when the user dismisses
// the overlay without paying.
type Gateway interface {
	FetchKey(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, amount float64) (*GatewayOrder, error)
	OpenCheckout(ctx context.Context, opts CheckoutOptions) (*Completion, error)
}
