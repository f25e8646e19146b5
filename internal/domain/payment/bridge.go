// internal/domain/payment/bridge.go
package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
)

// State is the user-visible outcome of one payment attempt
type State string

const (
	// StateSucceeded means the gateway paid and the backend verified the signature
	StateSucceeded State = "succeeded"
	// StateFailed means verification was rejected; the order stays whatever
	// state the backend left it in, no reconciliation is attempted
	StateFailed State = "failed"
	// StateDismissed means the overlay was closed without completing payment;
	// the order stays pending and "pay now" remains available
	StateDismissed State = "dismissed"
)

// Result reports how a payment attempt ended
type Result struct {
	State   State
	Message string
}

// verifyRequest is the backend's payment verification payload
type verifyRequest struct {
	GatewayOrderID   string  `json:"razorpay_order_id"`
	GatewayPaymentID string  `json:"razorpay_payment_id"`
	GatewaySignature string  `json:"razorpay_signature"`
	OrderID          int64   `json:"orderId"`
	Amount           float64 `json:"amount"`
}

// verifyResponse is the backend's verification result
type verifyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Bridge brokers a single payment attempt through the injected gateway.
// Any network failure before the overlay opens aborts the whole attempt;
// nothing is retried.
type Bridge struct {
	gateway Gateway
	client  *api.Client
	config  config.PaymentConfig
	logger  *logrus.Logger
}

// NewBridge creates a payment bridge over a gateway
func NewBridge(gateway Gateway, client *api.Client, cfg config.PaymentConfig, logger *logrus.Logger) *Bridge {
	return &Bridge{
		gateway: gateway,
		client:  client,
		config:  cfg,
		logger:  logger,
	}
}

// Pay runs the full payment protocol for one session: key fetch, gateway
// order creation, checkout overlay, verification. The session is not reused
// after Pay returns.
func (b *Bridge) Pay(ctx context.Context, session Session) (*Result, error) {
	if err := validateSession(session); err != nil {
		return nil, err
	}

	key, err := b.gateway.FetchKey(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment aborted: %w", err)
	}

	gatewayOrder, err := b.gateway.CreateOrder(ctx, session.Amount)
	if err != nil {
		return nil, fmt.Errorf("payment aborted: %w", err)
	}

	opts := CheckoutOptions{
		Key:         key,
		Amount:      gatewayOrder.Amount,
		Currency:    gatewayOrder.Currency,
		Name:        b.config.CheckoutName,
		Description: fmt.Sprintf("Order #%d", session.OrderID),
		OrderID:     gatewayOrder.ID,
		Prefill: Prefill{
			Name:    session.Name,
			Email:   session.Email,
			Contact: session.Phone,
		},
		ThemeColor: b.config.ThemeColor,
	}
	if opts.Currency == "" {
		opts.Currency = b.config.Currency
	}

	completion, err := b.gateway.OpenCheckout(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("payment aborted: %w", err)
	}
	if completion == nil {
		// Overlay dismissed; no callback ever fires. The order is left
		// pending and the user pays later from the order list.
		b.logger.WithField("order_id", session.OrderID).Info("Checkout dismissed without payment")
		return &Result{State: StateDismissed}, nil
	}

	return b.verify(ctx, session, completion)
}

// verify posts the completion callback payload to the verification endpoint
func (b *Bridge) verify(ctx context.Context, session Session, completion *Completion) (*Result, error) {
	req := verifyRequest{
		GatewayOrderID:   completion.GatewayOrderID,
		GatewayPaymentID: completion.GatewayPaymentID,
		GatewaySignature: completion.GatewaySignature,
		OrderID:          session.OrderID,
		Amount:           session.Amount,
	}

	var resp verifyResponse
	if err := b.client.Post(ctx, "/api/payment/verify-payment", req, &resp); err != nil {
		return nil, fmt.Errorf("payment verification request failed: %w", err)
	}

	if !resp.Success {
		message := resp.Message
		if message == "" {
			message = "Payment verification failed"
		}
		b.logger.WithFields(logrus.Fields{
			"order_id": session.OrderID,
			"message":  message,
		}).Warn("Payment verification rejected")
		return &Result{State: StateFailed, Message: message}, nil
	}

	// Short fixed pause before returning, matching the confirmation screen's
	// redirect delay. Not a retry window.
	select {
	case <-time.After(b.config.SuccessDelay):
	case <-ctx.Done():
	}

	b.logger.WithField("order_id", session.OrderID).Info("Payment verified")
	return &Result{State: StateSucceeded, Message: resp.Message}, nil
}

func validateSession(session Session) error {
	if session.Amount <= 0 {
		return fmt.Errorf("invalid payment session: amount must be positive")
	}
	if session.OrderID == 0 {
		return fmt.Errorf("invalid payment session: order id is required")
	}
	if session.Name == "" {
		return fmt.Errorf("invalid payment session: customer name is required")
	}
	return nil
}
