// internal/domain/admin/orders.go
package admin

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/session"
)

// ListOrders returns every order with its line items. The backend serves
// these as a bare array.
func (s *Service) ListOrders(ctx context.Context, sess *session.Session) ([]order.Order, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var orders []order.Order
	if err := s.client.Get(ctx, "/api/admin/orders/orders-with-items", &orders); err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// ListPendingOrders returns orders still awaiting fulfilment
func (s *Service) ListPendingOrders(ctx context.Context, sess *session.Session) ([]order.Order, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	var orders []order.Order
	if err := s.client.Get(ctx, "/api/admin/orders/pending", &orders); err != nil {
		return nil, fmt.Errorf("failed to list pending orders: %w", err)
	}
	return orders, nil
}

// StatusCounts returns how many orders sit in each fulfilment state
func (s *Service) StatusCounts(ctx context.Context, sess *session.Session) (map[string]int, error) {
	if err := requireAdmin(sess); err != nil {
		return nil, err
	}
	counts := map[string]int{}
	if err := s.client.Get(ctx, "/api/admin/orders/stats", &counts); err != nil {
		return nil, fmt.Errorf("failed to fetch order stats: %w", err)
	}
	return counts, nil
}

// StatusUpdateRequest carries a fulfilment state change, optionally with
// courier details once the order ships
type StatusUpdateRequest struct {
	Status             order.Status `json:"status"`
	TrackingID         string       `json:"tracking_id,omitempty"`
	EstimatedDelivery  string       `json:"estimated_delivery,omitempty"`
	CourierName        string       `json:"courier_name,omitempty"`
	CourierTrackingURL string       `json:"courier_tracking_url,omitempty"`
}

// UpdateOrderStatus moves an order through the fulfilment pipeline
func (s *Service) UpdateOrderStatus(ctx context.Context, sess *session.Session, orderID int64, req *StatusUpdateRequest) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/orders/%d/status", orderID)
	if err := s.client.Put(ctx, path, req, nil); err != nil {
		return fmt.Errorf("failed to update status of order %d: %w", orderID, err)
	}
	s.logger.WithFields(logrus.Fields{
		"order_id": orderID,
		"status":   req.Status,
	}).Info("Order status updated")
	return nil
}

type paymentStatusRequest struct {
	PaymentStatus order.PaymentStatus `json:"payment_status"`
}

// UpdatePaymentStatus marks an order paid or unpaid, typically after a
// cash-on-delivery handover
func (s *Service) UpdatePaymentStatus(ctx context.Context, sess *session.Session, orderID int64, status order.PaymentStatus) error {
	if err := requireAdmin(sess); err != nil {
		return err
	}
	path := fmt.Sprintf("/api/admin/orders/%d/payment-status", orderID)
	if err := s.client.Put(ctx, path, paymentStatusRequest{PaymentStatus: status}, nil); err != nil {
		return fmt.Errorf("failed to update payment status of order %d: %w", orderID, err)
	}
	return nil
}
