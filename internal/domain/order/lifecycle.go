// internal/domain/order/lifecycle.go
package order

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/session"
)

// PageSize is the number of orders shown per history page
const PageSize = 5

var (
	ErrNotCancellable = errors.New("order can no longer be cancelled")
	ErrTrackingFailed = errors.New("tracking lookup failed")
)

// Viewer reads and manipulates a user's order history
type Viewer struct {
	client *api.Client
	logger *logrus.Logger
}

// NewViewer creates a new order history viewer
func NewViewer(client *api.Client, logger *logrus.Logger) *Viewer {
	return &Viewer{client: client, logger: logger}
}

type listOrdersResponse struct {
	Orders []Order `json:"orders"`
}

// List fetches all orders for the session's user, newest first
func (v *Viewer) List(ctx context.Context, sess *session.Session) ([]Order, error) {
	var resp listOrdersResponse
	path := fmt.Sprintf("/api/order/user/%s", sess.UserID)
	if err := v.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", err)
	}

	orders := resp.Orders
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
	return orders, nil
}

// FilterByStatus keeps orders matching the status; an empty status keeps all
func FilterByStatus(orders []Order, status Status) []Order {
	if status == "" {
		return orders
	}
	var filtered []Order
	for _, o := range orders {
		if o.Status == status {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// Paginate slices one page out of the order list. Pages are 1-based; a page
// past the end returns an empty slice.
func Paginate(orders []Order, page int) []Order {
	if page < 1 {
		page = 1
	}
	start := (page - 1) * PageSize
	if start >= len(orders) {
		return nil
	}
	end := start + PageSize
	if end > len(orders) {
		end = len(orders)
	}
	return orders[start:end]
}

// PageCount is the number of history pages the list spans
func PageCount(orders []Order) int {
	if len(orders) == 0 {
		return 1
	}
	return (len(orders) + PageSize - 1) / PageSize
}

// Cancel cancels a pending order on the backend, then applies the same
// transition to the local copy so the view updates without a refetch
func (v *Viewer) Cancel(ctx context.Context, o *Order) error {
	if !o.Can(ActionCancel) {
		return ErrNotCancellable
	}

	path := fmt.Sprintf("/api/order/%d/cancel", o.ID)
	if err := v.client.Patch(ctx, path, nil, nil); err != nil {
		return fmt.Errorf("failed to cancel order %d: %w", o.ID, err)
	}

	ApplyCancel(o)
	v.logger.WithField("order_id", o.ID).Info("Order cancelled")
	return nil
}

// ApplyCancel is the local counterpart of a backend cancellation
func ApplyCancel(o *Order) {
	o.Status = StatusCanceled
}

type trackResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Order   *Order `json:"order"`
}

// Track looks an order up by its tracking identifier. The lookup is public
// and does not require a session.
func (v *Viewer) Track(ctx context.Context, trackingID string) (*Order, error) {
	var resp trackResponse
	path := fmt.Sprintf("/api/order/track/%s", trackingID)
	if err := v.client.Get(ctx, path, &resp); err != nil {
		return nil, fmt.Errorf("failed to track order: %w", err)
	}
	if !resp.Success || resp.Order == nil {
		if resp.Message != "" {
			return nil, fmt.Errorf("%w: %s", ErrTrackingFailed, resp.Message)
		}
		return nil, ErrTrackingFailed
	}
	return resp.Order, nil
}

type emailInvoiceRequest struct {
	OrderID int64  `json:"orderId"`
	UserID  string `json:"userId"`
}

// EmailInvoice asks the backend to mail the order's invoice to the user
func (v *Viewer) EmailInvoice(ctx context.Context, sess *session.Session, orderID int64) error {
	req := emailInvoiceRequest{OrderID: orderID, UserID: sess.UserID}
	if err := v.client.Post(ctx, "/api/order/email-invoice", req, nil); err != nil {
		return fmt.Errorf("failed to email invoice for order %d: %w", orderID, err)
	}
	return nil
}

// ReorderDraft turns a cancelled order into a fresh entry context. Lines
// whose product is known to be out of stock are dropped; the action table
// only offers reorder when every line is available, so normally none are.
func ReorderDraft(o *Order) Entry {
	var items []LineItem
	for _, item := range o.Items {
		if !item.Available() {
			continue
		}
		items = append(items, LineItem{
			ProductID:    item.ProductID,
			Quantity:     item.Quantity,
			Price:        item.Price,
			ProductName:  item.ProductName,
			ProductImage: item.ProductImage,
		})
	}
	return Entry{ReorderItems: items}
}
