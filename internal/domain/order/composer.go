// internal/domain/order/composer.go
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/payment"
	"github.com/your-org/storefront-client/internal/domain/profile"
	"github.com/your-org/storefront-client/internal/session"
)

// Client-side precondition failures, blocked before any request is sent
var (
	ErrNoItems   = errors.New("no items selected for the order")
	ErrNoAddress = errors.New("no delivery address selected")
)

// LineItem is one line of an order draft
type LineItem struct {
	ProductID    int64   `json:"productId" validate:"required"`
	Quantity     int     `json:"quantity" validate:"gt=0"`
	Price        float64 `json:"price" validate:"gt=0"`
	ProductName  string  `json:"productName"`
	ProductImage string  `json:"productImage"`
}

// LineItemFromCartItem converts a cart line into a draft line
func LineItemFromCartItem(item cart.CartItem) LineItem {
	return LineItem{
		ProductID:    item.ProductID,
		Quantity:     item.Quantity,
		Price:        item.Price,
		ProductName:  item.Name,
		ProductImage: item.ImageURL,
	}
}

// BuyNow is a single product passed via navigation parameters
type BuyNow struct {
	ProductID    int64
	Price        float64
	Quantity     int
	ProductName  string
	ProductImage string
}

// Entry describes which context the draft's items come from: a cart
// selection, a reorder template, or a single buy-now product. Wishlist
// buy-now arrives as a one-item cart selection with FromWishlist set.
type Entry struct {
	FromCart     bool
	FromWishlist bool
	CartItems    []LineItem
	ReorderItems []LineItem
	BuyNow       *BuyNow
}

// Draft is the transient order assembled for submission. TotalPrice is
// always recomputed from the items, never set by the caller.
type Draft struct {
	Items         []LineItem
	Address       string
	PaymentMethod PaymentMethod
	TotalPrice    float64
}

// placeOrderRequest is the backend's order placement payload
type placeOrderRequest struct {
	UserID        string        `json:"userId" validate:"required"`
	Name          string        `json:"name" validate:"required"`
	Phone         string        `json:"phone"`
	Email         string        `json:"email"`
	Address       string        `json:"address" validate:"required"`
	PaymentMethod PaymentMethod `json:"paymentMethod" validate:"required"`
	TotalPrice    float64       `json:"totalPrice" validate:"gt=0"`
	Items         []LineItem    `json:"items" validate:"required,min=1,dive"`
}

// placeOrderResponse is the backend's placement result
type placeOrderResponse struct {
	OrderID int64  `json:"orderId"`
	Message string `json:"message"`
}

// PlaceParams carries one placement attempt into the composer
type PlaceParams struct {
	Entry         Entry
	Address       string
	PaymentMethod PaymentMethod
	// NewAddress marks Address as newly typed; it is persisted as a saved
	// address only after the order is confirmed, never before.
	NewAddress bool
}

// Placement is the outcome of a successful placement. For the online payment
// path it carries the session the payment bridge needs; cart and wishlist are
// deliberately not cleaned up on that path.
type Placement struct {
	OrderID         int64
	PaymentRequired bool
	Payment         *payment.Session
}

// Composer assembles order drafts and submits them
type Composer struct {
	client   *api.Client
	carts    *cart.Controller
	profiles *profile.Service
	validate *validator.Validate
	logger   *logrus.Logger
}

// NewComposer creates a new order composer
func NewComposer(client *api.Client, carts *cart.Controller, profiles *profile.Service, logger *logrus.Logger) *Composer {
	return &Composer{
		client:   client,
		carts:    carts,
		profiles: profiles,
		validate: validator.New(),
		logger:   logger,
	}
}

// ResolveItems produces the canonical line item list for an entry context.
// Precedence: cart selection, then reorder template, then buy-now synthesis.
func (c *Composer) ResolveItems(entry Entry) ([]LineItem, error) {
	switch {
	case len(entry.CartItems) > 0:
		return entry.CartItems, nil
	case len(entry.ReorderItems) > 0:
		return entry.ReorderItems, nil
	case entry.BuyNow != nil && entry.BuyNow.Price > 0:
		quantity := entry.BuyNow.Quantity
		if quantity < 1 {
			quantity = 1
		}
		name := entry.BuyNow.ProductName
		if name == "" {
			name = fmt.Sprintf("Product %d", entry.BuyNow.ProductID)
		}
		return []LineItem{{
			ProductID:    entry.BuyNow.ProductID,
			Quantity:     quantity,
			Price:        entry.BuyNow.Price,
			ProductName:  name,
			ProductImage: entry.BuyNow.ProductImage,
		}}, nil
	default:
		return nil, ErrNoItems
	}
}

// ComputeTotal sums price*quantity over the items, rounded to 2 decimals
func ComputeTotal(items []LineItem) float64 {
	total := decimal.Zero
	for _, item := range items {
		line := decimal.NewFromFloat(item.Price).Mul(decimal.NewFromInt(int64(item.Quantity)))
		total = total.Add(line)
	}
	result, _ := total.Round(2).Float64()
	return result
}

// BuildDraft resolves an entry into a draft with a recomputed total
func (c *Composer) BuildDraft(entry Entry, address string, method PaymentMethod) (*Draft, error) {
	items, err := c.ResolveItems(entry)
	if err != nil {
		return nil, err
	}
	return &Draft{
		Items:         items,
		Address:       address,
		PaymentMethod: method,
		TotalPrice:    ComputeTotal(items),
	}, nil
}

// AddressOptions is the set the user picks a delivery address from: the
// profile default, saved addresses and at most one newly typed address.
func AddressOptions(prof *profile.Profile, saved []string, typed string) []string {
	var options []string
	seen := make(map[string]bool)

	appendOption := func(address string) {
		if address == "" || seen[address] {
			return
		}
		seen[address] = true
		options = append(options, address)
	}

	if prof != nil {
		appendOption(prof.Address)
	}
	for _, address := range saved {
		appendOption(address)
	}
	appendOption(typed)

	return options
}

// Place submits one order. On success the COD path cleans up the originating
// cart or wishlist entries; the online payment path performs no cleanup and
// instead hands a payment session back for the bridge. On failure nothing is
// mutated and the draft stays editable.
func (c *Composer) Place(ctx context.Context, sess *session.Session, params PlaceParams) (*Placement, error) {
	if params.Address == "" {
		return nil, ErrNoAddress
	}

	draft, err := c.BuildDraft(params.Entry, params.Address, params.PaymentMethod)
	if err != nil {
		return nil, err
	}

	prof, err := c.profiles.Get(ctx, sess)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile for order: %w", err)
	}

	req := placeOrderRequest{
		UserID:        sess.UserID,
		Name:          prof.FullName,
		Phone:         prof.Phone,
		Email:         prof.Email,
		Address:       draft.Address,
		PaymentMethod: draft.PaymentMethod,
		TotalPrice:    draft.TotalPrice,
		Items:         draft.Items,
	}
	if err := c.validate.Struct(&req); err != nil {
		return nil, fmt.Errorf("order draft is incomplete: %w", err)
	}

	var resp placeOrderResponse
	if err := c.client.Post(ctx, "/api/order/place", req, &resp); err != nil {
		return nil, fmt.Errorf("order placement failed: %w", err)
	}

	c.logger.WithFields(logrus.Fields{
		"order_id":    resp.OrderID,
		"total_price": draft.TotalPrice,
		"items":       len(draft.Items),
	}).Info("Order placed")

	// The order is confirmed; a newly typed address may now be saved.
	// Failure here is logged but does not undo the placement.
	if params.NewAddress {
		if err := c.profiles.SaveAddress(ctx, sess, draft.Address); err != nil {
			c.logger.WithError(err).Warn("Failed to save new address after order placement")
		}
	}

	if draft.PaymentMethod == PaymentMethodRazorpay {
		return &Placement{
			OrderID:         resp.OrderID,
			PaymentRequired: true,
			Payment: &payment.Session{
				Amount:  draft.TotalPrice,
				OrderID: resp.OrderID,
				Name:    prof.FullName,
				Email:   prof.Email,
				Phone:   prof.Phone,
			},
		}, nil
	}

	c.cleanupAfterPlacement(ctx, sess, params.Entry, draft.Items)

	return &Placement{OrderID: resp.OrderID}, nil
}

// cleanupAfterPlacement removes ordered items from their origin. Each call is
// independent fire-and-forget; a failure leaves stale cart entries, which the
// backend tolerates.
func (c *Composer) cleanupAfterPlacement(ctx context.Context, sess *session.Session, entry Entry, items []LineItem) {
	if entry.FromCart && !entry.FromWishlist {
		ids := make([]int64, len(items))
		for i, item := range items {
			ids[i] = item.ProductID
		}
		if err := c.carts.RemoveFromCartBulk(ctx, sess, ids); err != nil {
			c.logger.WithError(err).Warn("Failed to clear ordered items from cart")
		}
	}

	if entry.FromWishlist && len(items) == 1 {
		if err := c.carts.RemoveFromWishlist(ctx, sess, items[0].ProductID); err != nil {
			c.logger.WithError(err).Warn("Failed to clear ordered item from wishlist")
		}
	}
}
