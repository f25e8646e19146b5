// internal/domain/cart/controller.go
package cart

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/session"
)

// Controller synchronizes the user's cart and wishlist with the backend.
// Each mutation issues exactly one REST call; the local membership mirror is
// advanced by a reducer only on success, and left unchanged on failure.
// No mutation is retried.
type Controller struct {
	client   *api.Client
	sessions *session.Manager
	logger   *logrus.Logger
}

// NewController creates a new cart/wishlist controller
func NewController(client *api.Client, sessions *session.Manager, logger *logrus.Logger) *Controller {
	return &Controller{
		client:   client,
		sessions: sessions,
		logger:   logger,
	}
}

// cartMutationRequest is the backend's add/remove cart payload
type cartMutationRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId,omitempty"`
	Quantity  int    `json:"quantity,omitempty"`
}

// cartBulkDeleteRequest removes several cart lines in one call
type cartBulkDeleteRequest struct {
	UserID     string  `json:"userId"`
	ProductIDs []int64 `json:"productIds"`
}

// wishlistMutationRequest is the backend's add/remove wishlist payload
type wishlistMutationRequest struct {
	UserID    string `json:"userId"`
	ProductID int64  `json:"productId"`
}

// GetCart retrieves the user's cart and refreshes the local membership mirror
func (c *Controller) GetCart(ctx context.Context, sess *session.Session) ([]CartItem, error) {
	var items []CartItem
	if err := c.client.Get(ctx, "/api/cart/"+sess.UserID, &items); err != nil {
		return nil, fmt.Errorf("failed to retrieve cart: %w", err)
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ProductID
	}
	if err := c.sessions.SaveCartSnapshot(ctx, ids); err != nil {
		c.logger.WithError(err).Warn("Failed to cache cart snapshot")
	}

	return items, nil
}

// AddToCart adds a product to the cart with the given quantity
func (c *Controller) AddToCart(ctx context.Context, sess *session.Session, productID int64, quantity int) error {
	req := cartMutationRequest{UserID: sess.UserID, ProductID: productID, Quantity: quantity}
	if err := c.client.Post(ctx, "/api/cart", req, nil); err != nil {
		return fmt.Errorf("failed to add product %d to cart: %w", productID, err)
	}

	c.applyCartTransition(ctx, func(set Membership) Membership {
		return applyAdd(set, productID)
	})
	return nil
}

// RemoveFromCart removes one product from the cart
func (c *Controller) RemoveFromCart(ctx context.Context, sess *session.Session, productID int64) error {
	req := cartMutationRequest{UserID: sess.UserID, ProductID: productID}
	if err := c.client.Delete(ctx, "/api/cart", req, nil); err != nil {
		return fmt.Errorf("failed to remove product %d from cart: %w", productID, err)
	}

	c.applyCartTransition(ctx, func(set Membership) Membership {
		return applyRemove(set, productID)
	})
	return nil
}

// RemoveFromCartBulk removes several products in one call. The order composer
// uses it to clear ordered items after a confirmed placement.
func (c *Controller) RemoveFromCartBulk(ctx context.Context, sess *session.Session, productIDs []int64) error {
	if len(productIDs) == 0 {
		return nil
	}

	req := cartBulkDeleteRequest{UserID: sess.UserID, ProductIDs: productIDs}
	if err := c.client.Delete(ctx, "/api/cart", req, nil); err != nil {
		return fmt.Errorf("failed to remove ordered items from cart: %w", err)
	}

	c.applyCartTransition(ctx, func(set Membership) Membership {
		return applyRemoveAll(set, productIDs)
	})
	return nil
}

// InCart reports whether the product is in the locally mirrored cart set
func (c *Controller) InCart(ctx context.Context, productID int64) bool {
	ids, err := c.sessions.LoadCartSnapshot(ctx)
	if err != nil {
		return false
	}
	return NewMembership(ids).Contains(productID)
}

// GetWishlist retrieves the user's wishlist and refreshes the local mirror
func (c *Controller) GetWishlist(ctx context.Context, sess *session.Session) ([]WishlistItem, error) {
	var items []WishlistItem
	if err := c.client.Get(ctx, "/api/wishlist/"+sess.UserID, &items); err != nil {
		return nil, fmt.Errorf("failed to retrieve wishlist: %w", err)
	}

	ids := make([]int64, len(items))
	for i, item := range items {
		ids[i] = item.ID
	}
	if err := c.sessions.SaveWishlistSnapshot(ctx, ids); err != nil {
		c.logger.WithError(err).Warn("Failed to cache wishlist snapshot")
	}

	return items, nil
}

// ToggleWishlist flips wishlist membership for a product: present becomes
// absent and vice versa. Returns the resulting membership. Toggling twice
// restores the original state.
func (c *Controller) ToggleWishlist(ctx context.Context, sess *session.Session, productID int64) (bool, error) {
	ids, err := c.sessions.LoadWishlistSnapshot(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load wishlist state: %w", err)
	}
	set := NewMembership(ids)
	wishlisted := set.Contains(productID)

	req := wishlistMutationRequest{UserID: sess.UserID, ProductID: productID}
	if wishlisted {
		err = c.client.Delete(ctx, "/api/wishlist", req, nil)
	} else {
		err = c.client.Post(ctx, "/api/wishlist", req, nil)
	}
	if err != nil {
		return wishlisted, fmt.Errorf("failed to toggle wishlist for product %d: %w", productID, err)
	}

	if wishlisted {
		set = applyRemove(set, productID)
	} else {
		set = applyAdd(set, productID)
	}
	if err := c.sessions.SaveWishlistSnapshot(ctx, set.IDs()); err != nil {
		c.logger.WithError(err).Warn("Failed to cache wishlist snapshot")
	}

	return !wishlisted, nil
}

// RemoveFromWishlist removes one product from the wishlist
func (c *Controller) RemoveFromWishlist(ctx context.Context, sess *session.Session, productID int64) error {
	req := wishlistMutationRequest{UserID: sess.UserID, ProductID: productID}
	if err := c.client.Delete(ctx, "/api/wishlist", req, nil); err != nil {
		return fmt.Errorf("failed to remove product %d from wishlist: %w", productID, err)
	}

	ids, err := c.sessions.LoadWishlistSnapshot(ctx)
	if err != nil {
		return nil
	}
	set := applyRemove(NewMembership(ids), productID)
	if err := c.sessions.SaveWishlistSnapshot(ctx, set.IDs()); err != nil {
		c.logger.WithError(err).Warn("Failed to cache wishlist snapshot")
	}
	return nil
}

// InWishlist reports whether the product is in the locally mirrored wishlist
func (c *Controller) InWishlist(ctx context.Context, productID int64) bool {
	ids, err := c.sessions.LoadWishlistSnapshot(ctx)
	if err != nil {
		return false
	}
	return NewMembership(ids).Contains(productID)
}

// applyCartTransition loads the cart mirror, applies a reducer and saves it
func (c *Controller) applyCartTransition(ctx context.Context, transition func(Membership) Membership) {
	ids, err := c.sessions.LoadCartSnapshot(ctx)
	if err != nil {
		c.logger.WithError(err).Warn("Failed to load cart snapshot")
		return
	}
	set := transition(NewMembership(ids))
	if err := c.sessions.SaveCartSnapshot(ctx, set.IDs()); err != nil {
		c.logger.WithError(err).Warn("Failed to cache cart snapshot")
	}
}
