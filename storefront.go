// storefront.go

// Package storefront is a typed Go client for the storefront REST backend.
// It owns the client-side state the browser app keeps: the session, the
// cart/wishlist mirrors and the order checkout flow.
package storefront

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/your-org/storefront-client/internal/api"
	"github.com/your-org/storefront-client/internal/config"
	"github.com/your-org/storefront-client/internal/domain/admin"
	"github.com/your-org/storefront-client/internal/domain/auth"
	"github.com/your-org/storefront-client/internal/domain/cart"
	"github.com/your-org/storefront-client/internal/domain/catalog"
	"github.com/your-org/storefront-client/internal/domain/order"
	"github.com/your-org/storefront-client/internal/domain/payment"
	"github.com/your-org/storefront-client/internal/domain/profile"
	"github.com/your-org/storefront-client/internal/pkg/invoice"
	"github.com/your-org/storefront-client/internal/session"
)

// Client bundles every service of the storefront backend behind one handle
type Client struct {
	Auth     *auth.Service
	Catalog  *catalog.Service
	Cart     *cart.Controller
	Profile  *profile.Service
	Orders   *order.Viewer
	Composer *order.Composer
	Payments *payment.Bridge
	Admin    *admin.Service
	Invoices *invoice.Service
	Sessions *session.Manager

	storage session.Storage
}

// Options tunes client construction beyond what configuration carries
type Options struct {
	// CheckoutOpener presents the payment checkout to the user. Required for
	// the online payment path; COD works without it.
	CheckoutOpener payment.CheckoutOpener
}

// New wires a client against the configured backend
func New(cfg *config.Config, logger *logrus.Logger, opts Options) (*Client, error) {
	storage, err := newStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session storage: %w", err)
	}

	apiClient := api.NewClient(cfg, logger)
	sessions := session.NewManager(storage)
	carts := cart.NewController(apiClient, sessions, logger)
	profiles := profile.NewService(apiClient, logger)
	gateway := payment.NewRazorpayGateway(apiClient, opts.CheckoutOpener)

	return &Client{
		Auth:     auth.NewService(apiClient, sessions, logger),
		Catalog:  catalog.NewService(apiClient, logger),
		Cart:     carts,
		Profile:  profiles,
		Orders:   order.NewViewer(apiClient, logger),
		Composer: order.NewComposer(apiClient, carts, profiles, logger),
		Payments: payment.NewBridge(gateway, apiClient, cfg.Payment, logger),
		Admin:    admin.NewService(apiClient, logger),
		Invoices: invoice.NewService(cfg),
		Sessions: sessions,
		storage:  storage,
	}, nil
}

// Close releases the session storage backend
func (c *Client) Close() error {
	if closer, ok := c.storage.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}

func newStorage(cfg *config.Config) (session.Storage, error) {
	switch cfg.Session.Backend {
	case "memory":
		return session.NewMemoryStorage(), nil
	case "file":
		return session.NewFileStorage(cfg.Session.FilePath), nil
	case "redis":
		return session.NewRedisStorage(cfg)
	default:
		return nil, fmt.Errorf("unknown session backend: %s", cfg.Session.Backend)
	}
}
