// internal/session/session.go
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

const (
	keyUserID           = "userId"
	keyIsAdmin          = "isAdmin"
	keyCartSnapshot     = "cartSnapshot"
	keyWishlistSnapshot = "wishlistSnapshot"
)

// ErrNotLoggedIn is returned when no session exists in storage
var ErrNotLoggedIn = errors.New("no active session")

// Session identifies the logged-in user. It is created on login and destroyed
// on logout; components receive it explicitly instead of reading ambient state.
type Session struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// Manager owns the session lifecycle over a Storage backend
type Manager struct {
	storage Storage
}

// NewManager creates a session manager over the given storage
func NewManager(storage Storage) *Manager {
	return &Manager{storage: storage}
}

// Create persists a new session. It replaces any existing one, dropping the
// previous user's cached snapshots.
func (m *Manager) Create(ctx context.Context, userID string, isAdmin bool) (*Session, error) {
	if userID == "" {
		return nil, fmt.Errorf("user id is required to create a session")
	}

	if err := m.storage.Delete(ctx, keyCartSnapshot, keyWishlistSnapshot); err != nil {
		return nil, fmt.Errorf("failed to clear stale snapshots: %w", err)
	}
	if err := m.storage.Set(ctx, keyUserID, userID); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}
	if err := m.storage.Set(ctx, keyIsAdmin, strconv.FormatBool(isAdmin)); err != nil {
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return &Session{UserID: userID, IsAdmin: isAdmin}, nil
}

// Current loads the persisted session, or ErrNotLoggedIn if none exists
func (m *Manager) Current(ctx context.Context) (*Session, error) {
	userID, err := m.storage.Get(ctx, keyUserID)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, ErrNotLoggedIn
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	isAdmin := false
	if raw, err := m.storage.Get(ctx, keyIsAdmin); err == nil {
		isAdmin, _ = strconv.ParseBool(raw)
	}

	return &Session{UserID: userID, IsAdmin: isAdmin}, nil
}

// Destroy clears the session and its cached snapshots
func (m *Manager) Destroy(ctx context.Context) error {
	if err := m.storage.Delete(ctx, keyUserID, keyIsAdmin, keyCartSnapshot, keyWishlistSnapshot); err != nil {
		return fmt.Errorf("failed to destroy session: %w", err)
	}
	return nil
}

// SaveCartSnapshot caches the set of product ids currently in the cart
func (m *Manager) SaveCartSnapshot(ctx context.Context, productIDs []int64) error {
	return m.saveSnapshot(ctx, keyCartSnapshot, productIDs)
}

// LoadCartSnapshot returns the cached cart product ids, empty when absent
func (m *Manager) LoadCartSnapshot(ctx context.Context) ([]int64, error) {
	return m.loadSnapshot(ctx, keyCartSnapshot)
}

// SaveWishlistSnapshot caches the set of wishlisted product ids
func (m *Manager) SaveWishlistSnapshot(ctx context.Context, productIDs []int64) error {
	return m.saveSnapshot(ctx, keyWishlistSnapshot, productIDs)
}

// LoadWishlistSnapshot returns the cached wishlist product ids, empty when absent
func (m *Manager) LoadWishlistSnapshot(ctx context.Context) ([]int64, error) {
	return m.loadSnapshot(ctx, keyWishlistSnapshot)
}

func (m *Manager) saveSnapshot(ctx context.Context, key string, productIDs []int64) error {
	data, err := json.Marshal(productIDs)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	if err := m.storage.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to persist snapshot: %w", err)
	}
	return nil
}

func (m *Manager) loadSnapshot(ctx context.Context, key string) ([]int64, error) {
	raw, err := m.storage.Get(ctx, key)
	if errors.Is(err, ErrKeyNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load snapshot: %w", err)
	}

	var productIDs []int64
	if err := json.Unmarshal([]byte(raw), &productIDs); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot: %w", err)
	}
	return productIDs, nil
}
