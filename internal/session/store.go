// Package session manages the cookie-addressed login sessions. The store
// is an injectable capability so the in-memory and redis backends can be
// swapped without touching handlers or services.
package session

import (
	"context"
	"time"
)

// Session is the identity a valid token resolves to.
type Session struct {
	UserID   uint   `json:"user_id"`
	UserName string `json:"user_name"`
}

// Store maps opaque tokens to sessions with TTL expiry. Resolve returns
// (nil, nil) for an absent or expired token.
type Store interface {
	Create(ctx context.Context, userID uint, userName string) (string, error)
	Resolve(ctx context.Context, token string) (*Session, error)
	Destroy(ctx context.Context, token string) error
}

// DefaultTTL matches the 24-hour session cookie lifetime.
const DefaultTTL = 24 * time.Hour
