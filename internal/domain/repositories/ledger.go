package repositories

import (
	"context"
	"time"

	"muza-life.backend/internal/domain/entities"
)

// VerificationLedger is the transient store mapping a claimant email to its
// pending one-time code and the order it authorizes. At most one live entry
// exists per email; Issue overwrites any prior entry (resend affordance).
type VerificationLedger interface {
	Issue(ctx context.Context, email, code string, intent *entities.OrderIntent, ttl time.Duration) error
	// Consume atomically checks the supplied code and deletes the entry on
	// match, returning the embedded intent exactly once. Errors:
	// ErrCodeNotFound (no entry), ErrCodeExpired (entry lapsed, deleted),
	// ErrCodeMismatch (entry retained for retry).
	Consume(ctx context.Context, email, code string) (*entities.OrderIntent, error)
}

// AuthorizedOrderStore holds orders whose code was verified, keyed by order
// id, until the gateway settles them.
type AuthorizedOrderStore interface {
	Put(ctx context.Context, order *entities.AuthorizedOrder) error
	// Take atomically removes and returns the order; ErrNotFound when the
	// order is unknown or already taken, which makes settlement idempotent.
	Take(ctx context.Context, orderID string) (*entities.AuthorizedOrder, error)
}
