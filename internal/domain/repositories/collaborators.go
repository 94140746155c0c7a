package repositories

import (
	"context"

	"muza-life.backend/internal/domain/entities"
)

// EmailSender delivers transactional email through an external provider
type EmailSender interface {
	SendVerificationCode(ctx context.Context, toEmail, code string) error
}

// IdentityProvider introspects a provider-issued access token and returns
// the external identity it asserts
type IdentityProvider interface {
	Introspect(ctx context.Context, accessToken string) (*entities.ExternalIdentity, error)
}
