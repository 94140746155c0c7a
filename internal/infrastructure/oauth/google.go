package oauth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v3/userinfo"

// GoogleProvider introspects Google-issued access tokens
type GoogleProvider struct {
	httpClient *http.Client
	baseURL    string
}

// NewGoogleProvider creates a new Google identity provider
func NewGoogleProvider(timeout time.Duration) *GoogleProvider {
	return &GoogleProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    googleUserInfoURL,
	}
}

// Introspect resolves an access token to the Google identity it asserts
func (p *GoogleProvider) Introspect(ctx context.Context, accessToken string) (*entities.ExternalIdentity, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, mapTransportError(err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, domainerrors.ErrUnauthorized
	case resp.StatusCode != http.StatusOK:
		return nil, domainerrors.ErrUpstreamUnavailable
	}

	var body struct {
		Sub     string `json:"sub"`
		Email   string `json:"email"`
		Name    string `json:"name"`
		Picture string `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if body.Sub == "" || body.Email == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	return &entities.ExternalIdentity{
		ProviderID: body.Sub,
		Email:      body.Email,
		Name:       body.Name,
		AvatarURL:  body.Picture,
	}, nil
}

func mapTransportError(err error) error {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) && netErr.Timeout() {
		return domainerrors.ErrUpstreamTimeout
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ErrUpstreamTimeout
	}
	return domainerrors.ErrUpstreamUnavailable
}
