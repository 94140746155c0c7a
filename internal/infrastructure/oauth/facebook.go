package oauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

const facebookGraphURL = "https://graph.facebook.com"

// FacebookProvider introspects Facebook-issued access tokens. The token is
// first validated through the app-scoped debug_token endpoint so a token
// minted for another app is rejected before any profile data is read.
type FacebookProvider struct {
	httpClient *http.Client
	baseURL    string
	appID      string
	appSecret  string
}

// NewFacebookProvider creates a new Facebook identity provider
func NewFacebookProvider(appID, appSecret string, timeout time.Duration) *FacebookProvider {
	return &FacebookProvider{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    facebookGraphURL,
		appID:      appID,
		appSecret:  appSecret,
	}
}

// Introspect resolves an access token to the Facebook identity it asserts
func (p *FacebookProvider) Introspect(ctx context.Context, accessToken string) (*entities.ExternalIdentity, error) {
	if err := p.validateToken(ctx, accessToken); err != nil {
		return nil, err
	}
	return p.fetchProfile(ctx, accessToken)
}

func (p *FacebookProvider) validateToken(ctx context.Context, accessToken string) error {
	q := url.Values{}
	q.Set("input_token", accessToken)
	q.Set("access_token", p.appID+"|"+p.appSecret)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/debug_token?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return mapTransportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return domainerrors.ErrUnauthorized
	}

	var body struct {
		Data struct {
			AppID   string `json:"app_id"`
			IsValid bool   `json:"is_valid"`
			UserID  string `json:"user_id"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode debug_token response: %w", err)
	}
	if !body.Data.IsValid || body.Data.AppID != p.appID {
		return domainerrors.ErrUnauthorized
	}
	return nil
}

func (p *FacebookProvider) fetchProfile(ctx context.Context, accessToken string) (*entities.ExternalIdentity, error) {
	q := url.Values{}
	q.Set("fields", "id,name,email,picture.type(large)")
	q.Set("access_token", accessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/me?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

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
		ID      string `json:"id"`
		Name    string `json:"name"`
		Email   string `json:"email"`
		Picture struct {
			Data struct {
				URL string `json:"url"`
			} `json:"data"`
		} `json:"picture"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode profile response: %w", err)
	}
	if body.ID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	// some Facebook accounts expose no email; the usecase decides whether
	// a synthesized address is acceptable
	return &entities.ExternalIdentity{
		ProviderID: body.ID,
		Email:      body.Email,
		Name:       body.Name,
		AvatarURL:  body.Picture.Data.URL,
	}, nil
}
