package usecases

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/url"

	"muza-life.backend/internal/config"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

// CheckoutBuilder produces signed gateway checkout requests and verifies
// gateway callbacks. The request payload is a fixed-order JSON document,
// base64-encoded, with a detached signature over the encoded form; the same
// private key signs both directions.
type CheckoutBuilder struct {
	publicKey  string
	privateKey string
	gatewayURL string
	resultURL  string
	serverURL  string
	sandbox    bool
	signHMAC   bool
}

// checkoutParams is the gateway request document. Field order is part of the
// wire contract: the signature covers the serialized bytes.
type checkoutParams struct {
	Version     string  `json:"version"`
	PublicKey   string  `json:"public_key"`
	Action      string  `json:"action"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	Description string  `json:"description"`
	OrderID     string  `json:"order_id"`
	ResultURL   string  `json:"result_url,omitempty"`
	ServerURL   string  `json:"server_url,omitempty"`
	Sandbox     string  `json:"sandbox,omitempty"`
}

// NewCheckoutBuilder creates a new checkout builder
func NewCheckoutBuilder(cfg config.PaymentConfig, resultURL, serverURL string) *CheckoutBuilder {
	return &CheckoutBuilder{
		publicKey:  cfg.PublicKey,
		privateKey: cfg.PrivateKey,
		gatewayURL: cfg.GatewayURL,
		resultURL:  resultURL,
		serverURL:  serverURL,
		sandbox:    cfg.Sandbox,
		signHMAC:   cfg.SignHMAC,
	}
}

// Build produces the signed redirect for a verified order. Amount, currency
// and order id come from the stored intent, never from the redeem request.
func (b *CheckoutBuilder) Build(intent *entities.OrderIntent) (*entities.CheckoutRequest, error) {
	if intent == nil || intent.OrderID == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	params := checkoutParams{
		Version:     "3",
		PublicKey:   b.publicKey,
		Action:      "pay",
		Amount:      intent.Amount,
		Currency:    intent.Currency,
		Description: intent.Description,
		OrderID:     intent.OrderID,
		ResultURL:   b.resultURL + "?email=" + url.QueryEscape(intent.Email),
		ServerURL:   b.serverURL,
	}
	if b.sandbox {
		params.Sandbox = "1"
	}

	payload, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal checkout params: %w", err)
	}
	data := base64.StdEncoding.EncodeToString(payload)
	signature := b.Sign(data)

	return &entities.CheckoutRequest{
		CheckoutURL: b.gatewayURL + "?data=" + url.QueryEscape(data) + "&signature=" + url.QueryEscape(signature),
		OrderID:     intent.OrderID,
	}, nil
}

// Sign computes the detached signature over the encoded payload
func (b *CheckoutBuilder) Sign(data string) string {
	if b.signHMAC {
		mac := hmac.New(sha256.New, []byte(b.privateKey))
		mac.Write([]byte(data))
		return base64.StdEncoding.EncodeToString(mac.Sum(nil))
	}
	sum := sha1.Sum([]byte(b.privateKey + data + b.privateKey))
	return base64.StdEncoding.EncodeToString(sum[:])
}

// VerifyCallback checks a gateway callback signature in constant time
func (b *CheckoutBuilder) VerifyCallback(data, signature string) bool {
	expected := b.Sign(data)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(signature)) == 1
}

// DecodeCallback decodes the callback payload into a settlement
func (b *CheckoutBuilder) DecodeCallback(data string) (*entities.Settlement, error) {
	payload, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	var settlement entities.Settlement
	if err := json.Unmarshal(payload, &settlement); err != nil {
		return nil, domainerrors.ErrInvalidInput
	}
	if settlement.OrderID == "" {
		return nil, domainerrors.ErrInvalidInput
	}
	return &settlement, nil
}
