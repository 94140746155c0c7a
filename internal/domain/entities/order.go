package entities

import "time"

// CartItem is one line of a checkout cart
type CartItem struct {
	ProductID uint    `json:"productId" binding:"required"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// OrderIntent is the authoritative description of a purchase, captured at
// initiate time and carried unchanged through verification to checkout.
type OrderIntent struct {
	OrderID      string     `json:"order_id"`
	Amount       float64    `json:"amount"`
	Currency     string     `json:"currency"`
	Description  string     `json:"description"`
	CartItems    []CartItem `json:"cartItems"`
	ProductNames string     `json:"productNames"`
	Email        string     `json:"email"`
}

// AuthorizedOrder is an intent whose one-time code was verified
type AuthorizedOrder struct {
	Intent     OrderIntent `json:"intent"`
	VerifiedAt time.Time   `json:"verifiedAt"`
}

// InitiatePaymentInput represents input for starting the payment flow
type InitiatePaymentInput struct {
	Email        string     `json:"email" binding:"required,email"`
	CartItems    []CartItem `json:"cartItems" binding:"required,min=1"`
	TotalAmount  float64    `json:"totalAmount" binding:"required,gt=0"`
	ProductNames string     `json:"productNames"`
}

// VerifyPaymentInput represents input for redeeming a verification code
type VerifyPaymentInput struct {
	Email string `json:"email" binding:"required"`
	Code  string `json:"code" binding:"required"`
}

// CheckoutRequest is the signed redirect handed to the client
type CheckoutRequest struct {
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
}

// Settlement is the gateway's asynchronous notification payload
type Settlement struct {
	OrderID  string  `json:"order_id"`
	Status   string  `json:"status"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}
