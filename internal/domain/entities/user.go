package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// AuthProvider identifies how an account was created
type AuthProvider string

const (
	AuthProviderEmail    AuthProvider = "email"
	AuthProviderGoogle   AuthProvider = "google"
	AuthProviderFacebook AuthProvider = "facebook"
)

// User represents a storefront account
type User struct {
	ID           uint         `json:"id"`
	Email        string       `json:"email"`
	Name         string       `json:"name"`
	PasswordHash string       `json:"-"`
	GoogleID     null.String  `json:"-"`
	FacebookID   null.String  `json:"-"`
	AuthProvider AuthProvider `json:"authProvider"`
	AvatarURL    null.String  `json:"avatarUrl,omitempty"`
	IsAdmin      bool         `json:"isAdmin"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// RegisterInput represents input for creating an account
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Name     string `json:"name" binding:"required,min=2,max=255"`
}

// LoginInput represents input for password login. LoginType gates the admin
// console: "admin" requires an admin account, "regular" rejects one.
type LoginInput struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	LoginType string `json:"loginType"`
}

// SocialAuthInput carries a provider-issued access token
type SocialAuthInput struct {
	AccessToken string `json:"accessToken" binding:"required"`
}

// ExternalIdentity is the subject returned by a provider's token introspection
type ExternalIdentity struct {
	ProviderID string
	Email      string
	Name       string
	AvatarURL  string
}

// AuthResponse represents a successful authentication
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
