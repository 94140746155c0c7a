package entities

import "time"

// SavedProduct marks a product a user put on their wishlist
type SavedProduct struct {
	ProductID uint      `json:"productId"`
	UserID    uint      `json:"userId"`
	SavedAt   time.Time `json:"savedAt"`
}

// BoughtProduct marks a product a user owns
type BoughtProduct struct {
	ProductID uint      `json:"productId"`
	UserID    uint      `json:"userId"`
	BoughtAt  time.Time `json:"boughtAt"`
}

// SaveProductInput represents input for saving or granting a product
type SaveProductInput struct {
	ProductID uint `json:"productId" binding:"required"`
}
