package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Review represents a product review joined with its author
type Review struct {
	ID         uint        `json:"id"`
	ProductID  uint        `json:"productId"`
	UserID     uint        `json:"userId"`
	UserName   string      `json:"userName"`
	UserAvatar null.String `json:"userAvatar,omitempty"`
	Rating     int         `json:"rating"`
	Comment    string      `json:"comment"`
	CreatedAt  time.Time   `json:"createdAt"`
}

// SubmitReviewInput represents input for submitting a review
type SubmitReviewInput struct {
	ProductID uint   `json:"productId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required,max=500"`
}
