package models

import (
	"time"
)

type Review struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	ProductID uint   `gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	UserID    uint   `gorm:"not null;uniqueIndex:idx_reviews_product_user"`
	Rating    int    `gorm:"not null"`
	Comment   string `gorm:"type:varchar(500);not null"`
	CreatedAt time.Time
}

// ProductReview links a review to its product for catalog-side lookups.
// Written in the same transaction as the review row.
type ProductReview struct {
	ProductID uint `gorm:"primaryKey"`
	ReviewID  uint `gorm:"primaryKey"`
}

func (ProductReview) TableName() string { return "product_reviews" }
