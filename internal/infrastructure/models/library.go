package models

import (
	"time"
)

type SavedProduct struct {
	UserID    uint `gorm:"primaryKey"`
	ProductID uint `gorm:"primaryKey"`
	SavedAt   time.Time
}

type BoughtProduct struct {
	UserID    uint `gorm:"primaryKey"`
	ProductID uint `gorm:"primaryKey"`
	BoughtAt  time.Time
}

type ProductView struct {
	ID        uint  `gorm:"primaryKey;autoIncrement"`
	ProductID uint  `gorm:"not null;index"`
	UserID    *uint `gorm:"index"`
	ViewedAt  time.Time
}
