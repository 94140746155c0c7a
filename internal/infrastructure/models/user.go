package models

import (
	"time"
)

type User struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name         string  `gorm:"type:varchar(255);not null"`
	PasswordHash string  `gorm:"type:varchar(255)"`
	GoogleID     *string `gorm:"type:varchar(255);uniqueIndex"`
	FacebookID   *string `gorm:"type:varchar(255);uniqueIndex"`
	AuthProvider string  `gorm:"type:varchar(50);not null;default:'email'"`
	AvatarURL    *string `gorm:"type:varchar(512)"`
	IsAdmin      bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
