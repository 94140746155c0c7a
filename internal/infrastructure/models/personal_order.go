package models

import (
	"time"
)

type PersonalOrder struct {
	ID            uint    `gorm:"primaryKey;autoIncrement"`
	UserID        uint    `gorm:"not null;index"`
	Title         string  `gorm:"type:varchar(255);not null"`
	Description   string  `gorm:"type:text;not null"`
	Status        string  `gorm:"type:varchar(50);not null;default:'new'"`
	Price         float64 `gorm:"type:numeric(10,2);not null"`
	TypeID        uint    `gorm:"not null"`
	AgeCategoryID uint    `gorm:"not null"`
	Deadline      time.Time
	CreatedAt     time.Time
}
