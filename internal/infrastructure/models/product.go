package models

import (
	"time"
)

type Product struct {
	ID           uint    `gorm:"primaryKey;autoIncrement"`
	Title        string  `gorm:"type:varchar(255);not null"`
	Description  string  `gorm:"type:varchar(500);not null"`
	MainImageURL string  `gorm:"type:varchar(512);not null"`
	Price        float64 `gorm:"type:numeric(10,2);not null"`
	Rating       float64 `gorm:"type:numeric(3,2);not null;default:0"`
	TypeID       uint    `gorm:"not null;index"`
	Hidden       bool    `gorm:"not null;default:false"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type FAQ struct {
	ID       uint   `gorm:"primaryKey;autoIncrement"`
	Question string `gorm:"type:varchar(500);not null"`
	Answer   string `gorm:"type:text;not null"`
}

func (FAQ) TableName() string { return "faqs" }
