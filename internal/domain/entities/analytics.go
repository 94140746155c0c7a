package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// ProductView records one catalog page view; UserID is null for anonymous views
type ProductView struct {
	ID        uint      `json:"id"`
	ProductID uint      `json:"productId"`
	UserID    null.Uint `json:"userId,omitempty"`
	ViewedAt  time.Time `json:"viewedAt"`
}

// RecordViewInput represents input for recording a product view
type RecordViewInput struct {
	ProductID uint `json:"productId" binding:"required"`
}

// DayViewCount is a per-day view bucket
type DayViewCount struct {
	Day   string `json:"day"`
	Count int64  `json:"count"`
}

// ProductStats aggregates view analytics for one product
type ProductStats struct {
	ProductID     uint           `json:"productId"`
	TotalViews    int64          `json:"totalViews"`
	UniqueViewers int64          `json:"uniqueViewers"`
	ViewsByDay    []DayViewCount `json:"viewsByDay"`
}
