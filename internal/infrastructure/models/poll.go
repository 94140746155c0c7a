package models

import (
	"time"
)

type Poll struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"`
	Question  string `gorm:"type:varchar(500);not null"`
	IsActive  bool   `gorm:"not null;default:true"`
	CreatedAt time.Time
}

type PollOption struct {
	ID     uint   `gorm:"primaryKey;autoIncrement"`
	PollID uint   `gorm:"not null;index"`
	Text   string `gorm:"type:varchar(255);not null"`
}

// PollUserVote records one ballot per user per poll. The composite unique
// index is the single source of truth for the one-vote rule; racing inserts
// lose at the constraint, not in application code.
type PollUserVote struct {
	ID       uint `gorm:"primaryKey;autoIncrement"`
	UserID   uint `gorm:"not null;uniqueIndex:idx_poll_user_votes_user_poll"`
	PollID   uint `gorm:"not null;uniqueIndex:idx_poll_user_votes_user_poll"`
	OptionID uint `gorm:"not null;index"`
	VotedAt  time.Time
}

func (PollUserVote) TableName() string { return "poll_user_votes" }
