package entities

import "time"

// Poll represents a poll with its options. TotalVotes and UserHasVoted are
// derived for the requesting user at read time.
type Poll struct {
	ID           uint         `json:"id"`
	Question     string       `json:"question"`
	IsActive     bool         `json:"isActive"`
	CreatedAt    time.Time    `json:"createdAt"`
	TotalVotes   int64        `json:"totalVotes"`
	UserHasVoted bool         `json:"userHasVoted"`
	Options      []PollOption `json:"options"`
}

// PollOption represents one votable option of a poll
type PollOption struct {
	ID        uint   `json:"vote_id"`
	PollID    uint   `json:"-"`
	Text      string `json:"vote_text"`
	VoteCount int64  `json:"vote_count"`
}

// PollOptionResult is an option with its share of the total vote
type PollOptionResult struct {
	OptionID   uint    `json:"vote_id"`
	Text       string  `json:"vote_text"`
	VoteCount  int64   `json:"vote_count"`
	Percentage float64 `json:"percentage"`
}

// CreatePollInput represents input for creating a poll
type CreatePollInput struct {
	Question string   `json:"poll_question" binding:"required,max=500"`
	Options  []string `json:"options" binding:"required,min=2,dive,required"`
}

// VoteInput represents input for casting a vote
type VoteInput struct {
	OptionID uint `json:"vote_id" binding:"required"`
}
