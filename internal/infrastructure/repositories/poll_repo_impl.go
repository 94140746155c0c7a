package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/infrastructure/models"
)

// PollRepository implements poll data operations
type PollRepository struct {
	db *gorm.DB
}

// NewPollRepository creates a new poll repository
func NewPollRepository(db *gorm.DB) *PollRepository {
	return &PollRepository{db: db}
}

// Create creates a poll with its options. Callers wrap it in a unit of work
// so a failed option insert does not leave an empty poll behind.
func (r *PollRepository) Create(ctx context.Context, question string, options []string) (*entities.Poll, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	pm := &models.Poll{Question: question, IsActive: true}
	if err := db.Create(pm).Error; err != nil {
		return nil, err
	}

	poll := &entities.Poll{
		ID:        pm.ID,
		Question:  pm.Question,
		IsActive:  pm.IsActive,
		CreatedAt: pm.CreatedAt,
		Options:   make([]entities.PollOption, 0, len(options)),
	}
	for _, text := range options {
		om := &models.PollOption{PollID: pm.ID, Text: text}
		if err := db.Create(om).Error; err != nil {
			return nil, err
		}
		poll.Options = append(poll.Options, entities.PollOption{
			ID:     om.ID,
			PollID: pm.ID,
			Text:   om.Text,
		})
	}
	return poll, nil
}

// GetByID gets a poll with per-option counts and the requesting user's
// voted flag; userID 0 means anonymous.
func (r *PollRepository) GetByID(ctx context.Context, pollID uint, userID uint) (*entities.Poll, error) {
	var pm models.Poll
	if err := GetDB(ctx, r.db).WithContext(ctx).Where("id = ?", pollID).First(&pm).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return r.hydrate(ctx, &pm, userID)
}

// ListActive lists active polls, newest first
func (r *PollRepository) ListActive(ctx context.Context, userID uint) ([]*entities.Poll, error) {
	var pollModels []models.Poll
	err := GetDB(ctx, r.db).WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&pollModels).Error
	if err != nil {
		return nil, err
	}

	polls := make([]*entities.Poll, 0, len(pollModels))
	for i := range pollModels {
		poll, err := r.hydrate(ctx, &pollModels[i], userID)
		if err != nil {
			return nil, err
		}
		polls = append(polls, poll)
	}
	return polls, nil
}

// OptionBelongsToPoll reports whether the option exists under the poll
func (r *PollRepository) OptionBelongsToPoll(ctx context.Context, optionID, pollID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PollOption{}).
		Where("id = ? AND poll_id = ?", optionID, pollID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// HasVoted reports whether the user already voted in the poll
func (r *PollRepository) HasVoted(ctx context.Context, userID, pollID uint) (bool, error) {
	var count int64
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PollUserVote{}).
		Where("user_id = ? AND poll_id = ?", userID, pollID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateVote records a ballot. A second vote by the same user in the same
// poll hits the unique constraint and comes back as ErrAlreadyExists.
func (r *PollRepository) CreateVote(ctx context.Context, userID, pollID, optionID uint) error {
	m := &models.PollUserVote{
		UserID:   userID,
		PollID:   pollID,
		OptionID: optionID,
		VotedAt:  time.Now(),
	}
	if err := GetDB(ctx, r.db).WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueViolation(err) {
			return domainerrors.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Results returns per-option counts with their share of the total vote
func (r *PollRepository) Results(ctx context.Context, pollID uint) ([]*entities.PollOptionResult, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var optionModels []models.PollOption
	if err := db.Where("poll_id = ?", pollID).Order("id ASC").Find(&optionModels).Error; err != nil {
		return nil, err
	}
	if len(optionModels) == 0 {
		return nil, domainerrors.ErrNotFound
	}

	counts, total, err := r.voteCounts(ctx, pollID)
	if err != nil {
		return nil, err
	}

	results := make([]*entities.PollOptionResult, 0, len(optionModels))
	for i := range optionModels {
		count := counts[optionModels[i].ID]
		percentage := 0.0
		if total > 0 {
			percentage = float64(count) / float64(total) * 100
		}
		results = append(results, &entities.PollOptionResult{
			OptionID:   optionModels[i].ID,
			Text:       optionModels[i].Text,
			VoteCount:  count,
			Percentage: percentage,
		})
	}
	return results, nil
}

// SetActive opens or closes a poll and returns its fresh state
func (r *PollRepository) SetActive(ctx context.Context, pollID uint, active bool) (*entities.Poll, error) {
	result := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.Poll{}).
		Where("id = ?", pollID).
		Update("is_active", active)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrNotFound
	}
	return r.GetByID(ctx, pollID, 0)
}

func (r *PollRepository) hydrate(ctx context.Context, pm *models.Poll, userID uint) (*entities.Poll, error) {
	db := GetDB(ctx, r.db).WithContext(ctx)

	var optionModels []models.PollOption
	if err := db.Where("poll_id = ?", pm.ID).Order("id ASC").Find(&optionModels).Error; err != nil {
		return nil, err
	}

	counts, total, err := r.voteCounts(ctx, pm.ID)
	if err != nil {
		return nil, err
	}

	poll := &entities.Poll{
		ID:         pm.ID,
		Question:   pm.Question,
		IsActive:   pm.IsActive,
		CreatedAt:  pm.CreatedAt,
		TotalVotes: total,
		Options:    make([]entities.PollOption, 0, len(optionModels)),
	}
	for i := range optionModels {
		poll.Options = append(poll.Options, entities.PollOption{
			ID:        optionModels[i].ID,
			PollID:    pm.ID,
			Text:      optionModels[i].Text,
			VoteCount: counts[optionModels[i].ID],
		})
	}

	if userID != 0 {
		voted, err := r.HasVoted(ctx, userID, pm.ID)
		if err != nil {
			return nil, err
		}
		poll.UserHasVoted = voted
	}
	return poll, nil
}

func (r *PollRepository) voteCounts(ctx context.Context, pollID uint) (map[uint]int64, int64, error) {
	type optionCount struct {
		OptionID uint
		Count    int64
	}
	var rows []optionCount
	err := GetDB(ctx, r.db).WithContext(ctx).
		Model(&models.PollUserVote{}).
		Select("option_id, COUNT(*) as count").
		Where("poll_id = ?", pollID).
		Group("option_id").
		Scan(&rows).Error
	if err != nil {
		return nil, 0, err
	}

	counts := make(map[uint]int64, len(rows))
	var total int64
	for _, row := range rows {
		counts[row.OptionID] = row.Count
		total += row.Count
	}
	return counts, total, nil
}
