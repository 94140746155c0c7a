package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/interfaces/http/middleware"
	"muza-life.backend/internal/interfaces/http/response"
)

type PollService interface {
	Create(ctx context.Context, input *entities.CreatePollInput) (*entities.Poll, error)
	Get(ctx context.Context, pollID, userID uint) (*entities.Poll, error)
	ListActive(ctx context.Context, userID uint) ([]*entities.Poll, error)
	Vote(ctx context.Context, userID, pollID uint, input *entities.VoteInput) (*entities.Poll, error)
	Results(ctx context.Context, pollID uint) ([]*entities.PollOptionResult, error)
	SetActive(ctx context.Context, pollID uint, active bool) (*entities.Poll, error)
}

// PollHandler handles poll endpoints
type PollHandler struct {
	pollUsecase PollService
}

// NewPollHandler creates a new poll handler
func NewPollHandler(pollUsecase PollService) *PollHandler {
	return &PollHandler{pollUsecase: pollUsecase}
}

// ListActive lists open polls; vote state is filled in for signed-in callers
// GET /api/polls
func (h *PollHandler) ListActive(c *gin.Context) {
	polls, err := h.pollUsecase.ListActive(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"polls": polls})
}

// Get returns one poll with its options and vote counts
// GET /api/polls/:id
func (h *PollHandler) Get(c *gin.Context) {
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid poll ID"))
		return
	}

	poll, err := h.pollUsecase.Get(c.Request.Context(), pollID, middleware.GetUserID(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"poll": poll})
}

// Create opens a new poll
// POST /api/polls
func (h *PollHandler) Create(c *gin.Context) {
	var input entities.CreatePollInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	poll, err := h.pollUsecase.Create(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"poll": poll})
}

// Vote casts the caller's single vote on a poll
// POST /api/polls/:id/vote
func (h *PollHandler) Vote(c *gin.Context) {
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid poll ID"))
		return
	}

	var input entities.VoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	poll, err := h.pollUsecase.Vote(c.Request.Context(), userID, pollID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"poll": poll})
}

// Results returns per-option tallies with percentages
// GET /api/polls/:id/results
func (h *PollHandler) Results(c *gin.Context) {
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid poll ID"))
		return
	}

	results, err := h.pollUsecase.Results(c.Request.Context(), pollID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// SetActive opens or closes a poll
// PATCH /api/polls/:id/active
func (h *PollHandler) SetActive(c *gin.Context) {
	pollID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid poll ID"))
		return
	}

	var input struct {
		IsActive *bool `json:"isActive" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	poll, err := h.pollUsecase.SetActive(c.Request.Context(), pollID, *input.IsActive)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"poll": poll})
}
