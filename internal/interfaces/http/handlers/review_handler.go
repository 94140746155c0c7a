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

type ReviewService interface {
	Submit(ctx context.Context, userID uint, input *entities.SubmitReviewInput) (*entities.Review, error)
	Get(ctx context.Context, reviewID uint) (*entities.Review, error)
	ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error)
	Delete(ctx context.Context, reviewID, userID uint, isAdmin bool) error
}

// ReviewHandler handles review endpoints
type ReviewHandler struct {
	reviewUsecase ReviewService
}

// NewReviewHandler creates a new review handler
func NewReviewHandler(reviewUsecase ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewUsecase: reviewUsecase}
}

// Submit posts a review for a product the caller wants to rate
// POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var input entities.SubmitReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	review, err := h.reviewUsecase.Submit(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"review": review})
}

// ListByProduct lists a product's reviews, newest first
// GET /api/products/:id/reviews
func (h *ReviewHandler) ListByProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	reviews, err := h.reviewUsecase.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reviews": reviews})
}

// Get returns one review
// GET /api/reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid review ID"))
		return
	}

	review, err := h.reviewUsecase.Get(c.Request.Context(), reviewID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"review": review})
}

// Delete removes a review; admins may remove any, users only their own
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	reviewID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid review ID"))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	if err := h.reviewUsecase.Delete(c.Request.Context(), reviewID, userID, middleware.IsAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
