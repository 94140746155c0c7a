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

type LibraryService interface {
	SaveProduct(ctx context.Context, userID uint, input *entities.SaveProductInput) error
	UnsaveProduct(ctx context.Context, userID, productID uint) error
	ListSaved(ctx context.Context, userID uint) ([]*entities.Product, error)
	ListBought(ctx context.Context, userID uint) ([]*entities.Product, error)
	GrantProduct(ctx context.Context, userID uint, input *entities.SaveProductInput) error
	RevokeProduct(ctx context.Context, userID, productID uint) error
}

// LibraryHandler handles saved and bought product endpoints
type LibraryHandler struct {
	libraryUsecase LibraryService
}

// NewLibraryHandler creates a new library handler
func NewLibraryHandler(libraryUsecase LibraryService) *LibraryHandler {
	return &LibraryHandler{libraryUsecase: libraryUsecase}
}

// SaveProduct adds a product to the caller's wishlist
// POST /api/library/saved
func (h *LibraryHandler) SaveProduct(c *gin.Context) {
	var input entities.SaveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	if err := h.libraryUsecase.SaveProduct(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"saved": true})
}

// UnsaveProduct removes a product from the caller's wishlist
// DELETE /api/library/saved/:id
func (h *LibraryHandler) UnsaveProduct(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	if err := h.libraryUsecase.UnsaveProduct(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"removed": true})
}

// ListSaved lists the caller's wishlist
// GET /api/library/saved
func (h *LibraryHandler) ListSaved(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	products, err := h.libraryUsecase.ListSaved(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// ListBought lists products the caller owns
// GET /api/library/bought
func (h *LibraryHandler) ListBought(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	products, err := h.libraryUsecase.ListBought(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"products": products})
}

// GrantProduct grants a product to a user without a purchase
// POST /api/library/grant/:userId
func (h *LibraryHandler) GrantProduct(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}

	var input entities.SaveProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.libraryUsecase.GrantProduct(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"granted": true})
}

// RevokeProduct takes a granted product back from a user
// DELETE /api/library/grant/:userId/:id
func (h *LibraryHandler) RevokeProduct(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid user ID"))
		return
	}
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	if err := h.libraryUsecase.RevokeProduct(c.Request.Context(), userID, productID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"revoked": true})
}
