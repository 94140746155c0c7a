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

type AnalyticsService interface {
	RecordView(ctx context.Context, userID uint, input *entities.RecordViewInput) error
	ProductStats(ctx context.Context, productID uint) (*entities.ProductStats, error)
}

// AnalyticsHandler handles view tracking endpoints
type AnalyticsHandler struct {
	analyticsUsecase AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// RecordView logs one product page view; anonymous views are counted too
// POST /api/analytics/views
func (h *AnalyticsHandler) RecordView(c *gin.Context) {
	var input entities.RecordViewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.analyticsUsecase.RecordView(c.Request.Context(), middleware.GetUserID(c), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"recorded": true})
}

// ProductStats returns aggregated view analytics for one product
// GET /api/analytics/products/:id
func (h *AnalyticsHandler) ProductStats(c *gin.Context) {
	productID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid product ID"))
		return
	}

	stats, err := h.analyticsUsecase.ProductStats(c.Request.Context(), productID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"stats": stats})
}
