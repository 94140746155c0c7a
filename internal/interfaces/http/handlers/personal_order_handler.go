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

type PersonalOrderService interface {
	Create(ctx context.Context, userID uint, input *entities.CreatePersonalOrderInput) (*entities.PersonalOrder, error)
	Get(ctx context.Context, orderID, userID uint, isAdmin bool) (*entities.PersonalOrder, error)
	ListMine(ctx context.Context, userID uint) ([]*entities.PersonalOrder, error)
	ListAll(ctx context.Context) ([]*entities.PersonalOrder, error)
	UpdateStatus(ctx context.Context, orderID, userID uint, isAdmin bool, input *entities.UpdatePersonalOrderInput) (*entities.PersonalOrder, error)
}

// PersonalOrderHandler handles commissioned order endpoints
type PersonalOrderHandler struct {
	orderUsecase PersonalOrderService
}

// NewPersonalOrderHandler creates a new personal order handler
func NewPersonalOrderHandler(orderUsecase PersonalOrderService) *PersonalOrderHandler {
	return &PersonalOrderHandler{orderUsecase: orderUsecase}
}

// Create places a commissioned order
// POST /api/personal-orders
func (h *PersonalOrderHandler) Create(c *gin.Context) {
	var input entities.CreatePersonalOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	order, err := h.orderUsecase.Create(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"order": order})
}

// Get returns one order; non-admins only see their own
// GET /api/personal-orders/:id
func (h *PersonalOrderHandler) Get(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid order ID"))
		return
	}

	order, err := h.orderUsecase.Get(c.Request.Context(), orderID, middleware.GetUserID(c), middleware.IsAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}

// ListMine lists the caller's orders
// GET /api/personal-orders
func (h *PersonalOrderHandler) ListMine(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, domainerrors.Unauthorized("user not authenticated"))
		return
	}

	orders, err := h.orderUsecase.ListMine(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// ListAll lists every order across users
// GET /api/personal-orders/all
func (h *PersonalOrderHandler) ListAll(c *gin.Context) {
	orders, err := h.orderUsecase.ListAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"orders": orders})
}

// UpdateStatus moves an order through its lifecycle
// PATCH /api/personal-orders/:id/status
func (h *PersonalOrderHandler) UpdateStatus(c *gin.Context) {
	orderID, ok := parseIDParam(c, "id")
	if !ok {
		response.Error(c, domainerrors.BadRequest("invalid order ID"))
		return
	}

	var input entities.UpdatePersonalOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	order, err := h.orderUsecase.UpdateStatus(c.Request.Context(), orderID, middleware.GetUserID(c), middleware.IsAdmin(c), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"order": order})
}
