package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/interfaces/http/response"
	"muza-life.backend/pkg/logger"
)

type PaymentService interface {
	Initiate(ctx context.Context, input *entities.InitiatePaymentInput) (string, error)
	Verify(ctx context.Context, input *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error)
	HandleWebhook(ctx context.Context, data, signature string) error
}

// PaymentHandler handles the checkout flow endpoints
type PaymentHandler struct {
	paymentUsecase PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// Initiate starts a checkout: the cart is recorded and a one-time code is
// emailed to the buyer
// POST /api/payments/initiate
func (h *PaymentHandler) Initiate(c *gin.Context) {
	var input entities.InitiatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	orderID, err := h.paymentUsecase.Initiate(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"success": true,
		"message": "verification code sent",
		"orderId": orderID,
	})
}

// Verify redeems the emailed code and returns the signed gateway redirect
// POST /api/payments/verify
func (h *PaymentHandler) Verify(c *gin.Context) {
	var input entities.VerifyPaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	checkout, err := h.paymentUsecase.Verify(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, checkout)
}

// Webhook receives the gateway's server-to-server settlement callback. The
// gateway retries on any non-200, so failures are logged and acknowledged.
// POST /api/payments/webhook
func (h *PaymentHandler) Webhook(c *gin.Context) {
	// the gateway posts JSON {data, signature}; form encoding is kept for
	// compatibility with its older callback mode
	data := c.PostForm("data")
	signature := c.PostForm("signature")
	if data == "" {
		var input struct {
			Data      string `json:"data"`
			Signature string `json:"signature"`
		}
		if err := c.ShouldBindJSON(&input); err == nil {
			data, signature = input.Data, input.Signature
		}
	}

	if err := h.paymentUsecase.HandleWebhook(c.Request.Context(), data, signature); err != nil {
		logger.WithContext(c.Request.Context()).Warn("webhook processing failed", zap.Error(err))
	}

	c.String(http.StatusOK, "OK")
}
