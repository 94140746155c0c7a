package handlers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

type paymentServiceStub struct {
	initiateFn func(ctx context.Context, input *entities.InitiatePaymentInput) (string, error)
	verifyFn   func(ctx context.Context, input *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error)
	webhookFn  func(ctx context.Context, data, signature string) error
}

func (s paymentServiceStub) Initiate(ctx context.Context, input *entities.InitiatePaymentInput) (string, error) {
	return s.initiateFn(ctx, input)
}

func (s paymentServiceStub) Verify(ctx context.Context, input *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
	return s.verifyFn(ctx, input)
}

func (s paymentServiceStub) HandleWebhook(ctx context.Context, data, signature string) error {
	return s.webhookFn(ctx, data, signature)
}

func paymentRouter(stub paymentServiceStub) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewPaymentHandler(stub)
	r.POST("/payment/initiate", h.Initiate)
	r.POST("/payment/verify", h.Verify)
	r.POST("/payment/webhook", h.Webhook)
	return r
}

func TestPaymentHandler_Initiate(t *testing.T) {
	t.Run("sends verification code and returns the order id", func(t *testing.T) {
		var got *entities.InitiatePaymentInput
		r := paymentRouter(paymentServiceStub{
			initiateFn: func(_ context.Context, input *entities.InitiatePaymentInput) (string, error) {
				got = input
				return "order_1_deadbeef", nil
			},
		})

		body := `{"email":"buyer@example.com","cartItems":[{"productId":1,"title":"Track","price":9.99,"quantity":1}],"totalAmount":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.NotNil(t, got)
		require.Equal(t, "buyer@example.com", got.Email)
		require.Len(t, got.CartItems, 1)
		require.Contains(t, w.Body.String(), `"orderId":"order_1_deadbeef"`)
		require.Contains(t, w.Body.String(), `"success":true`)
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			initiateFn: func(context.Context, *entities.InitiatePaymentInput) (string, error) {
				t.Fatal("should not be called")
				return "", nil
			},
		})

		body := `{"email":"not-an-email","cartItems":[{"productId":1}],"totalAmount":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects empty cart", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			initiateFn: func(context.Context, *entities.InitiatePaymentInput) (string, error) {
				t.Fatal("should not be called")
				return "", nil
			},
		})

		body := `{"email":"buyer@example.com","cartItems":[],"totalAmount":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("email delivery failure maps to 502", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			initiateFn: func(context.Context, *entities.InitiatePaymentInput) (string, error) {
				return "", domainerrors.ErrEmailDeliveryFailed
			},
		})

		body := `{"email":"buyer@example.com","cartItems":[{"productId":1}],"totalAmount":9.99}`
		req := httptest.NewRequest(http.MethodPost, "/payment/initiate", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadGateway, w.Code)
		require.Contains(t, w.Body.String(), domainerrors.CodeUpstream)
	})
}

func TestPaymentHandler_Verify(t *testing.T) {
	t.Run("returns signed checkout", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			verifyFn: func(_ context.Context, input *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
				require.Equal(t, "123456", input.Code)
				return &entities.CheckoutRequest{
					CheckoutURL: "https://www.liqpay.ua/api/3/checkout?data=abc&signature=def",
					OrderID:     "order_1_deadbeef",
				}, nil
			},
		})

		body := `{"email":"buyer@example.com","code":"123456"}`
		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Contains(t, w.Body.String(), "checkout_url")
		require.Contains(t, w.Body.String(), "order_1_deadbeef")
	})

	t.Run("expired code maps to 400 with expired code", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			verifyFn: func(context.Context, *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
				return nil, domainerrors.ErrCodeExpired
			},
		})

		body := `{"email":"buyer@example.com","code":"123456"}`
		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), domainerrors.CodeExpired)
	})

	t.Run("unknown code maps to 400", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			verifyFn: func(context.Context, *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
				return nil, domainerrors.ErrCodeNotFound
			},
		})

		body := `{"email":"buyer@example.com","code":"123456"}`
		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), domainerrors.CodeNotFound)
	})

	t.Run("mismatched code maps to 400", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			verifyFn: func(context.Context, *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
				return nil, domainerrors.ErrCodeMismatch
			},
		})

		body := `{"email":"buyer@example.com","code":"000000"}`
		req := httptest.NewRequest(http.MethodPost, "/payment/verify", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPaymentHandler_Webhook(t *testing.T) {
	postForm := func(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("parses JSON body", func(t *testing.T) {
		var gotData, gotSig string
		r := paymentRouter(paymentServiceStub{
			webhookFn: func(_ context.Context, data, signature string) error {
				gotData, gotSig = data, signature
				return nil
			},
		})

		body := `{"data":"payload","signature":"sig"}`
		req := httptest.NewRequest(http.MethodPost, "/payment/webhook", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
		require.Equal(t, "payload", gotData)
		require.Equal(t, "sig", gotSig)
	})

	t.Run("passes form fields through", func(t *testing.T) {
		var gotData, gotSig string
		r := paymentRouter(paymentServiceStub{
			webhookFn: func(_ context.Context, data, signature string) error {
				gotData, gotSig = data, signature
				return nil
			},
		})

		w := postForm(r, url.Values{"data": {"payload"}, "signature": {"sig"}})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
		require.Equal(t, "payload", gotData)
		require.Equal(t, "sig", gotSig)
	})

	t.Run("still acknowledges on processing failure", func(t *testing.T) {
		r := paymentRouter(paymentServiceStub{
			webhookFn: func(context.Context, string, string) error {
				return domainerrors.ErrUnauthorized
			},
		})

		w := postForm(r, url.Values{"data": {"forged"}, "signature": {"bad"}})

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, "OK", w.Body.String())
	})
}
