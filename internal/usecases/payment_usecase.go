package usecases

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
	"muza-life.backend/pkg/crypto"
	"muza-life.backend/pkg/logger"
)

// settlement statuses that complete an order
var settledStatuses = map[string]struct{}{
	"success": {},
	"sandbox": {},
}

// PaymentUsecase orchestrates the payment protocol: initiate issues an
// emailed one-time code, verify redeems it for a signed checkout redirect,
// and the webhook settles the order.
type PaymentUsecase struct {
	ledger      repositories.VerificationLedger
	orders      repositories.AuthorizedOrderStore
	emailSender repositories.EmailSender
	userRepo    repositories.UserRepository
	boughtRepo  repositories.BoughtProductRepository
	uow         repositories.UnitOfWork
	builder     *CheckoutBuilder
	codeTTL     time.Duration
	now         func() time.Time
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	ledger repositories.VerificationLedger,
	orders repositories.AuthorizedOrderStore,
	emailSender repositories.EmailSender,
	userRepo repositories.UserRepository,
	boughtRepo repositories.BoughtProductRepository,
	uow repositories.UnitOfWork,
	builder *CheckoutBuilder,
	codeTTL time.Duration,
) *PaymentUsecase {
	return &PaymentUsecase{
		ledger:      ledger,
		orders:      orders,
		emailSender: emailSender,
		userRepo:    userRepo,
		boughtRepo:  boughtRepo,
		uow:         uow,
		builder:     builder,
		codeTTL:     codeTTL,
		now:         time.Now,
	}
}

// Initiate captures the order intent, issues a one-time code under the
// claimant email and sends it out. Re-initiating replaces the prior code.
// Returns the generated order id so the client can correlate the checkout.
func (u *PaymentUsecase) Initiate(ctx context.Context, input *entities.InitiatePaymentInput) (string, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if email == "" || !strings.Contains(email, "@") {
		return "", domainerrors.ErrInvalidInput
	}

	code, err := crypto.GenerateVerificationCode()
	if err != nil {
		return "", err
	}
	suffix, err := crypto.GenerateRandomToken(4)
	if err != nil {
		return "", err
	}

	intent := &entities.OrderIntent{
		OrderID:      fmt.Sprintf("order_%d_%s", u.now().UnixMilli(), suffix),
		Amount:       input.TotalAmount,
		Currency:     "UAH",
		Description:  buildOrderDescription(input),
		CartItems:    input.CartItems,
		ProductNames: input.ProductNames,
		Email:        email,
	}

	if err := u.ledger.Issue(ctx, email, code, intent, u.codeTTL); err != nil {
		return "", err
	}

	if err := u.emailSender.SendVerificationCode(ctx, email, code); err != nil {
		// the entry stays in the ledger; a resend just replaces it
		return "", err
	}

	logger.Info(ctx, "payment initiated",
		zap.String("order_id", intent.OrderID),
		zap.Float64("amount", intent.Amount))
	return intent.OrderID, nil
}

// Verify redeems the one-time code. On a match the intent moves from the
// ledger to the authorized order store and the signed checkout redirect is
// returned; redeeming the same code again fails.
func (u *PaymentUsecase) Verify(ctx context.Context, input *entities.VerifyPaymentInput) (*entities.CheckoutRequest, error) {
	email := strings.TrimSpace(strings.ToLower(input.Email))
	code := strings.TrimSpace(input.Code)
	if email == "" || code == "" {
		return nil, domainerrors.ErrInvalidInput
	}

	intent, err := u.ledger.Consume(ctx, email, code)
	if err != nil {
		return nil, err
	}

	order := &entities.AuthorizedOrder{Intent: *intent, VerifiedAt: u.now()}
	if err := u.orders.Put(ctx, order); err != nil {
		return nil, err
	}

	checkout, err := u.builder.Build(intent)
	if err != nil {
		return nil, err
	}

	logger.Info(ctx, "payment verified", zap.String("order_id", intent.OrderID))
	return checkout, nil
}

// HandleWebhook processes a gateway settlement callback. Unknown orders and
// replays are swallowed: the caller acknowledges the gateway regardless, the
// error return exists for logging and tests.
func (u *PaymentUsecase) HandleWebhook(ctx context.Context, data, signature string) error {
	if !u.builder.VerifyCallback(data, signature) {
		return domainerrors.ErrUnauthorized
	}

	settlement, err := u.builder.DecodeCallback(data)
	if err != nil {
		return err
	}

	if _, ok := settledStatuses[settlement.Status]; !ok {
		logger.Info(ctx, "ignoring non-final settlement status",
			zap.String("order_id", settlement.OrderID),
			zap.String("status", settlement.Status))
		return nil
	}

	order, err := u.orders.Take(ctx, settlement.OrderID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Warn(ctx, "settlement for unknown or already settled order",
				zap.String("order_id", settlement.OrderID))
			return nil
		}
		return err
	}

	if err := u.fulfill(ctx, order); err != nil {
		return err
	}

	logger.Info(ctx, "order settled",
		zap.String("order_id", settlement.OrderID),
		zap.Float64("amount", settlement.Amount))
	return nil
}

// fulfill grants every purchased product to the buyer's account in one
// transaction. Guest checkouts have no account; the order is still settled.
func (u *PaymentUsecase) fulfill(ctx context.Context, order *entities.AuthorizedOrder) error {
	user, err := u.userRepo.GetByEmail(ctx, order.Intent.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Info(ctx, "guest checkout settled without account grant",
				zap.String("order_id", order.Intent.OrderID))
			return nil
		}
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		for _, item := range order.Intent.CartItems {
			if err := u.boughtRepo.Grant(txCtx, user.ID, item.ProductID); err != nil {
				return err
			}
		}
		return nil
	})
}

func buildOrderDescription(input *entities.InitiatePaymentInput) string {
	if input.ProductNames != "" {
		return "Muza Life order: " + input.ProductNames
	}
	return fmt.Sprintf("Muza Life order (%d items)", len(input.CartItems))
}
