package usecases

import (
	"context"
	"time"

	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
	"muza-life.backend/internal/domain/repositories"
)

// PersonalOrderUsecase handles commissioned order business logic
type PersonalOrderUsecase struct {
	orderRepo repositories.PersonalOrderRepository
}

// NewPersonalOrderUsecase creates a new personal order usecase
func NewPersonalOrderUsecase(orderRepo repositories.PersonalOrderRepository) *PersonalOrderUsecase {
	return &PersonalOrderUsecase{orderRepo: orderRepo}
}

// Create places a personal order for the caller
func (u *PersonalOrderUsecase) Create(ctx context.Context, userID uint, input *entities.CreatePersonalOrderInput) (*entities.PersonalOrder, error) {
	deadline := time.Now().AddDate(0, 1, 0)
	if input.Deadline != "" {
		parsed, err := time.Parse(time.RFC3339, input.Deadline)
		if err != nil {
			parsed, err = time.Parse("2006-01-02", input.Deadline)
			if err != nil {
				return nil, domainerrors.ErrInvalidInput
			}
		}
		if parsed.Before(time.Now()) {
			return nil, domainerrors.ErrInvalidInput
		}
		deadline = parsed
	}

	order := &entities.PersonalOrder{
		UserID:        userID,
		Title:         input.Title,
		Description:   input.Description,
		Status:        entities.OrderStatusNew,
		Price:         input.Price,
		TypeID:        input.TypeID,
		AgeCategoryID: input.AgeCategoryID,
		Deadline:      deadline,
	}
	if err := u.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns one order; non-admins only see their own
func (u *PersonalOrderUsecase) Get(ctx context.Context, orderID, userID uint, isAdmin bool) (*entities.PersonalOrder, error) {
	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, domainerrors.ErrNotFound
	}
	return order, nil
}

// ListMine lists the caller's orders
func (u *PersonalOrderUsecase) ListMine(ctx context.Context, userID uint) ([]*entities.PersonalOrder, error) {
	return u.orderRepo.ListByUser(ctx, userID)
}

// ListAll lists every order (admin path)
func (u *PersonalOrderUsecase) ListAll(ctx context.Context) ([]*entities.PersonalOrder, error) {
	return u.orderRepo.ListAll(ctx)
}

// UpdateStatus moves an order to a new lifecycle status. Admins may set any
// status; the owner may only cancel while work has not started.
func (u *PersonalOrderUsecase) UpdateStatus(ctx context.Context, orderID, userID uint, isAdmin bool, input *entities.UpdatePersonalOrderInput) (*entities.PersonalOrder, error) {
	if !input.Status.Valid() {
		return nil, domainerrors.ErrInvalidInput
	}

	order, err := u.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !isAdmin {
		if order.UserID != userID {
			return nil, domainerrors.ErrNotFound
		}
		if input.Status != entities.OrderStatusCancelledByClient {
			return nil, domainerrors.ErrForbidden
		}
		switch order.Status {
		case entities.OrderStatusDraft, entities.OrderStatusNew, entities.OrderStatusAwaitingPayment, entities.OrderStatusQueued:
		default:
			return nil, domainerrors.ErrForbidden
		}
	}

	if err := u.orderRepo.UpdateStatus(ctx, orderID, input.Status); err != nil {
		return nil, err
	}
	order.Status = input.Status
	return order, nil
}
