package usecases_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"muza-life.backend/internal/domain/entities"
)

// Mock UnitOfWork
type MockUnitOfWork struct {
	mock.Mock
}

func (m *MockUnitOfWork) Do(ctx context.Context, f func(context.Context) error) error {
	m.Called(ctx, f)
	return f(ctx)
}

// Mock VerificationLedger
type MockVerificationLedger struct {
	mock.Mock
}

func (m *MockVerificationLedger) Issue(ctx context.Context, email, code string, intent *entities.OrderIntent, ttl time.Duration) error {
	args := m.Called(ctx, email, code, intent, ttl)
	return args.Error(0)
}

func (m *MockVerificationLedger) Consume(ctx context.Context, email, code string) (*entities.OrderIntent, error) {
	args := m.Called(ctx, email, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.OrderIntent), args.Error(1)
}

// Mock AuthorizedOrderStore
type MockAuthorizedOrderStore struct {
	mock.Mock
}

func (m *MockAuthorizedOrderStore) Put(ctx context.Context, order *entities.AuthorizedOrder) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *MockAuthorizedOrderStore) Take(ctx context.Context, orderID string) (*entities.AuthorizedOrder, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.AuthorizedOrder), args.Error(1)
}

// Mock EmailSender
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendVerificationCode(ctx context.Context, toEmail, code string) error {
	args := m.Called(ctx, toEmail, code)
	return args.Error(0)
}

// Mock IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) Introspect(ctx context.Context, accessToken string) (*entities.ExternalIdentity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ExternalIdentity), args.Error(1)
}

// Mock UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	if args.Error(0) == nil && user.ID == 0 {
		user.ID = 1
	}
	return args.Error(0)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id uint) (*entities.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) GetByProviderID(ctx context.Context, provider entities.AuthProvider, providerID, email string) (*entities.User, error) {
	args := m.Called(ctx, provider, providerID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.User), args.Error(1)
}

func (m *MockUserRepository) LinkProvider(ctx context.Context, userID uint, provider entities.AuthProvider, providerID string) error {
	args := m.Called(ctx, userID, provider, providerID)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *entities.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *entities.Product) error {
	args := m.Called(ctx, product)
	if args.Error(0) == nil && product.ID == 0 {
		product.ID = 1
	}
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, id uint) (*entities.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Product), args.Error(1)
}

func (m *MockProductRepository) List(ctx context.Context, filter entities.ProductFilter) ([]*entities.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

func (m *MockProductRepository) Patch(ctx context.Context, id uint, patch *entities.ProductPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockProductRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) RecomputeRating(ctx context.Context, productID uint) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// Mock ReviewRepository
type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *entities.Review) error {
	args := m.Called(ctx, review)
	if args.Error(0) == nil && review.ID == 0 {
		review.ID = 1
	}
	return args.Error(0)
}

func (m *MockReviewRepository) GetByID(ctx context.Context, id uint) (*entities.Review, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) GetOwned(ctx context.Context, id, userID uint) (*entities.Review, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) ExistsForUserProduct(ctx context.Context, userID, productID uint) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByProduct(ctx context.Context, productID uint) ([]*entities.Review, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Review), args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// Mock PollRepository
type MockPollRepository struct {
	mock.Mock
}

func (m *MockPollRepository) Create(ctx context.Context, question string, options []string) (*entities.Poll, error) {
	args := m.Called(ctx, question, options)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Poll), args.Error(1)
}

func (m *MockPollRepository) GetByID(ctx context.Context, pollID uint, userID uint) (*entities.Poll, error) {
	args := m.Called(ctx, pollID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Poll), args.Error(1)
}

func (m *MockPollRepository) ListActive(ctx context.Context, userID uint) ([]*entities.Poll, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Poll), args.Error(1)
}

func (m *MockPollRepository) OptionBelongsToPoll(ctx context.Context, optionID, pollID uint) (bool, error) {
	args := m.Called(ctx, optionID, pollID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPollRepository) HasVoted(ctx context.Context, userID, pollID uint) (bool, error) {
	args := m.Called(ctx, userID, pollID)
	return args.Bool(0), args.Error(1)
}

func (m *MockPollRepository) CreateVote(ctx context.Context, userID, pollID, optionID uint) error {
	args := m.Called(ctx, userID, pollID, optionID)
	return args.Error(0)
}

func (m *MockPollRepository) Results(ctx context.Context, pollID uint) ([]*entities.PollOptionResult, error) {
	args := m.Called(ctx, pollID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PollOptionResult), args.Error(1)
}

func (m *MockPollRepository) SetActive(ctx context.Context, pollID uint, active bool) (*entities.Poll, error) {
	args := m.Called(ctx, pollID, active)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.Poll), args.Error(1)
}

// Mock SavedProductRepository
type MockSavedProductRepository struct {
	mock.Mock
}

func (m *MockSavedProductRepository) Save(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockSavedProductRepository) Remove(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockSavedProductRepository) ListIDs(ctx context.Context, userID uint) ([]uint, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint), args.Error(1)
}

// Mock BoughtProductRepository
type MockBoughtProductRepository struct {
	mock.Mock
}

func (m *MockBoughtProductRepository) Grant(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockBoughtProductRepository) Revoke(ctx context.Context, userID, productID uint) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *MockBoughtProductRepository) List(ctx context.Context, userID uint) ([]*entities.Product, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.Product), args.Error(1)
}

// Mock PersonalOrderRepository
type MockPersonalOrderRepository struct {
	mock.Mock
}

func (m *MockPersonalOrderRepository) Create(ctx context.Context, order *entities.PersonalOrder) error {
	args := m.Called(ctx, order)
	if args.Error(0) == nil && order.ID == 0 {
		order.ID = 1
	}
	return args.Error(0)
}

func (m *MockPersonalOrderRepository) GetByID(ctx context.Context, id uint) (*entities.PersonalOrder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.PersonalOrder), args.Error(1)
}

func (m *MockPersonalOrderRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.PersonalOrder, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PersonalOrder), args.Error(1)
}

func (m *MockPersonalOrderRepository) ListAll(ctx context.Context) ([]*entities.PersonalOrder, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.PersonalOrder), args.Error(1)
}

func (m *MockPersonalOrderRepository) UpdateStatus(ctx context.Context, id uint, status entities.OrderStatus) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

// Mock ProductViewRepository
type MockProductViewRepository struct {
	mock.Mock
}

func (m *MockProductViewRepository) Record(ctx context.Context, view *entities.ProductView) error {
	args := m.Called(ctx, view)
	return args.Error(0)
}

func (m *MockProductViewRepository) Stats(ctx context.Context, productID uint) (*entities.ProductStats, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.ProductStats), args.Error(1)
}

// Mock FAQRepository
type MockFAQRepository struct {
	mock.Mock
}

func (m *MockFAQRepository) List(ctx context.Context) ([]*entities.FAQ, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*entities.FAQ), args.Error(1)
}

func (m *MockFAQRepository) GetByID(ctx context.Context, id uint) (*entities.FAQ, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entities.FAQ), args.Error(1)
}
