package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"muza-life.backend/internal/domain/entities"
)

func TestUnitOfWork_CommitAppliesAllWrites(t *testing.T) {
	db := newTestDB(t)
	createReviewTables(t, db)
	createProductTables(t, db)
	uow := NewUnitOfWork(db)
	reviews := NewReviewRepository(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, products, "tx-product", 10, 1)

	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := reviews.Create(txCtx, &entities.Review{ProductID: p.ID, UserID: 1, Rating: 5, Comment: "tx"}); err != nil {
			return err
		}
		return products.RecomputeRating(txCtx, p.ID)
	})
	require.NoError(t, err)

	got, err := products.GetByID(ctx, p.ID)
	require.NoError(t, err)
	require.InDelta(t, 5.0, got.Rating, 0.001)
}

func TestUnitOfWork_RollbackDiscardsAllWrites(t *testing.T) {
	db := newTestDB(t)
	createReviewTables(t, db)
	uow := NewUnitOfWork(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	boom := errors.New("boom")
	err := uow.Do(ctx, func(txCtx context.Context) error {
		if err := reviews.Create(txCtx, &entities.Review{ProductID: 1, UserID: 1, Rating: 4, Comment: "gone"}); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	list, err := reviews.ListByProduct(ctx, 1)
	require.NoError(t, err)
	require.Empty(t, list, "rolled-back review must not be visible")
}

func TestUnitOfWork_NestedDoReusesTransaction(t *testing.T) {
	db := newTestDB(t)
	createReviewTables(t, db)
	createUserTable(t, db)
	uow := NewUnitOfWork(db)
	reviews := NewReviewRepository(db)
	ctx := context.Background()

	err := uow.Do(ctx, func(outer context.Context) error {
		return uow.Do(outer, func(inner context.Context) error {
			return reviews.Create(inner, &entities.Review{ProductID: 3, UserID: 3, Rating: 3, Comment: "nested"})
		})
	})
	require.NoError(t, err)

	list, err := reviews.ListByProduct(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 1)
}
