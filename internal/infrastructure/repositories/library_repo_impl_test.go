package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"
	"muza-life.backend/internal/domain/entities"
	domainerrors "muza-life.backend/internal/domain/errors"
)

func TestSavedProductRepository_SaveIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createLibraryTables(t, db)
	repo := NewSavedProductRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, 1, 10))
	require.NoError(t, repo.Save(ctx, 1, 10))
	require.NoError(t, repo.Save(ctx, 1, 11))

	ids, err := repo.ListIDs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, ids, 2)

	require.NoError(t, repo.Remove(ctx, 1, 10))
	require.ErrorIs(t, repo.Remove(ctx, 1, 10), domainerrors.ErrNotFound)

	ids, err = repo.ListIDs(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, []uint{11}, ids)
}

func TestBoughtProductRepository_GrantIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	createLibraryTables(t, db)
	createProductTables(t, db)
	repo := NewBoughtProductRepository(db)
	products := NewProductRepository(db)
	ctx := context.Background()

	p := seedProduct(t, products, "owned-song", 15, 1)

	require.NoError(t, repo.Grant(ctx, 1, p.ID))
	require.NoError(t, repo.Grant(ctx, 1, p.ID), "webhook replays must not fail")

	owned, err := repo.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	require.Equal(t, "owned-song", owned[0].Title)

	require.NoError(t, repo.Revoke(ctx, 1, p.ID))
	require.ErrorIs(t, repo.Revoke(ctx, 1, p.ID), domainerrors.ErrNotFound)
}

func TestPersonalOrderRepository_Lifecycle(t *testing.T) {
	db := newTestDB(t)
	createPersonalOrderTable(t, db)
	repo := NewPersonalOrderRepository(db)
	ctx := context.Background()

	order := &entities.PersonalOrder{
		UserID:        4,
		Title:         "Birthday song",
		Description:   "A song for Olena's birthday",
		Status:        entities.OrderStatusNew,
		Price:         120,
		TypeID:        1,
		AgeCategoryID: 2,
		Deadline:      time.Now().Add(14 * 24 * time.Hour),
	}
	require.NoError(t, repo.Create(ctx, order))
	require.NotZero(t, order.ID)

	got, err := repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusNew, got.Status)

	require.NoError(t, repo.UpdateStatus(ctx, order.ID, entities.OrderStatusInProgress))
	got, err = repo.GetByID(ctx, order.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusInProgress, got.Status)

	mine, err := repo.ListByUser(ctx, 4)
	require.NoError(t, err)
	require.Len(t, mine, 1)

	other, err := repo.ListByUser(ctx, 5)
	require.NoError(t, err)
	require.Empty(t, other)

	all, err := repo.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)

	require.ErrorIs(t, repo.UpdateStatus(ctx, 9999, entities.OrderStatusPaid), domainerrors.ErrNotFound)
}

func TestProductViewRepository_RecordAndStats(t *testing.T) {
	db := newTestDB(t)
	createProductViewTable(t, db)
	repo := NewProductViewRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Record(ctx, &entities.ProductView{ProductID: 1, UserID: null.UintFrom(7)}))
	require.NoError(t, repo.Record(ctx, &entities.ProductView{ProductID: 1, UserID: null.UintFrom(7)}))
	require.NoError(t, repo.Record(ctx, &entities.ProductView{ProductID: 1, UserID: null.UintFrom(8)}))
	require.NoError(t, repo.Record(ctx, &entities.ProductView{ProductID: 1}), "anonymous views are allowed")
	require.NoError(t, repo.Record(ctx, &entities.ProductView{ProductID: 2, UserID: null.UintFrom(7)}))

	stats, err := repo.Stats(ctx, 1)
	require.NoError(t, err)
	require.EqualValues(t, 4, stats.TotalViews)
	require.EqualValues(t, 2, stats.UniqueViewers, "anonymous views do not count as viewers")
	require.NotEmpty(t, stats.ViewsByDay)
}
