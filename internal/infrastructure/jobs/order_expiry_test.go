package jobs

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"muza-life.backend/internal/domain/entities"
	"muza-life.backend/internal/infrastructure/repositories"
)

func newJobTestRepo(t *testing.T) *repositories.PersonalOrderRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.Exec(`CREATE TABLE personal_orders (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		user_id INTEGER NOT NULL,
		title TEXT NOT NULL,
		description TEXT NOT NULL,
		status TEXT NOT NULL DEFAULT 'new',
		price NUMERIC NOT NULL,
		type_id INTEGER NOT NULL,
		age_category_id INTEGER NOT NULL,
		deadline DATETIME,
		created_at DATETIME
	);`).Error)
	return repositories.NewPersonalOrderRepository(db)
}

func TestOrderExpiryJob_SweepCancelsOverdueUnpaidOrders(t *testing.T) {
	repo := newJobTestRepo(t)
	ctx := context.Background()

	overdue := &entities.PersonalOrder{
		UserID: 1, Title: "Overdue", Description: "d", Status: entities.OrderStatusAwaitingPayment,
		Price: 10, TypeID: 1, AgeCategoryID: 1, Deadline: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, overdue))

	current := &entities.PersonalOrder{
		UserID: 1, Title: "Current", Description: "d", Status: entities.OrderStatusAwaitingPayment,
		Price: 10, TypeID: 1, AgeCategoryID: 1, Deadline: time.Now().Add(time.Hour),
	}
	require.NoError(t, repo.Create(ctx, current))

	inProgress := &entities.PersonalOrder{
		UserID: 1, Title: "Working", Description: "d", Status: entities.OrderStatusInProgress,
		Price: 10, TypeID: 1, AgeCategoryID: 1, Deadline: time.Now().Add(-time.Hour),
	}
	require.NoError(t, repo.Create(ctx, inProgress))

	job := NewOrderExpiryJob(repo)
	job.sweep(ctx)

	got, err := repo.GetByID(ctx, overdue.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusCancelledBySystem, got.Status)

	got, err = repo.GetByID(ctx, current.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusAwaitingPayment, got.Status)

	got, err = repo.GetByID(ctx, inProgress.ID)
	require.NoError(t, err)
	require.Equal(t, entities.OrderStatusInProgress, got.Status)
}

func TestOrderExpiryJob_StopEndsLoop(t *testing.T) {
	repo := newJobTestRepo(t)
	job := NewOrderExpiryJob(repo)

	done := make(chan struct{})
	go func() {
		job.Start(context.Background())
		close(done)
	}()

	job.Stop()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("job did not stop")
	}
}
