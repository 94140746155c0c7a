package jobs

import (
	"context"
	"time"

	"go.uber.org/zap"
	"muza-life.backend/internal/infrastructure/repositories"
	"muza-life.backend/pkg/logger"
)

// OrderExpiryJob cancels personal orders that sat in awaiting_payment past
// their deadline
type OrderExpiryJob struct {
	repo     *repositories.PersonalOrderRepository
	interval time.Duration
	stop     chan struct{}
}

// NewOrderExpiryJob creates a new order expiry job
func NewOrderExpiryJob(repo *repositories.PersonalOrderRepository) *OrderExpiryJob {
	return &OrderExpiryJob{
		repo:     repo,
		interval: time.Minute,
		stop:     make(chan struct{}),
	}
}

// Start runs the sweep loop until the context is cancelled or Stop is called
func (j *OrderExpiryJob) Start(ctx context.Context) {
	logger.Info(ctx, "starting order expiry job", zap.Duration("interval", j.interval))

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-j.stop:
			logger.Info(ctx, "order expiry job stopped")
			return
		case <-ticker.C:
			j.sweep(ctx)
		}
	}
}

// Stop signals the loop to exit
func (j *OrderExpiryJob) Stop() {
	close(j.stop)
}

func (j *OrderExpiryJob) sweep(ctx context.Context) {
	expired, err := j.repo.ExpireAwaitingPayment(ctx, time.Now())
	if err != nil {
		logger.Error(ctx, "order expiry sweep failed", zap.Error(err))
		return
	}
	if expired > 0 {
		logger.Info(ctx, "cancelled unpaid personal orders", zap.Int64("count", expired))
	}
}
