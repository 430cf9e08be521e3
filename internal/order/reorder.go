package order

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AddFunc adds one article to the cart of identity.
type AddFunc func(ctx context.Context, identity domain.Identity, articleID uuid.UUID) error

// CountRefresher republishes the cart count of the current identity.
type CountRefresher interface {
	Refresh(ctx context.Context) (domain.Cart, error)
}

// Coordinator re-submits the lines of a past order as cart additions.
//
// Submissions are dispatched one stagger interval apart and may settle in any order.
// The aggregate is reported only after every dispatched call settled, and the cart count is
// refreshed once when anything was added. Overlapping reorders are independent of each other.
type Coordinator struct {
	stagger     time.Duration
	maxInFlight int
	refresher   CountRefresher
	logger      *zap.Logger
}

// NewCoordinator builds a Coordinator. maxInFlight <= 0 leaves in-flight calls unbounded.
func NewCoordinator(stagger time.Duration, maxInFlight int, refresher CountRefresher, logger *zap.Logger) *Coordinator {
	return &Coordinator{
		stagger:     stagger,
		maxInFlight: maxInFlight,
		refresher:   refresher,
		logger:      logger,
	}
}

// Reorder submits one add per line. Failed additions are counted, never escalated; the
// returned error only reports a failed count refresh, in which case the result is still valid.
// If ctx ends while waiting to dispatch, the undispatched lines count as failed.
func (c *Coordinator) Reorder(ctx context.Context, identity domain.Identity, lines []domain.CartItem, add AddFunc) (domain.ReorderResult, error) {
	if len(lines) == 0 {
		return domain.ReorderResult{}, nil
	}

	logger := c.logger.With(zap.String("reorder_id", uuid.NewString()), zap.String("user_id", identity.ID))
	logger.Info("reorder started", zap.Int("lines", len(lines)))

	var (
		succeeded atomic.Int64
		failed    atomic.Int64
		g         errgroup.Group
	)
	if c.maxInFlight > 0 {
		g.SetLimit(c.maxInFlight)
	}

	for i, line := range lines {
		if i > 0 {
			if err := c.wait(ctx); err != nil {
				skipped := len(lines) - i
				failed.Add(int64(skipped))
				logger.Warn("reorder dispatch stopped", zap.Int("skipped", skipped), zap.Error(err))
				break
			}
		}

		g.Go(func() error {
			if err := add(ctx, identity, line.ArticleID); err != nil {
				failed.Add(1)
				logger.Warn("reorder line failed",
					zap.Int("line", i),
					zap.String("article_id", line.ArticleID.String()),
					zap.Error(err))
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}

	// outcomes are recorded inside the goroutines; Wait never reports an error
	_ = g.Wait()

	result := domain.ReorderResult{
		Succeeded: int(succeeded.Load()),
		Failed:    int(failed.Load()),
	}
	logger.Info("reorder settled", zap.Int("succeeded", result.Succeeded), zap.Int("failed", result.Failed))

	if result.Succeeded > 0 && c.refresher != nil {
		if _, err := c.refresher.Refresh(ctx); err != nil {
			return result, fmt.Errorf("refresher.Refresh: %w", err)
		}
	}

	return result, nil
}

func (c *Coordinator) wait(ctx context.Context) error {
	if c.stagger <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(c.stagger)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
