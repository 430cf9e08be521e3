package main

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/config"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/order"
	"github.com/nikolayk812/storefront/internal/repository"
	"github.com/nikolayk812/storefront/internal/session"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// app is the component graph shared by all commands.
type app struct {
	cfg    config.Config
	logger *zap.Logger

	pool  *pgxpool.Pool
	redis *redis.Client

	identities *session.Store
	counts     *cart.CountStore

	session *session.Manager
	carts   *cart.Service
	catalog *catalog.Service
	orders  *order.Service

	unsubscribe []func()
}

func newApp(ctx context.Context, cfg config.Config, logger *zap.Logger) (*app, error) {
	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("pgxpool.New: %w", err)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
		DB:   cfg.RedisDB,
	})

	identities := session.NewStore()
	counts := cart.NewCountStore()

	carts := cart.NewService(repository.NewCart(pool), identities, counts, logger.Named("cart"))
	coordinator := order.NewCoordinator(cfg.ReorderStagger, cfg.ReorderMaxInFlight, carts, logger.Named("reorder"))

	a := &app{
		cfg:        cfg,
		logger:     logger,
		pool:       pool,
		redis:      rdb,
		identities: identities,
		counts:     counts,
		session: session.NewManager(identities, counts,
			repository.NewIdentityStore(rdb, cfg.SessionKey), carts, logger.Named("session")),
		carts:   carts,
		catalog: catalog.NewService(repository.NewCatalog(pool), catalog.DefaultAliases(), logger.Named("catalog")),
		orders:  order.NewService(repository.NewOrder(pool), coordinator, carts.AddItem, logger.Named("orders")),
	}

	a.unsubscribe = append(a.unsubscribe,
		identities.Subscribe(func(identity *domain.Identity) {
			if identity == nil {
				logger.Debug("identity changed", zap.Bool("signed_in", false))
				return
			}
			logger.Debug("identity changed", zap.Bool("signed_in", true), zap.String("user_id", identity.ID))
		}),
		counts.Subscribe(func(count int) {
			logger.Debug("cart count changed", zap.Int("count", count))
		}),
	)

	restoreCtx, cancel := a.withTimeout(ctx)
	defer cancel()

	if _, err := a.session.Restore(restoreCtx); err != nil {
		a.close()
		return nil, fmt.Errorf("session.Restore: %w", err)
	}

	return a, nil
}

func (a *app) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, a.cfg.RequestTimeout)
}

func (a *app) close() {
	for _, unsubscribe := range a.unsubscribe {
		unsubscribe()
	}
	if err := a.redis.Close(); err != nil {
		a.logger.Warn("redis close failed", zap.Error(err))
	}
	a.pool.Close()
}
