package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/nikolayk812/storefront/internal/cart"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// CartRefresher republishes the active cart count after an identity change.
type CartRefresher interface {
	Refresh(ctx context.Context) (domain.Cart, error)
}

// Manager owns identity transitions. Whenever the identity changes it zeroes the cart count
// before publishing the new identity.
type Manager struct {
	store     *Store
	counts    *cart.CountStore
	persisted port.IdentityStore
	refresher CartRefresher
	logger    *zap.Logger

	mu       sync.Mutex
	pending  []*domain.Identity
	applying bool
}

func NewManager(store *Store, counts *cart.CountStore, persisted port.IdentityStore, refresher CartRefresher, logger *zap.Logger) *Manager {
	return &Manager{
		store:     store,
		counts:    counts,
		persisted: persisted,
		refresher: refresher,
		logger:    logger,
	}
}

// Restore loads the persisted identity, if any, into the store. It runs once at start.
func (m *Manager) Restore(ctx context.Context) (*domain.Identity, error) {
	identity, err := m.persisted.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: persisted.Load: %w", domain.ErrTransport, err)
	}

	m.transition(identity)

	if identity == nil {
		m.logger.Debug("no persisted identity")
		return nil, nil
	}

	m.logger.Info("session restored", zap.String("user_id", identity.ID))
	m.refresh(ctx)

	return m.store.Identity(), nil
}

// Login persists identity and makes it current. Authentication itself happens upstream.
func (m *Manager) Login(ctx context.Context, identity domain.Identity) error {
	if identity.ID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	if err := m.persisted.Save(ctx, identity); err != nil {
		return fmt.Errorf("%w: persisted.Save: %w", domain.ErrTransport, err)
	}

	m.transition(&identity)
	m.logger.Info("logged in", zap.String("user_id", identity.ID), zap.String("role", string(identity.Role)))

	m.refresh(ctx)

	return nil
}

// Logout signs out locally even when clearing the persisted record fails; that failure is returned.
func (m *Manager) Logout(ctx context.Context) error {
	previous := m.store.Identity()
	m.transition(nil)

	if previous != nil {
		m.logger.Info("logged out", zap.String("user_id", previous.ID))
	}

	if err := m.persisted.Clear(ctx); err != nil {
		return fmt.Errorf("%w: persisted.Clear: %w", domain.ErrTransport, err)
	}

	return nil
}

// transition queues next and applies queued transitions in order. Only one goroutine applies
// at a time and m.mu is not held while observers run, so an observer may call Login or Logout;
// its transition is applied right after the one being delivered.
func (m *Manager) transition(next *domain.Identity) {
	m.mu.Lock()
	m.pending = append(m.pending, next)
	if m.applying {
		m.mu.Unlock()
		return
	}
	m.applying = true

	defer func() {
		if r := recover(); r != nil {
			m.mu.Lock()
			m.pending = nil
			m.applying = false
			m.mu.Unlock()
			panic(r)
		}
	}()

	for len(m.pending) > 0 {
		identity := m.pending[0]
		m.pending = m.pending[1:]
		m.mu.Unlock()

		if !domain.SameIdentity(m.store.Identity(), identity) || m.counts.Owner() != ownerID(identity) {
			m.counts.Reset(ownerID(identity))
		}
		m.store.SetIdentity(identity)

		m.mu.Lock()
	}

	m.pending = nil
	m.applying = false
	m.mu.Unlock()
}

func (m *Manager) refresh(ctx context.Context) {
	if m.refresher == nil {
		return
	}
	if _, err := m.refresher.Refresh(ctx); err != nil {
		m.logger.Warn("cart count refresh failed", zap.Error(err))
	}
}

func ownerID(identity *domain.Identity) string {
	if identity == nil {
		return ""
	}
	return identity.ID
}
