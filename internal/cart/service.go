package cart

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// IdentitySource yields the current session identity, nil when signed out.
type IdentitySource interface {
	Identity() *domain.Identity
}

// Service runs cart operations for the current identity and keeps the CountStore in sync
// with the snapshots it observes.
type Service struct {
	repo       port.CartRepository
	identities IdentitySource
	counts     *CountStore
	logger     *zap.Logger
}

func NewService(repo port.CartRepository, identities IdentitySource, counts *CountStore, logger *zap.Logger) *Service {
	return &Service{
		repo:       repo,
		identities: identities,
		counts:     counts,
		logger:     logger,
	}
}

// Refresh fetches the active cart and republishes its item count. A snapshot that arrives
// after the identity changed is returned but not published.
func (s *Service) Refresh(ctx context.Context) (domain.Cart, error) {
	identity, err := s.current()
	if err != nil {
		return domain.Cart{}, err
	}

	cart, err := s.repo.GetCart(ctx, identity.ID)
	if err != nil {
		return domain.Cart{}, fmt.Errorf("%w: repo.GetCart: %w", domain.ErrTransport, err)
	}

	s.publish(identity.ID, cart.ItemCount())

	return cart, nil
}

// AddItem adds an article to the cart of identity without touching the count.
func (s *Service) AddItem(ctx context.Context, identity domain.Identity, articleID uuid.UUID) error {
	if identity.ID == "" {
		return fmt.Errorf("identity ID is empty")
	}

	if err := s.repo.AddItem(ctx, identity.ID, articleID); err != nil {
		if errors.Is(err, domain.ErrAlreadyInCart) || errors.Is(err, domain.ErrArticleNotFound) {
			return err
		}
		return fmt.Errorf("%w: repo.AddItem: %w", domain.ErrTransport, err)
	}

	return nil
}

// Add adds an article to the current identity's cart and refreshes the count.
func (s *Service) Add(ctx context.Context, articleID uuid.UUID) (domain.Cart, error) {
	identity, err := s.current()
	if err != nil {
		return domain.Cart{}, err
	}

	if err := s.AddItem(ctx, identity, articleID); err != nil {
		return domain.Cart{}, err
	}

	return s.Refresh(ctx)
}

func (s *Service) Remove(ctx context.Context, categoryID int64) (bool, error) {
	identity, err := s.current()
	if err != nil {
		return false, err
	}

	removed, err := s.repo.DeleteItem(ctx, identity.ID, categoryID)
	if err != nil {
		return false, fmt.Errorf("%w: repo.DeleteItem: %w", domain.ErrTransport, err)
	}

	if removed {
		if _, err := s.Refresh(ctx); err != nil {
			return true, err
		}
	}

	return removed, nil
}

func (s *Service) Clear(ctx context.Context) error {
	identity, err := s.current()
	if err != nil {
		return err
	}

	if _, err := s.repo.Clear(ctx, identity.ID); err != nil {
		return fmt.Errorf("%w: repo.Clear: %w", domain.ErrTransport, err)
	}

	s.publish(identity.ID, 0)

	return nil
}

// Checkout turns the active cart into a PENDING order; the new active cart is empty.
func (s *Service) Checkout(ctx context.Context) (domain.Order, error) {
	identity, err := s.current()
	if err != nil {
		return domain.Order{}, err
	}

	order, err := s.repo.Checkout(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, domain.ErrEmptyCart) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("%w: repo.Checkout: %w", domain.ErrTransport, err)
	}

	s.publish(identity.ID, 0)

	s.logger.Info("cart checked out",
		zap.String("owner_id", identity.ID),
		zap.Int64("order_id", order.ID),
		zap.Int("items", len(order.Items)))

	return order, nil
}

func (s *Service) current() (domain.Identity, error) {
	identity := s.identities.Identity()
	if identity == nil {
		return domain.Identity{}, domain.ErrNoIdentity
	}
	return *identity, nil
}

func (s *Service) publish(ownerID string, count int) {
	published, err := s.counts.Publish(ownerID, count)
	if err != nil {
		s.logger.Error("cart count rejected", zap.String("owner_id", ownerID), zap.Error(err))
		return
	}
	if !published {
		s.logger.Debug("stale cart count dropped", zap.String("owner_id", ownerID), zap.Int("count", count))
	}
}
