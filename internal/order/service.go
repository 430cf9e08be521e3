// Package order covers checked-out carts: order history, reordering and the admin status
// workflow.
package order

import (
	"context"
	"errors"
	"fmt"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

type Service struct {
	repo        port.OrderRepository
	coordinator *Coordinator
	add         AddFunc
	logger      *zap.Logger
}

func NewService(repo port.OrderRepository, coordinator *Coordinator, add AddFunc, logger *zap.Logger) *Service {
	return &Service{
		repo:        repo,
		coordinator: coordinator,
		add:         add,
		logger:      logger,
	}
}

// History lists the orders of identity, newest first.
func (s *Service) History(ctx context.Context, identity domain.Identity) ([]domain.Order, error) {
	if identity.ID == "" {
		return nil, domain.ErrNoIdentity
	}

	orders, err := s.repo.ListOrders(ctx, identity.ID)
	if err != nil {
		return nil, fmt.Errorf("%w: repo.ListOrders: %w", domain.ErrTransport, err)
	}

	return orders, nil
}

// Reorder adds every line of one of identity's past orders back to the cart.
func (s *Service) Reorder(ctx context.Context, identity domain.Identity, orderID int64) (domain.ReorderResult, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.ReorderResult{}, err
	}
	if order.OwnerID != identity.ID {
		return domain.ReorderResult{}, fmt.Errorf("%w: %d", domain.ErrOrderNotFound, orderID)
	}

	return s.coordinator.Reorder(ctx, identity, order.Items, s.add)
}

// Advance moves an order to target, which must be the immediate successor of its status.
func (s *Service) Advance(ctx context.Context, orderID int64, target domain.OrderStatus) (domain.Order, error) {
	order, err := s.getOrder(ctx, orderID)
	if err != nil {
		return domain.Order{}, err
	}

	if err := domain.ValidateTransition(order.Status, target); err != nil {
		s.logger.Warn("status change rejected",
			zap.Int64("order_id", orderID),
			zap.String("from", string(order.Status)),
			zap.String("to", string(target)))
		return domain.Order{}, err
	}

	updated, err := s.repo.UpdateStatus(ctx, orderID, order.Status, target)
	if err != nil {
		return domain.Order{}, fmt.Errorf("%w: repo.UpdateStatus: %w", domain.ErrTransport, err)
	}
	if !updated {
		return domain.Order{}, fmt.Errorf("%w: order %d is no longer %s", domain.ErrInvalidTransition, orderID, order.Status)
	}

	s.logger.Info("order status changed",
		zap.Int64("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(target)))

	order.Status = target
	return order, nil
}

// Stats counts orders per status and sums their totals.
func (s *Service) Stats(ctx context.Context) (domain.OrderStats, error) {
	orders, err := s.repo.ListAllOrders(ctx)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("%w: repo.ListAllOrders: %w", domain.ErrTransport, err)
	}

	stats := domain.OrderStats{
		TotalOrders: len(orders),
		ByStatus:    make(map[domain.OrderStatus]int),
	}
	for _, status := range domain.OrderStatuses() {
		stats.ByStatus[status] = 0
	}

	totals := make([]domain.Money, 0, len(orders))
	for _, o := range orders {
		stats.ByStatus[o.Status]++

		total, err := o.Total()
		if err != nil {
			return domain.OrderStats{}, fmt.Errorf("order %d total: %w", o.ID, err)
		}
		if len(o.Items) > 0 {
			totals = append(totals, total)
		}
	}

	stats.Revenue, err = domain.SumMoney(totals)
	if err != nil {
		return domain.OrderStats{}, fmt.Errorf("revenue: %w", err)
	}

	return stats, nil
}

func (s *Service) getOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	order, err := s.repo.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, domain.ErrOrderNotFound) {
			return domain.Order{}, err
		}
		return domain.Order{}, fmt.Errorf("%w: repo.GetOrder: %w", domain.ErrTransport, err)
	}
	return order, nil
}
