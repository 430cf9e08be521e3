package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type OrderRepository interface {
	// GetOrder returns domain.ErrOrderNotFound for unknown or not yet checked out carts.
	GetOrder(ctx context.Context, orderID int64) (domain.Order, error)
	ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error)
	ListAllOrders(ctx context.Context) ([]domain.Order, error)
	// UpdateStatus succeeds only while the stored status still equals from.
	UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error)
}
