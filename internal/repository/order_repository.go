package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type orderRepository struct {
	q *db.Queries
}

func NewOrder(pool *pgxpool.Pool) port.OrderRepository {
	return &orderRepository{q: db.New(pool)}
}

func (r *orderRepository) GetOrder(ctx context.Context, orderID int64) (domain.Order, error) {
	row, err := r.q.GetOrder(ctx, orderID)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Order{}, fmt.Errorf("order[%d]: %w", orderID, domain.ErrOrderNotFound)
	}
	if err != nil {
		return domain.Order{}, fmt.Errorf("q.GetOrder: %w", err)
	}

	items, err := getCartItems(ctx, r.q, row.ID)
	if err != nil {
		return domain.Order{}, err
	}

	return mapCartToOrder(row, items), nil
}

func (r *orderRepository) ListOrders(ctx context.Context, ownerID string) ([]domain.Order, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	rows, err := r.q.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrdersByOwner: %w", err)
	}

	return r.withItems(ctx, rows)
}

func (r *orderRepository) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	rows, err := r.q.ListOrders(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListOrders: %w", err)
	}

	return r.withItems(ctx, rows)
}

func (r *orderRepository) UpdateStatus(ctx context.Context, orderID int64, from, to domain.OrderStatus) (bool, error) {
	rowsAffected, err := r.q.UpdateOrderStatus(ctx, db.UpdateOrderStatusParams{
		ToStatus:   pgtype.Text{String: string(to), Valid: true},
		ID:         orderID,
		FromStatus: pgtype.Text{String: string(from), Valid: true},
	})
	if err != nil {
		return false, fmt.Errorf("q.UpdateOrderStatus: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *orderRepository) withItems(ctx context.Context, rows []db.Cart) ([]domain.Order, error) {
	orders := make([]domain.Order, 0, len(rows))

	for _, row := range rows {
		items, err := getCartItems(ctx, r.q, row.ID)
		if err != nil {
			return nil, fmt.Errorf("order[%d]: %w", row.ID, err)
		}

		orders = append(orders, mapCartToOrder(row, items))
	}

	return orders, nil
}

// mapCartToOrder keeps unrecognized stored statuses as they are so they surface as unknown.
// A NULL status on a purchased cart reads as PENDING, as UpdateOrderStatus compares it.
func mapCartToOrder(row db.Cart, items []domain.CartItem) domain.Order {
	status := domain.OrderStatusPending
	if row.Status.Valid {
		status = domain.OrderStatus(row.Status.String)
	}

	return domain.Order{
		ID:          row.ID,
		OwnerID:     row.OwnerID,
		Status:      status,
		Items:       items,
		CreatedAt:   row.CreatedAt,
		PurchasedAt: row.PurchasedAt.Time,
	}
}
