package domain

import (
	"fmt"
	"time"
)

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusPreparing OrderStatus = "PREPARING"
	OrderStatusDelivered OrderStatus = "DELIVERED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
)

// orderFlow is the only accepted progression; every status may only move to the next one.
var orderFlow = []OrderStatus{
	OrderStatusPending,
	OrderStatusPreparing,
	OrderStatusDelivered,
	OrderStatusCompleted,
}

// OrderStatuses returns the known statuses in workflow order.
func OrderStatuses() []OrderStatus {
	out := make([]OrderStatus, len(orderFlow))
	copy(out, orderFlow)
	return out
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return status, nil
}

func (s OrderStatus) Valid() bool {
	return s.index() >= 0
}

func (s OrderStatus) index() int {
	for i, v := range orderFlow {
		if v == s {
			return i
		}
	}
	return -1
}

// Next returns the immediate successor. ok is false for COMPLETED and unknown statuses.
func (s OrderStatus) Next() (next OrderStatus, ok bool) {
	i := s.index()
	if i < 0 || i == len(orderFlow)-1 {
		return "", false
	}
	return orderFlow[i+1], true
}

func (s OrderStatus) Terminal() bool {
	return s == OrderStatusCompleted
}

// CanTransition is true only when target immediately follows current.
// Same-state, backward, skip-ahead and unknown statuses are all rejected.
func CanTransition(current, target OrderStatus) bool {
	next, ok := current.Next()
	return ok && next == target
}

// ValidateTransition is CanTransition reporting the rejection as ErrInvalidTransition.
func ValidateTransition(current, target OrderStatus) error {
	if !CanTransition(current, target) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current, target)
	}
	return nil
}

// StatusLabel is presentation only. Unrecognized values get an explicit unknown label
// instead of being shown as pending.
func StatusLabel(s OrderStatus) string {
	switch s {
	case OrderStatusPending:
		return "⏳ Pending"
	case OrderStatusPreparing:
		return "🔧 Preparing"
	case OrderStatusDelivered:
		return "🚚 Delivered"
	case OrderStatusCompleted:
		return "✅ Completed"
	default:
		return fmt.Sprintf("❓ Unknown status (%s)", string(s))
	}
}

// Order is a checked-out cart.
type Order struct {
	ID      int64
	OwnerID string
	Status  OrderStatus
	Items   []CartItem

	CreatedAt   time.Time
	PurchasedAt time.Time
}

func (o Order) Total() (Money, error) {
	prices := make([]Money, 0, len(o.Items))
	for _, item := range o.Items {
		prices = append(prices, item.Price)
	}
	return SumMoney(prices)
}

// ReorderResult aggregates the outcome of re-adding every line of a past order.
type ReorderResult struct {
	Succeeded int
	Failed    int
}

func (r ReorderResult) Partial() bool {
	return r.Succeeded > 0 && r.Failed > 0
}

// OrderStats summarizes checked-out orders for the admin dashboard.
type OrderStats struct {
	TotalOrders int
	ByStatus    map[OrderStatus]int
	Revenue     Money
}
