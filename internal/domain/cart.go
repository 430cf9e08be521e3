package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cart is a point-in-time view of the active (not yet checked out) cart of an owner.
type Cart struct {
	ID      int64
	OwnerID string
	Items   []CartItem
}

// ItemCount is the scalar projection republished to cart count observers.
func (c Cart) ItemCount() int {
	return len(c.Items)
}

type CartItem struct {
	CategoryID int64
	ArticleID  uuid.UUID
	Price      Money
	State      string

	CreatedAt time.Time
}
