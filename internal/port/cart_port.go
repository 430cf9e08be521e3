package port

import (
	"context"

	"github.com/google/uuid"
	"github.com/nikolayk812/storefront/internal/domain"
)

type CartRepository interface {
	// GetCart returns the active cart of the owner, opening an empty one when none exists.
	GetCart(ctx context.Context, ownerID string) (domain.Cart, error)
	// AddItem returns domain.ErrAlreadyInCart when the article's category is already in the cart
	// and domain.ErrArticleNotFound for an unknown article. Availability is not checked, so a
	// past order can be added again.
	AddItem(ctx context.Context, ownerID string, articleID uuid.UUID) error
	DeleteItem(ctx context.Context, ownerID string, categoryID int64) (bool, error)
	Clear(ctx context.Context, ownerID string) (int64, error)
	// Checkout turns the active cart into a PENDING order.
	Checkout(ctx context.Context, ownerID string) (domain.Order, error)
}
