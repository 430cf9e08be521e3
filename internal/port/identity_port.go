package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

// IdentityStore persists the current session identity between process runs.
type IdentityStore interface {
	// Load returns nil without error when nothing is persisted.
	Load(ctx context.Context) (*domain.Identity, error)
	Save(ctx context.Context, identity domain.Identity) error
	Clear(ctx context.Context) error
}
