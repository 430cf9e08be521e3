package port

import (
	"context"

	"github.com/nikolayk812/storefront/internal/domain"
)

type CatalogRepository interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	ListArticles(ctx context.Context, categoryID int64) ([]domain.Article, error)
}
