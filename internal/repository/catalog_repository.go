package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
)

type catalogRepository struct {
	q *db.Queries
}

func NewCatalog(pool *pgxpool.Pool) port.CatalogRepository {
	return &catalogRepository{q: db.New(pool)}
}

func (r *catalogRepository) ListCategories(ctx context.Context) ([]domain.Category, error) {
	rows, err := r.q.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("q.ListCategories: %w", err)
	}

	categories := make([]domain.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, domain.Category{ID: row.ID, Name: row.Name})
	}

	return categories, nil
}

func (r *catalogRepository) ListArticles(ctx context.Context, categoryID int64) ([]domain.Article, error) {
	rows, err := r.q.ListArticlesByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("q.ListArticlesByCategory: %w", err)
	}

	articles := make([]domain.Article, 0, len(rows))
	for _, row := range rows {
		price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
		if err != nil {
			return nil, fmt.Errorf("article[%s]: %w", row.ID, err)
		}

		articles = append(articles, domain.Article{
			ID:          row.ID,
			CategoryID:  row.CategoryID,
			State:       row.State,
			Description: row.Description,
			Price:       price,
			Available:   row.Available,
		})
	}

	return articles, nil
}
