package repository_test

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func insertCategory(t *testing.T, pool *pgxpool.Pool, name string) domain.Category {
	t.Helper()

	var id int64
	err := pool.QueryRow(t.Context(), "INSERT INTO categories (name) VALUES ($1) RETURNING id", name).Scan(&id)
	require.NoError(t, err)

	return domain.Category{ID: id, Name: name}
}

func insertArticle(t *testing.T, pool *pgxpool.Pool, categoryID int64) domain.Article {
	t.Helper()

	article := domain.Article{
		ID:          uuid.MustParse(gofakeit.UUID()),
		CategoryID:  categoryID,
		State:       gofakeit.RandomString([]string{"new", "good", "used"}),
		Description: gofakeit.ProductName(),
		Price:       randomMoney(),
		Available:   true,
	}

	_, err := pool.Exec(t.Context(),
		`INSERT INTO articles (id, category_id, state, description, price_amount, price_currency, available)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		article.ID, article.CategoryID, article.State, article.Description,
		article.Price.Amount, article.Price.Currency.String(), article.Available)
	require.NoError(t, err)

	return article
}

func truncateAll(ctx context.Context, pool *pgxpool.Pool) error {
	_, err := pool.Exec(ctx, "TRUNCATE TABLE cart_items, carts, articles, categories RESTART IDENTITY CASCADE")
	return err
}

func randomMoney() domain.Money {
	return domain.Money{
		Amount:   decimal.NewFromFloat(gofakeit.Price(1, 100)).Round(2),
		Currency: randomCurrency(),
	}
}

func randomCurrency() currency.Unit {
	var (
		result currency.Unit
		err    error
	)

	for {
		// tag is not a recognized currency
		result, err = currency.ParseISO(gofakeit.CurrencyShort())
		if err == nil {
			break
		}
	}

	return result
}

func cartItemOf(article domain.Article) domain.CartItem {
	return domain.CartItem{
		CategoryID: article.CategoryID,
		ArticleID:  article.ID,
		Price:      article.Price,
		State:      article.State,
	}
}

var (
	currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
		return x.String() == y.String()
	})
	decimalComparer = cmp.Comparer(func(x, y decimal.Decimal) bool {
		return x.Equal(y)
	})
)

func assertCartItems(t *testing.T, expected, actual []domain.CartItem) {
	t.Helper()

	opts := cmp.Options{
		cmpopts.IgnoreFields(domain.CartItem{}, "CreatedAt"),
		cmpopts.EquateEmpty(),
		currencyComparer,
		decimalComparer,
	}

	diff := cmp.Diff(expected, actual, opts)
	assert.Empty(t, diff)

	for _, item := range actual {
		assert.False(t, item.CreatedAt.IsZero())
	}
}
