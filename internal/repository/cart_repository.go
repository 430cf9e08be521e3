package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/storefront/internal/db"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

type cartRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewCart(pool *pgxpool.Pool) port.CartRepository {
	return &cartRepository{
		q:    db.New(pool),
		pool: pool,
	}
}

func NewCartWithTx(tx pgx.Tx) port.CartRepository {
	return &cartRepository{
		q:    db.New(tx),
		pool: nil, // use provided transaction instead
	}
}

func (r *cartRepository) GetCart(ctx context.Context, ownerID string) (domain.Cart, error) {
	if ownerID == "" {
		return domain.Cart{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Cart, error) {
		cartID, err := q.EnsureActiveCart(ctx, ownerID)
		if err != nil {
			return domain.Cart{}, fmt.Errorf("q.EnsureActiveCart: %w", err)
		}

		items, err := getCartItems(ctx, q, cartID)
		if err != nil {
			return domain.Cart{}, err
		}

		return domain.Cart{
			ID:      cartID,
			OwnerID: ownerID,
			Items:   items,
		}, nil
	})
}

func (r *cartRepository) AddItem(ctx context.Context, ownerID string, articleID uuid.UUID) error {
	if ownerID == "" {
		return fmt.Errorf("ownerID is empty")
	}

	_, err := withTx(ctx, r.pool, r.q, func(q *db.Queries) (struct{}, error) {
		article, err := q.GetArticle(ctx, articleID)
		if errors.Is(err, pgx.ErrNoRows) {
			return struct{}{}, fmt.Errorf("article[%s]: %w", articleID, domain.ErrArticleNotFound)
		}
		if err != nil {
			return struct{}{}, fmt.Errorf("q.GetArticle: %w", err)
		}

		cartID, err := q.EnsureActiveCart(ctx, ownerID)
		if err != nil {
			return struct{}{}, fmt.Errorf("q.EnsureActiveCart: %w", err)
		}

		added, err := q.AddCartItem(ctx, db.AddCartItemParams{
			CartID:     cartID,
			CategoryID: article.CategoryID,
			ArticleID:  article.ID,
		})
		if err != nil {
			return struct{}{}, fmt.Errorf("q.AddCartItem: %w", err)
		}
		if added == 0 {
			return struct{}{}, fmt.Errorf("category[%d]: %w", article.CategoryID, domain.ErrAlreadyInCart)
		}

		return struct{}{}, nil
	})

	return err
}

func (r *cartRepository) DeleteItem(ctx context.Context, ownerID string, categoryID int64) (bool, error) {
	if ownerID == "" {
		return false, fmt.Errorf("ownerID is empty")
	}

	cartID, found, err := r.activeCartID(ctx, ownerID)
	if err != nil || !found {
		return false, err
	}

	rowsAffected, err := r.q.DeleteCartItem(ctx, db.DeleteCartItemParams{
		CartID:     cartID,
		CategoryID: categoryID,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteCartItem: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *cartRepository) Clear(ctx context.Context, ownerID string) (int64, error) {
	if ownerID == "" {
		return 0, fmt.Errorf("ownerID is empty")
	}

	cartID, found, err := r.activeCartID(ctx, ownerID)
	if err != nil || !found {
		return 0, err
	}

	rowsAffected, err := r.q.ClearCart(ctx, cartID)
	if err != nil {
		return 0, fmt.Errorf("q.ClearCart: %w", err)
	}

	return rowsAffected, nil
}

func (r *cartRepository) Checkout(ctx context.Context, ownerID string) (domain.Order, error) {
	if ownerID == "" {
		return domain.Order{}, fmt.Errorf("ownerID is empty")
	}

	return withTx(ctx, r.pool, r.q, func(q *db.Queries) (domain.Order, error) {
		cartID, err := q.GetActiveCartID(ctx, ownerID)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Order{}, domain.ErrEmptyCart
		}
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.GetActiveCartID: %w", err)
		}

		items, err := getCartItems(ctx, q, cartID)
		if err != nil {
			return domain.Order{}, err
		}
		if len(items) == 0 {
			return domain.Order{}, domain.ErrEmptyCart
		}

		if _, err := q.MarkCartArticlesUnavailable(ctx, cartID); err != nil {
			return domain.Order{}, fmt.Errorf("q.MarkCartArticlesUnavailable: %w", err)
		}

		row, err := q.CheckoutCart(ctx, cartID)
		if err != nil {
			return domain.Order{}, fmt.Errorf("q.CheckoutCart: %w", err)
		}

		return mapCartToOrder(row, items), nil
	})
}

func (r *cartRepository) activeCartID(ctx context.Context, ownerID string) (int64, bool, error) {
	cartID, err := r.q.GetActiveCartID(ctx, ownerID)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("q.GetActiveCartID: %w", err)
	}

	return cartID, true, nil
}

func getCartItems(ctx context.Context, q *db.Queries, cartID int64) ([]domain.CartItem, error) {
	rows, err := q.GetCartItems(ctx, cartID)
	if err != nil {
		return nil, fmt.Errorf("q.GetCartItems: %w", err)
	}

	items, err := mapGetCartItemsRowsToDomain(rows)
	if err != nil {
		return nil, fmt.Errorf("mapGetCartItemsRowsToDomain: %w", err)
	}

	return items, nil
}

func mapGetCartItemsRowToDomain(row db.GetCartItemsRow) (domain.CartItem, error) {
	price, err := mapMoney(row.PriceAmount, row.PriceCurrency)
	if err != nil {
		return domain.CartItem{}, err
	}

	return domain.CartItem{
		CategoryID: row.CategoryID,
		ArticleID:  row.ArticleID,
		Price:      price,
		State:      row.State,
		CreatedAt:  row.CreatedAt,
	}, nil
}

func mapGetCartItemsRowsToDomain(rows []db.GetCartItemsRow) ([]domain.CartItem, error) {
	var items []domain.CartItem

	for _, row := range rows {
		item, err := mapGetCartItemsRowToDomain(row)
		if err != nil {
			return nil, fmt.Errorf("mapGetCartItemsRowToDomain: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func mapMoney(amount decimal.Decimal, code string) (domain.Money, error) {
	parsedCurrency, err := currency.ParseISO(code)
	if err != nil {
		return domain.Money{}, fmt.Errorf("currency[%s] is not valid: %w", code, err)
	}

	return domain.Money{Amount: amount, Currency: parsedCurrency}, nil
}
