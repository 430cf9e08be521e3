package catalog

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/nikolayk812/storefront/internal/port"
	"go.uber.org/zap"
)

// Service loads the catalog from its collaborator and resolves labels against it.
// The loaded catalog is replaced wholesale on Load and never mutated in place.
type Service struct {
	repo    port.CatalogRepository
	aliases AliasTable
	logger  *zap.Logger

	mu         sync.RWMutex
	categories []domain.Category
	loaded     bool
}

func NewService(repo port.CatalogRepository, aliases AliasTable, logger *zap.Logger) *Service {
	return &Service{
		repo:    repo,
		aliases: aliases,
		logger:  logger,
	}
}

// Load fetches the current categories and swaps them in.
func (s *Service) Load(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.repo.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: repo.ListCategories: %w", domain.ErrTransport, err)
	}

	s.mu.Lock()
	s.categories = categories
	s.loaded = true
	s.mu.Unlock()

	s.logger.Debug("catalog loaded", zap.Int("categories", len(categories)))

	return slices.Clone(categories), nil
}

// Categories returns the loaded catalog, loading it on first use.
func (s *Service) Categories(ctx context.Context) ([]domain.Category, error) {
	s.mu.RLock()
	categories, loaded := s.categories, s.loaded
	s.mu.RUnlock()

	if !loaded {
		return s.Load(ctx)
	}

	return slices.Clone(categories), nil
}

// Resolve matches label against the catalog. A miss is reported through ok, never as an error;
// errors are transport failures of the catalog load.
func (s *Service) Resolve(ctx context.Context, label string) (Match, bool, error) {
	categories, err := s.Categories(ctx)
	if err != nil {
		return Match{}, false, err
	}

	match, ok := Resolve(label, categories, s.aliases)
	if !ok {
		s.logger.Warn("no category for label", zap.String("label", label), zap.Int("categories", len(categories)))
		return Match{}, false, nil
	}

	s.logger.Debug("label resolved",
		zap.String("label", label),
		zap.Int64("category_id", match.Category.ID),
		zap.String("rule", string(match.Rule)),
		zap.String("via", match.Via))

	return match, true, nil
}

// Articles resolves label and lists the articles of the matched category.
func (s *Service) Articles(ctx context.Context, label string) (Match, []domain.Article, bool, error) {
	match, ok, err := s.Resolve(ctx, label)
	if err != nil || !ok {
		return Match{}, nil, ok, err
	}

	articles, err := s.repo.ListArticles(ctx, match.Category.ID)
	if err != nil {
		return Match{}, nil, false, fmt.Errorf("%w: repo.ListArticles: %w", domain.ErrTransport, err)
	}

	return match, articles, true, nil
}
