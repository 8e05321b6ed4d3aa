package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/GTDGit/multitool_api/internal/models"
	"github.com/GTDGit/multitool_api/internal/utils"
)

// NoProductsMessage is returned to the agent when a tool search matches nothing.
const NoProductsMessage = "No products found matching your criteria. Try broadening your search terms or adjusting filters."

// resultSeparator joins rendered tool results.
const resultSeparator = "\n\n---\n\n"

// ProductStore is the persistence boundary of the product service.
type ProductStore interface {
	Search(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]models.Product, error)
	Count(ctx context.Context, filter models.ProductFilter) (int, error)
	CountByCategory(ctx context.Context) ([]models.CategoryCount, error)
	Ping(ctx context.Context) error
}

// ProductService provides product search for both the REST API and the AI tool.
type ProductService struct {
	store ProductStore
}

// NewProductService constructs a ProductService.
func NewProductService(store ProductStore) *ProductService {
	return &ProductService{store: store}
}

// SearchResult is one page of products plus its pagination metadata.
type SearchResult struct {
	Products   []models.Product  `json:"products"`
	Pagination models.Pagination `json:"pagination"`
}

// CategoriesResult is the per-category product breakdown.
type CategoriesResult struct {
	Categories []models.CategoryCount `json:"categories"`
	Total      int                    `json:"total"`
}

// Search runs the count and the page fetch as two independent reads over the
// same filter. They are not snapshot-consistent with each other; a concurrent
// write may make totalItems disagree with the page by a few rows.
// Any store error fails the whole search with ErrStoreUnavailable.
func (s *ProductService) Search(ctx context.Context, filter models.ProductFilter, page models.PageRequest) (*SearchResult, error) {
	var (
		products []models.Product
		total    int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.store.Search(gctx, filter, page)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.store.Count(gctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrStoreUnavailable, err)
	}

	if products == nil {
		products = []models.Product{}
	}
	return &SearchResult{
		Products:   products,
		Pagination: models.NewPagination(page, total),
	}, nil
}

// SearchForTool runs the tool variant of the search: same filter semantics,
// no pagination, at most 20 rows, rendered as text for a language model.
func (s *ProductService) SearchForTool(ctx context.Context, q ToolQuery) (string, error) {
	filter, err := q.Filter()
	if err != nil {
		return "", err
	}

	start := time.Now()
	products, err := s.store.Search(ctx, filter, models.PageRequest{Page: 1, Limit: q.EffectiveLimit()})
	if err != nil {
		return "", fmt.Errorf("%w: %w", utils.ErrStoreUnavailable, err)
	}

	log.Info().
		Str("keyword", filter.Keyword).
		Int("results", len(products)).
		Dur("duration", time.Since(start)).
		Msg("search_products tool completed")

	return RenderProducts(products), nil
}

// Categories returns product counts per category, ascending by name.
func (s *ProductService) Categories(ctx context.Context) (*CategoriesResult, error) {
	rows, err := s.store.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", utils.ErrStoreUnavailable, err)
	}
	if rows == nil {
		rows = []models.CategoryCount{}
	}
	return &CategoriesResult{Categories: rows, Total: len(rows)}, nil
}

// Ping checks store connectivity.
func (s *ProductService) Ping(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", utils.ErrStoreUnavailable, err)
	}
	return nil
}

// RenderProducts formats products as readable paragraphs, or the fixed
// fallback sentence when there are none. It never returns an empty string.
func RenderProducts(products []models.Product) string {
	if len(products) == 0 {
		return NoProductsMessage
	}
	parts := make([]string, 0, len(products))
	for _, p := range products {
		parts = append(parts, renderProduct(p))
	}
	return strings.Join(parts, resultSeparator)
}

func renderProduct(p models.Product) string {
	var b strings.Builder

	fmt.Fprintf(&b, "**%s** - $%.2f\n", p.Name, p.Price)

	b.WriteString("Category: " + p.Category)
	if p.SubCategory != nil && *p.SubCategory != "" {
		b.WriteString(" > " + *p.SubCategory)
	}
	b.WriteString("\n")

	brand := "N/A"
	if p.Brand != nil && *p.Brand != "" {
		brand = *p.Brand
	}
	stock := "✗ Out of Stock"
	if p.InStock {
		stock = "✓ Available"
	}
	fmt.Fprintf(&b, "Brand: %s | Rating: %s/5 | Stock: %s\n",
		brand, strconv.FormatFloat(p.Rating, 'f', -1, 64), stock)

	b.WriteString(truncateRunes(p.Description, 150))
	return b.String()
}

// truncateRunes cuts s to n runes and appends "..." when anything was cut.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}
