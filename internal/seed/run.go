package seed

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/multitool_api/internal/models"
)

// BatchSize bounds the rows per INSERT so the statement stays under the
// PostgreSQL bind-parameter limit.
const BatchSize = 500

// Store is the persistence needed by Run.
type Store interface {
	DeleteAll(ctx context.Context) (int64, error)
	CreateBatch(ctx context.Context, products []models.Product) error
}

// Run replaces the whole catalog with n generated products.
func Run(ctx context.Context, store Store, gen *Generator, n int) error {
	if n < 0 {
		return fmt.Errorf("product count must be >= 0, got %d", n)
	}

	deleted, err := store.DeleteAll(ctx)
	if err != nil {
		return err
	}
	log.Info().Int64("deleted", deleted).Msg("cleared existing products")

	products := gen.Products(n)
	for start := 0; start < len(products); start += BatchSize {
		end := start + BatchSize
		if end > len(products) {
			end = len(products)
		}
		if err := store.CreateBatch(ctx, products[start:end]); err != nil {
			return fmt.Errorf("batch %d-%d: %w", start, end, err)
		}
	}

	log.Info().
		Int("products", len(products)).
		Int("categories", len(models.Categories)).
		Msg("database seeding completed")
	return nil
}
