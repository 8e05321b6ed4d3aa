package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/GTDGit/multitool_api/internal/models"
)

// ProductRepository handles data access for products.
type ProductRepository struct {
	db *sqlx.DB
}

// NewProductRepository creates a new ProductRepository.
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// Search returns one page of products matching filter, newest first.
func (r *ProductRepository) Search(ctx context.Context, filter models.ProductFilter, page models.PageRequest) ([]models.Product, error) {
	q, args := newProductQuery(filter).selectSQL(page)

	products := []models.Product{}
	if err := r.db.SelectContext(ctx, &products, q, args...); err != nil {
		return nil, fmt.Errorf("select products: %w", err)
	}
	return products, nil
}

// Count returns the number of products matching filter.
func (r *ProductRepository) Count(ctx context.Context, filter models.ProductFilter) (int, error) {
	q, args := newProductQuery(filter).countSQL()

	var total int
	if err := r.db.GetContext(ctx, &total, q, args...); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return total, nil
}

// CountByCategory returns one row per distinct category with its product
// count, ordered by category name ascending.
func (r *ProductRepository) CountByCategory(ctx context.Context) ([]models.CategoryCount, error) {
	const q = `
        SELECT category AS name, COUNT(1) AS count
        FROM products
        GROUP BY category
        ORDER BY category ASC`

	rows := []models.CategoryCount{}
	if err := r.db.SelectContext(ctx, &rows, q); err != nil {
		return nil, fmt.Errorf("count categories: %w", err)
	}
	return rows, nil
}

// Ping verifies the database answers a trivial query.
func (r *ProductRepository) Ping(ctx context.Context) error {
	var one int
	return r.db.GetContext(ctx, &one, `SELECT 1`)
}

// DeleteAll removes every product and returns the number of deleted rows.
func (r *ProductRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM products`)
	if err != nil {
		return 0, fmt.Errorf("delete products: %w", err)
	}
	return res.RowsAffected()
}

// CreateBatch inserts products in a single multi-row statement.
func (r *ProductRepository) CreateBatch(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}
	const q = `
        INSERT INTO products (name, description, price, category, sub_category, brand,
                              in_stock, rating, image_url, tags)
        VALUES (:name, :description, :price, :category, :sub_category, :brand,
                :in_stock, :rating, :image_url, :tags)`

	if _, err := r.db.NamedExecContext(ctx, q, products); err != nil {
		return fmt.Errorf("insert products: %w", err)
	}
	return nil
}
