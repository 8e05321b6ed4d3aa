package service

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/GTDGit/multitool_api/internal/models"
)

// memStore is an in-memory ProductStore mirroring the SQL predicate:
// case-insensitive substring keyword over name/description/tags, exact
// category and sub-category, inclusive price bounds, newest first.
type memStore struct {
	mu       sync.Mutex
	products []models.Product
	err      error
	searches int
	counts   int
}

func newMemStore(products ...models.Product) *memStore {
	return &memStore{products: products}
}

func (m *memStore) match(f models.ProductFilter) []models.Product {
	var out []models.Product
	for _, p := range m.products {
		if f.Keyword != "" {
			kw := strings.ToLower(f.Keyword)
			if !strings.Contains(strings.ToLower(p.Name), kw) &&
				!strings.Contains(strings.ToLower(p.Description), kw) &&
				!strings.Contains(strings.ToLower(p.Tags), kw) {
				continue
			}
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		if f.SubCategory != "" && (p.SubCategory == nil || *p.SubCategory != f.SubCategory) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		if f.InStock != nil && p.InStock != *f.InStock {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out
}

func (m *memStore) Search(_ context.Context, f models.ProductFilter, page models.PageRequest) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searches++
	if m.err != nil {
		return nil, m.err
	}
	all := m.match(f)
	start := page.Offset()
	if start >= len(all) {
		return []models.Product{}, nil
	}
	end := start + page.Limit
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], nil
}

func (m *memStore) Count(_ context.Context, f models.ProductFilter) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts++
	if m.err != nil {
		return 0, m.err
	}
	return len(m.match(f)), nil
}

func (m *memStore) CountByCategory(_ context.Context) ([]models.CategoryCount, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	counts := map[string]int{}
	for _, p := range m.products {
		counts[p.Category]++
	}
	out := make([]models.CategoryCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, models.CategoryCount{Name: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *memStore) Ping(context.Context) error {
	return m.err
}

var baseTime = time.Date(2025, 11, 4, 10, 0, 0, 0, time.UTC)

func strPtr(s string) *string { return &s }

// product builds a fixture; later ids are created later.
func product(id int, name string, price float64, category string, inStock bool) models.Product {
	return models.Product{
		ID:        id,
		Name:      name,
		Price:     price,
		Category:  category,
		InStock:   inStock,
		Rating:    4.5,
		CreatedAt: baseTime.Add(time.Duration(id) * time.Minute),
		UpdatedAt: baseTime.Add(time.Duration(id) * time.Minute),
	}
}
