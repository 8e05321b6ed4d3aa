package service

import (
	"context"
	"errors"
	"net/url"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/multitool_api/internal/models"
	"github.com/GTDGit/multitool_api/internal/utils"
)

func catalog() *memStore {
	dell := product(1, "Dell XPS Laptop", 1299.99, "electronics", true)
	dell.Description = "13-inch ultrabook with OLED display"
	dell.SubCategory = strPtr("Laptop")
	dell.Brand = strPtr("Dell")
	dell.Tags = "laptop,ultrabook,dell"

	gucci := product(2, "Gucci Dress", 2500, "fashion", true)
	gucci.Description = "Silk evening dress"
	gucci.SubCategory = strPtr("Dress")
	gucci.Brand = strPtr("Gucci")
	gucci.Tags = "dress,silk,luxury"

	bag := product(3, "Laptop Sleeve", 29.5, "fashion", false)
	bag.Description = "Neoprene sleeve for 13-inch notebooks"
	bag.Tags = "sleeve,accessory"

	return newMemStore(dell, gucci, bag)
}

func ids(products []models.Product) []int {
	out := make([]int, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	sort.Ints(out)
	return out
}

func TestProductService_Search_KeywordScenario(t *testing.T) {
	svc := NewProductService(catalog())

	filter, page := ParseSearchQuery(url.Values{"keyword": {"laptop"}, "category": {"electronics"}})
	res, err := svc.Search(context.Background(), filter, page)
	require.NoError(t, err)

	require.Len(t, res.Products, 1)
	assert.Equal(t, "Dell XPS Laptop", res.Products[0].Name)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 10, TotalItems: 1, TotalPages: 1}, res.Pagination)
}

func TestProductService_Search_DellGucciScenario(t *testing.T) {
	store := newMemStore(
		product(1, "Dell XPS Laptop", 999.99, "electronics", true),
		product(2, "Gucci Dress", 250, "fashion", false),
	)
	svc := NewProductService(store)
	ctx := context.Background()

	f, p := ParseSearchQuery(url.Values{"keyword": {"laptop"}})
	res, err := svc.Search(ctx, f, p)
	require.NoError(t, err)
	require.Len(t, res.Products, 1)
	assert.Equal(t, "Dell XPS Laptop", res.Products[0].Name)

	f, p = ParseSearchQuery(url.Values{"category": {"fashion"}, "inStock": {"true"}})
	res, err = svc.Search(ctx, f, p)
	require.NoError(t, err)
	assert.Empty(t, res.Products)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 10}, res.Pagination)
}

// memStore mirrors ILIKE with lower-cased substring matching. The SQL the
// Postgres store runs is pinned by TestProductQuery_KeywordCaseIsLeftToILIKE.
func TestProductService_Search_KeywordIsCaseInsensitive(t *testing.T) {
	svc := NewProductService(catalog())

	res, err := svc.Search(context.Background(), models.ProductFilter{Keyword: "LAPTOP"}, models.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, ids(res.Products))

	// Category is an exact match.
	res, err = svc.Search(context.Background(), models.ProductFilter{Category: "Electronics"}, models.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Empty(t, res.Products)
}

func TestProductService_Search_KeywordMatchesTags(t *testing.T) {
	svc := NewProductService(catalog())

	res, err := svc.Search(context.Background(), models.ProductFilter{Keyword: "luxury"}, models.NewPageRequest(1, 10))
	require.NoError(t, err)
	assert.Equal(t, []int{2}, ids(res.Products))
}

func TestProductService_Search_InclusivePriceBounds(t *testing.T) {
	store := newMemStore(
		product(1, "Budget Earbuds", 99.99, "electronics", true),
		product(2, "Bluetooth Speaker", 100, "electronics", true),
		product(3, "Smart Watch", 349, "electronics", true),
		product(4, "Tablet", 500, "electronics", true),
		product(5, "Camera", 500.01, "electronics", true),
		product(6, "Leather Jacket", 300, "fashion", true),
	)
	svc := NewProductService(store)

	filter, page := ParseSearchQuery(url.Values{"category": {"electronics"}, "minPrice": {"100"}, "maxPrice": {"500"}})
	res, err := svc.Search(context.Background(), filter, page)
	require.NoError(t, err)

	assert.Equal(t, []int{2, 3, 4}, ids(res.Products))
	for _, p := range res.Products {
		assert.Equal(t, "electronics", p.Category)
		assert.GreaterOrEqual(t, p.Price, 100.0)
		assert.LessOrEqual(t, p.Price, 500.0)
	}
}

func TestProductService_Search_InStock(t *testing.T) {
	svc := NewProductService(catalog())
	ctx := context.Background()

	f, p := ParseSearchQuery(url.Values{"inStock": {"true"}})
	res, err := svc.Search(ctx, f, p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, ids(res.Products))

	f, p = ParseSearchQuery(url.Values{"inStock": {"false"}})
	res, err = svc.Search(ctx, f, p)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, ids(res.Products))

	f, p = ParseSearchQuery(url.Values{})
	res, err = svc.Search(ctx, f, p)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, ids(res.Products))
}

func TestProductService_Search_OrderAndPaging(t *testing.T) {
	var products []models.Product
	for i := 1; i <= 25; i++ {
		products = append(products, product(i, "Yoga Mat", 20, "sports", true))
	}
	svc := NewProductService(newMemStore(products...))

	res, err := svc.Search(context.Background(), models.ProductFilter{}, models.NewPageRequest(3, 10))
	require.NoError(t, err)

	require.Len(t, res.Products, 5)
	assert.Equal(t, 5, res.Products[0].ID, "newest first")
	assert.Equal(t, 1, res.Products[4].ID)
	assert.Equal(t, models.Pagination{Page: 3, Limit: 10, TotalItems: 25, TotalPages: 3, HasPrevPage: true}, res.Pagination)
}

func TestProductService_Search_EmptyResult(t *testing.T) {
	svc := NewProductService(catalog())

	res, err := svc.Search(context.Background(), models.ProductFilter{Keyword: "submarine"}, models.NewPageRequest(1, 10))
	require.NoError(t, err)

	assert.NotNil(t, res.Products)
	assert.Empty(t, res.Products)
	assert.Equal(t, models.Pagination{Page: 1, Limit: 10}, res.Pagination)
}

func TestProductService_Search_PageBeyondEnd(t *testing.T) {
	svc := NewProductService(catalog())

	res, err := svc.Search(context.Background(), models.ProductFilter{}, models.NewPageRequest(9, 10))
	require.NoError(t, err)

	assert.Empty(t, res.Products)
	assert.Equal(t, 3, res.Pagination.TotalItems)
	assert.False(t, res.Pagination.HasNextPage)
	assert.True(t, res.Pagination.HasPrevPage)
}

func TestProductService_Search_StoreFailure(t *testing.T) {
	store := catalog()
	store.err = errors.New("connection refused")
	svc := NewProductService(store)

	res, err := svc.Search(context.Background(), models.ProductFilter{}, models.NewPageRequest(1, 10))
	assert.Nil(t, res)
	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
	assert.Contains(t, err.Error(), "connection refused")
}

// Both entry points must select the same rows for equivalent filters.
func TestProductService_RESTAndToolAgree(t *testing.T) {
	store := newMemStore(
		product(1, "Wireless Earbuds", 59, "electronics", true),
		product(2, "Wired Earbuds", 15, "electronics", true),
		product(3, "Earbud Case", 9, "electronics", false),
		product(4, "Studio Headphones", 199, "electronics", true),
		product(5, "Kids Earbuds", 25, "toys", true),
	)
	store.products[0].Tags = "earbuds,wireless"
	svc := NewProductService(store)
	ctx := context.Background()

	min, max, stock := 10.0, 100.0, true
	cases := []ToolQuery{
		{Keyword: "earbud"},
		{Keyword: "EARBUDS", Category: "electronics"},
		{Keyword: "earbud", MinPrice: &min, MaxPrice: &max},
		{Keyword: "earbud", InStock: &stock},
		{Keyword: "wireless", Category: "toys"},
	}
	for _, tq := range cases {
		values := url.Values{"keyword": {tq.Keyword}, "limit": {"20"}}
		if tq.Category != "" {
			values.Set("category", tq.Category)
		}
		if tq.MinPrice != nil {
			values.Set("minPrice", "10")
		}
		if tq.MaxPrice != nil {
			values.Set("maxPrice", "100")
		}
		if tq.InStock != nil {
			values.Set("inStock", "true")
		}

		filter, page := ParseSearchQuery(values)
		rest, err := svc.Search(ctx, filter, page)
		require.NoError(t, err)

		tq.Limit = 20
		text, err := svc.SearchForTool(ctx, tq)
		require.NoError(t, err)

		toolFilter, err := tq.Filter()
		require.NoError(t, err)
		assert.Equal(t, filter, toolFilter, "filters diverge for %+v", tq)

		if len(rest.Products) == 0 {
			assert.Equal(t, NoProductsMessage, text)
			continue
		}
		assert.Equal(t, RenderProducts(rest.Products), text)
	}
}

func TestProductService_SearchForTool(t *testing.T) {
	ctx := context.Background()

	t.Run("keyword required", func(t *testing.T) {
		store := catalog()
		_, err := NewProductService(store).SearchForTool(ctx, ToolQuery{})
		assert.ErrorIs(t, err, ErrKeywordRequired)
		assert.Zero(t, store.searches)
	})

	t.Run("default limit five", func(t *testing.T) {
		var products []models.Product
		for i := 1; i <= 8; i++ {
			products = append(products, product(i, "Desk Lamp", 30, "home", true))
		}
		text, err := NewProductService(newMemStore(products...)).SearchForTool(ctx, ToolQuery{Keyword: "lamp"})
		require.NoError(t, err)
		assert.Equal(t, 5, strings.Count(text, "**Desk Lamp**"))
	})

	t.Run("limit capped at twenty", func(t *testing.T) {
		var products []models.Product
		for i := 1; i <= 30; i++ {
			products = append(products, product(i, "Desk Lamp", 30, "home", true))
		}
		text, err := NewProductService(newMemStore(products...)).SearchForTool(ctx, ToolQuery{Keyword: "lamp", Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, 20, strings.Count(text, "**Desk Lamp**"))
	})

	t.Run("no match fallback", func(t *testing.T) {
		text, err := NewProductService(catalog()).SearchForTool(ctx, ToolQuery{Keyword: "submarine"})
		require.NoError(t, err)
		assert.Equal(t, NoProductsMessage, text)
	})

	t.Run("store failure", func(t *testing.T) {
		store := catalog()
		store.err = errors.New("timeout")
		_, err := NewProductService(store).SearchForTool(ctx, ToolQuery{Keyword: "laptop"})
		assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
	})
}

func TestRenderProducts(t *testing.T) {
	dell := product(1, "Dell XPS Laptop", 1299.99, "electronics", true)
	dell.SubCategory = strPtr("Laptop")
	dell.Brand = strPtr("Dell")
	dell.Rating = 4.8
	dell.Description = "13-inch ultrabook"

	sleeve := product(2, "Laptop Sleeve", 29.5, "fashion", false)
	sleeve.Rating = 4
	sleeve.Description = strings.Repeat("a", 160)

	got := RenderProducts([]models.Product{dell, sleeve})
	want := "**Dell XPS Laptop** - $1299.99\n" +
		"Category: electronics > Laptop\n" +
		"Brand: Dell | Rating: 4.8/5 | Stock: ✓ Available\n" +
		"13-inch ultrabook" +
		"\n\n---\n\n" +
		"**Laptop Sleeve** - $29.50\n" +
		"Category: fashion\n" +
		"Brand: N/A | Rating: 4/5 | Stock: ✗ Out of Stock\n" +
		strings.Repeat("a", 150) + "..."
	assert.Equal(t, want, got)

	assert.Equal(t, NoProductsMessage, RenderProducts(nil))
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "héllo", truncateRunes("héllo", 5))
	assert.Equal(t, "hé...", truncateRunes("héllo", 2))
	assert.Equal(t, "", truncateRunes("", 3))
}

func TestProductService_Categories(t *testing.T) {
	svc := NewProductService(catalog())

	res, err := svc.Categories(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
	assert.Equal(t, []models.CategoryCount{{Name: "electronics", Count: 1}, {Name: "fashion", Count: 2}}, res.Categories)

	store := newMemStore()
	store.err = errors.New("down")
	_, err = NewProductService(store).Categories(context.Background())
	assert.ErrorIs(t, err, utils.ErrStoreUnavailable)
}

func TestProductService_Ping(t *testing.T) {
	assert.NoError(t, NewProductService(catalog()).Ping(context.Background()))

	store := newMemStore()
	store.err = errors.New("down")
	assert.ErrorIs(t, NewProductService(store).Ping(context.Background()), utils.ErrStoreUnavailable)
}
