package service

import (
	"encoding/json"
	"errors"
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/GTDGit/multitool_api/internal/models"
)

// Tool-path limits.
const (
	ToolDefaultLimit = 5
	ToolMaxLimit     = 20
)

// ParseSearchQuery normalizes raw query-string values into a filter and page
// request. Parsing is lenient: malformed or out-of-range values are clamped
// or dropped, never rejected.
//
//   - page: leading integer, < 1 or unparseable -> 1, capped at models.MaxPage
//   - limit: leading integer, unparseable -> 10, clamped to [1, 100]
//   - minPrice/maxPrice: float, absent or unparseable -> no bound on that side
//   - inStock: filters whenever the key is present; only "true" means true
//   - keyword/category/subCategory: used when non-empty
func ParseSearchQuery(values url.Values) (models.ProductFilter, models.PageRequest) {
	filter := models.ProductFilter{
		Keyword:     values.Get("keyword"),
		Category:    values.Get("category"),
		SubCategory: values.Get("subCategory"),
		MinPrice:    parsePrice(values.Get("minPrice")),
		MaxPrice:    parsePrice(values.Get("maxPrice")),
	}
	if values.Has("inStock") {
		inStock := values.Get("inStock") == "true"
		filter.InStock = &inStock
	}

	page := parseIntOr(values.Get("page"), models.DefaultPage)
	limit := parseIntOr(values.Get("limit"), models.DefaultLimit)
	return filter, models.NewPageRequest(page, limit)
}

// parseIntOr reads the leading integer of raw, so "2.5" and "20abc" give 2
// and 20. Input without leading digits yields def; out-of-range values
// saturate at the int bounds.
func parseIntOr(raw string, def int) int {
	s := strings.TrimSpace(raw)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return def
	}
	// The prefix is well formed, so Atoi can only fail with ErrRange, in
	// which case n already holds the saturated value.
	n, _ := strconv.Atoi(s[:end])
	return n
}

// parsePrice returns nil for empty, unparseable or non-finite input.
func parsePrice(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &f
}

// ToolQuery is the structured argument object of the search_products tool.
type ToolQuery struct {
	Keyword     string   `json:"keyword"`
	Category    string   `json:"category,omitempty"`
	SubCategory string   `json:"subCategory,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	InStock     *bool    `json:"inStock,omitempty"`
	Limit       LooseInt `json:"limit,omitempty"`
}

// ErrKeywordRequired is returned when a tool query has no keyword.
var ErrKeywordRequired = errors.New("keyword is required")

// Filter converts the tool arguments into the shared filter representation.
func (q ToolQuery) Filter() (models.ProductFilter, error) {
	if strings.TrimSpace(q.Keyword) == "" {
		return models.ProductFilter{}, ErrKeywordRequired
	}
	return models.ProductFilter{
		Keyword:     q.Keyword,
		Category:    q.Category,
		SubCategory: q.SubCategory,
		MinPrice:    finiteOrNil(q.MinPrice),
		MaxPrice:    finiteOrNil(q.MaxPrice),
		InStock:     q.InStock,
	}, nil
}

// EffectiveLimit returns the row cap for the tool path: 5 when unset,
// otherwise min(limit, 20) floored at 1.
func (q ToolQuery) EffectiveLimit() int {
	n := int(q.Limit)
	switch {
	case n == 0:
		return ToolDefaultLimit
	case n < 1:
		return 1
	case n > ToolMaxLimit:
		return ToolMaxLimit
	}
	return n
}

func finiteOrNil(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	return v
}

// LooseInt decodes from a JSON number or a numeric string. Models sometimes
// quote numeric arguments.
type LooseInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *LooseInt) UnmarshalJSON(b []byte) error {
	var num float64
	if err := json.Unmarshal(b, &num); err == nil {
		*n = LooseInt(num)
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return err
	}
	*n = LooseInt(v)
	return nil
}
