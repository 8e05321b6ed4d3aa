package repository

import (
	"fmt"
	"strings"

	"github.com/GTDGit/multitool_api/internal/models"
)

// productColumns is the explicit projection for product rows.
const productColumns = `id, name, description, price, category, sub_category, brand,
        in_stock, rating, image_url, tags, created_at, updated_at`

// likeEscaper escapes LIKE/ILIKE metacharacters so a keyword always matches
// as a literal substring. PostgreSQL uses backslash as the default escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// productQuery accumulates WHERE conditions and their positional arguments.
// Conditions are combined with AND; placeholders are numbered in the order
// arguments are bound.
type productQuery struct {
	conds []string
	args  []interface{}
}

// newProductQuery translates a filter into a predicate. It is the single
// place where search criteria become SQL, so every entry point (REST search,
// AI tool, count) filters identically.
func newProductQuery(f models.ProductFilter) *productQuery {
	q := &productQuery{}

	// Keyword: substring of name OR description OR tags, case-insensitive.
	if f.Keyword != "" {
		p := q.bind("%" + likeEscaper.Replace(f.Keyword) + "%")
		q.where(fmt.Sprintf("(name ILIKE %[1]s OR description ILIKE %[1]s OR tags ILIKE %[1]s)", p))
	}
	// Category and sub-category are exact (case-sensitive) matches.
	if f.Category != "" {
		q.where("category = " + q.bind(f.Category))
	}
	if f.SubCategory != "" {
		q.where("sub_category = " + q.bind(f.SubCategory))
	}
	// Inclusive bounds; swapped bounds simply match nothing.
	if f.MinPrice != nil {
		q.where("price >= " + q.bind(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		q.where("price <= " + q.bind(*f.MaxPrice))
	}
	if f.InStock != nil {
		q.where("in_stock = " + q.bind(*f.InStock))
	}
	return q
}

// bind appends an argument and returns its placeholder.
func (q *productQuery) bind(v interface{}) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *productQuery) where(cond string) {
	q.conds = append(q.conds, cond)
}

// whereClause renders " WHERE ..." or an empty string when unfiltered.
func (q *productQuery) whereClause() string {
	if len(q.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(q.conds, " AND ")
}

// countSQL returns the COUNT statement over the predicate.
func (q *productQuery) countSQL() (string, []interface{}) {
	return "SELECT COUNT(1) FROM products" + q.whereClause(), q.args
}

// selectSQL returns the paged SELECT over the predicate. Newest first; id
// breaks ties between equal created_at values so pages are deterministic.
func (q *productQuery) selectSQL(page models.PageRequest) (string, []interface{}) {
	args := make([]interface{}, len(q.args), len(q.args)+2)
	copy(args, q.args)
	args = append(args, page.Limit, page.Offset())

	sql := "SELECT " + productColumns + " FROM products" + q.whereClause() +
		fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))
	return sql, args
}
