package models

import "time"

// Category enumerates the closed set of catalog categories.
type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryFashion     Category = "fashion"
	CategoryHome        Category = "home"
	CategoryBeauty      Category = "beauty"
	CategoryBooks       Category = "books"
	CategorySports      Category = "sports"
	CategoryToys        Category = "toys"
	CategoryGrocery     Category = "grocery"
	CategoryAutomotive  Category = "automotive"
	CategoryHealth      Category = "health"
)

// Categories lists every valid category in declaration order.
var Categories = []Category{
	CategoryElectronics,
	CategoryFashion,
	CategoryHome,
	CategoryBeauty,
	CategoryBooks,
	CategorySports,
	CategoryToys,
	CategoryGrocery,
	CategoryAutomotive,
	CategoryHealth,
}

// IsValid reports whether c belongs to the closed category set.
func (c Category) IsValid() bool {
	for _, v := range Categories {
		if v == c {
			return true
		}
	}
	return false
}

// Product represents a catalog item.
// Fields are tagged for both DB scanning and JSON serialization.
type Product struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	Price       float64   `db:"price" json:"price"`
	Category    string    `db:"category" json:"category"`
	SubCategory *string   `db:"sub_category" json:"subCategory"`
	Brand       *string   `db:"brand" json:"brand"`
	InStock     bool      `db:"in_stock" json:"inStock"`
	Rating      float64   `db:"rating" json:"rating"`
	ImageURL    *string   `db:"image_url" json:"imageUrl"`
	Tags        string    `db:"tags" json:"tags"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt   time.Time `db:"updated_at" json:"updatedAt"`
}

// CategoryCount is one row of the per-category product breakdown.
type CategoryCount struct {
	Name  string `db:"name" json:"name"`
	Count int    `db:"count" json:"count"`
}
