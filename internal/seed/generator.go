// Package seed generates a synthetic product catalog for local development.
package seed

import (
	"fmt"
	"math"
	"strings"
	"unicode"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/GTDGit/multitool_api/internal/models"
)

// DefaultCount is the number of products a seed run inserts.
const DefaultCount = 200

// InStockProbability is the chance a generated product is available.
const InStockProbability = 0.9

// Generator produces random catalog rows. The same seed yields the same catalog.
type Generator struct {
	faker *gofakeit.Faker
}

// NewGenerator returns a Generator. A zero seed picks a random one.
func NewGenerator(seed uint64) *Generator {
	return &Generator{faker: gofakeit.New(seed)}
}

// Products generates n products spread across every category.
func (g *Generator) Products(n int) []models.Product {
	out := make([]models.Product, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, g.Product(i))
	}
	return out
}

// Product generates the i-th product; i only feeds the image URL.
func (g *Generator) Product(i int) models.Product {
	f := g.faker
	category := models.Categories[f.Number(0, len(models.Categories)-1)]
	profile := profiles[category]

	sub := f.RandomString(profile.subCategories)
	brand := f.RandomString(profile.brands)
	image := fmt.Sprintf("https://picsum.photos/seed/%d/400/400", i)

	return models.Product{
		Name:        profile.name(f, sub),
		Description: fmt.Sprintf("%s %s.", f.ProductDescription(), strings.Join(g.pick(features, 3), ". ")),
		Price:       round(f.Float64Range(profile.minPrice, profile.maxPrice), 2),
		Category:    string(category),
		SubCategory: &sub,
		Brand:       &brand,
		InStock:     f.Float64Range(0, 1) < InStockProbability,
		Rating:      round(f.Float64Range(3.5, 5.0), 1),
		ImageURL:    &image,
		Tags:        g.Tags(category, sub),
	}
}

// Tags builds the comma-separated tag list: the normalized sub-category, three
// category tags and two common tags, without duplicates.
func (g *Generator) Tags(category models.Category, subCategory string) string {
	tags := []string{NormalizeTag(subCategory)}
	tags = append(tags, g.pick(profiles[category].tags, 3)...)
	tags = append(tags, g.pick(commonTags, 2)...)

	seen := make(map[string]bool, len(tags))
	out := tags[:0]
	for _, t := range tags {
		if !seen[t] {
			seen[t] = true
			out = append(out, t)
		}
	}
	return strings.Join(out, ",")
}

// NormalizeTag lowercases s and strips everything but ASCII letters and digits.
func NormalizeTag(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// pick returns n distinct elements of list in random order.
func (g *Generator) pick(list []string, n int) []string {
	cp := append([]string(nil), list...)
	g.faker.ShuffleStrings(cp)
	if n > len(cp) {
		n = len(cp)
	}
	return cp[:n]
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
