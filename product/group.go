package product

import (
	"slices"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/util"
)

// Groups is the result of grouping products by category. Categories are kept
// in first-seen order.
type Groups struct {
	categories []string
	byCategory map[string][]Product
}

// Categories returns the category keys in first-seen order.
func (g *Groups) Categories() []string {
	return slices.Clone(g.categories)
}

// Get returns the products of a category in their original relative order.
// The returned slice is a copy; writing to it never alters the grouping.
func (g *Groups) Get(category string) ([]Product, bool) {
	products, ok := g.byCategory[category]
	if !ok {
		return nil, false
	}
	return slices.Clone(products), true
}

// Len returns the number of categories.
func (g *Groups) Len() int {
	return len(g.categories)
}

// GroupByCategory partitions products by category. A product with an empty
// category fails the whole operation with an invalid-record error.
func GroupByCategory(products []Product) (*Groups, error) {
	for _, p := range products {
		if p.Category == "" {
			return nil, errors.InvalidRecord("category").WithDetail("id", p.ID)
		}
	}
	categories, byCategory := util.GroupBy(products, func(p Product) string { return p.Category })
	return &Groups{categories: categories, byCategory: byCategory}, nil
}
