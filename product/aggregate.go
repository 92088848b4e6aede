package product

import (
	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/util"
)

// AveragePriceByCategory returns the arithmetic mean price per category.
// A category with one product yields that product's price.
func AveragePriceByCategory(products []Product) (map[string]float64, error) {
	groups, err := GroupByCategory(products)
	if err != nil {
		return nil, err
	}
	averages := make(map[string]float64, groups.Len())
	for _, category := range groups.categories {
		members := groups.byCategory[category]
		total := util.Reduce(members, 0.0, func(acc float64, p Product) float64 {
			return acc + p.Price
		})
		averages[category] = total / float64(len(members))
	}
	return averages, nil
}

// MaxPricedProduct returns the product with the greatest price. The first of
// equal-priced products wins. The ok result is false on empty input; an
// empty dataset is a normal outcome, not an error.
func MaxPricedProduct(products []Product) (Product, bool) {
	var best Product
	found := false
	for _, p := range products {
		if !found || p.Price > best.Price {
			best = p
			found = true
		}
	}
	return best, found
}

// MaxPricedByCategory applies the MaxPricedProduct rule to each group
// produced by GroupByCategory.
func MaxPricedByCategory(products []Product) (map[string]Product, error) {
	groups, err := GroupByCategory(products)
	if err != nil {
		return nil, err
	}
	maxima := make(map[string]Product, groups.Len())
	for _, category := range groups.categories {
		// Groups are never empty, so the max always exists.
		best, _ := MaxPricedProduct(groups.byCategory[category])
		maxima[category] = best
	}
	return maxima, nil
}

// TotalInventoryValue sums price times quantity over all products.
func TotalInventoryValue(products []Product) float64 {
	return util.Reduce(products, 0.0, func(acc float64, p Product) float64 {
		return acc + p.Price*float64(p.Quantity)
	})
}

// ProductsInPriceRange returns the products with price in the inclusive
// range [low, high], preserving input order. low > high is an error.
func ProductsInPriceRange(products []Product, low, high float64) ([]Product, error) {
	if low > high {
		return nil, errors.InvalidRange(low, high)
	}
	return util.Filter(products, func(p Product) bool {
		return p.Price >= low && p.Price <= high
	}), nil
}
