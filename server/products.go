package server

import (
	"cmp"
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/pipeline"
	"github.com/kbukum/recordkit/product"
)

// CategoryGroup is one category bucket in the groups response. Buckets appear
// in first-seen category order.
type CategoryGroup struct {
	Category string            `json:"category"`
	Products []product.Product `json:"products"`
	Count    int               `json:"count"`
}

func byPrice(a, b product.Product) int {
	return cmp.Compare(a.Price, b.Price)
}

func byCategory(p product.Product) string {
	return p.Category
}

func (h *Handlers) handleProductGroups(c *gin.Context) {
	done := h.observe(c, "products.groups")
	ctx := h.products.Context(c.Request.Context())

	groups, err := pipeline.Collect(ctx, pipeline.GroupBy(h.products.Pipeline(), byCategory))
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	out := make([]CategoryGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, CategoryGroup{
			Category: g.Key,
			Products: g.Items,
			Count:    len(g.Items),
		})
	}

	done(h.products.Len(), nil)
	RespondOKWithCount(c, out, len(out))
}

// handleCategories returns the distinct category names in first-seen order.
func (h *Handlers) handleCategories(c *gin.Context) {
	done := h.observe(c, "products.categories")
	ctx := h.products.Context(c.Request.Context())

	names := pipeline.Map(h.products.Pipeline(), func(_ context.Context, p product.Product) (string, error) {
		return p.Category, nil
	})
	categories, err := pipeline.Collect(ctx, pipeline.Distinct(names))
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(h.products.Len(), nil)
	RespondOKWithCount(c, categories, len(categories))
}

func (h *Handlers) handleAveragePrice(c *gin.Context) {
	done := h.observe(c, "products.average_price")

	averages, err := product.AveragePriceByCategory(h.products.Items)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(h.products.Len(), nil)
	RespondOK(c, averages)
}

func (h *Handlers) handleMaxPriced(c *gin.Context) {
	done := h.observe(c, "products.max")
	ctx := h.products.Context(c.Request.Context())

	max, ok, err := pipeline.MaxBy(ctx, h.products.Pipeline(), byPrice)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}
	if !ok {
		err := errors.NotFound("product", "max-priced")
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(1, nil)
	RespondOK(c, max)
}

func (h *Handlers) handleMaxPricedByCategory(c *gin.Context) {
	done := h.observe(c, "products.max_by_category")
	ctx := h.products.Context(c.Request.Context())

	type categoryMax struct {
		category string
		max      product.Product
	}
	groups := pipeline.GroupBy(h.products.Pipeline(), byCategory)
	pairs, err := pipeline.Collect(ctx, pipeline.Map(groups,
		func(ctx context.Context, g pipeline.Group[string, product.Product]) (categoryMax, error) {
			max, _, err := pipeline.MaxBy(ctx, pipeline.FromSlice(g.Items), byPrice)
			// Groups are never empty, so ok is always true here.
			return categoryMax{category: g.Key, max: max}, err
		}))
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	maxima := make(map[string]product.Product, len(pairs))
	for _, p := range pairs {
		maxima[p.category] = p.max
	}

	done(len(maxima), nil)
	RespondOK(c, maxima)
}

// handleInventoryValue streams the product set through a lazy reduce so the
// request context can cancel the fold. A tap counts the records pulled.
func (h *Handlers) handleInventoryValue(c *gin.Context) {
	done := h.observe(c, "products.inventory_value")
	ctx := h.products.Context(c.Request.Context())

	pulled := 0
	source := pipeline.Tap(h.products.Pipeline(), func(_ context.Context, _ product.Product) error {
		pulled++
		return nil
	})
	totals := pipeline.Reduce(source, 0.0, func(acc float64, p product.Product) float64 {
		return acc + p.Price*float64(p.Quantity)
	})
	result, err := pipeline.Collect(ctx, totals)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	total := 0.0
	if len(result) > 0 {
		total = result[0]
	}

	done(pulled, nil)
	RespondOK(c, gin.H{"total": total})
}

func (h *Handlers) handlePriceRange(c *gin.Context) {
	done := h.observe(c, "products.price_range")

	low, err := floatParam(c, "low")
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}
	high, err := floatParam(c, "high")
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	matched, err := product.ProductsInPriceRange(h.products.Items, low, high)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(len(matched), nil)
	RespondOKWithCount(c, matched, len(matched))
}

// floatParam reads a required float query parameter.
func floatParam(c *gin.Context, name string) (float64, error) {
	raw := c.Query(name)
	if raw == "" {
		return 0, errors.MissingField(name)
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput(name, "must be a number").WithCause(err)
	}
	return value, nil
}
