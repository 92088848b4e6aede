package pipeline

import (
	"context"
	"slices"
)

// Sort yields the stream's values ordered by cmp, which follows the
// slices.SortStableFunc convention: negative when a sorts before b.
// The sort is stable, so values comparing equal keep their stream order.
// Sorting materializes the stream: the source is fully drained on the
// first pull.
func Sort[T any](p *Pipeline[T], cmp func(a, b T) int) *Pipeline[T] {
	return FromFunc(func(ctx context.Context) Iterator[T] {
		return &sortIter[T]{source: p.Iter(ctx), cmp: cmp}
	})
}

// Group is one partition produced by GroupBy.
type Group[K comparable, T any] struct {
	Key   K
	Items []T
}

// GroupBy partitions the stream into groups keyed by keyFn and yields one
// Group per key, in first-seen key order. Within each group the stream
// order of values is preserved. Grouping materializes the stream.
func GroupBy[T any, K comparable](p *Pipeline[T], keyFn func(T) K) *Pipeline[Group[K, T]] {
	return FromFunc(func(ctx context.Context) Iterator[Group[K, T]] {
		return &groupIter[T, K]{source: p.Iter(ctx), keyFn: keyFn}
	})
}

// MaxBy is a terminal that drains the pipeline and returns the largest value
// under cmp. The first of equal-maximum values wins. The ok result is false
// when the stream is empty; an empty stream is not an error.
func MaxBy[T any](ctx context.Context, p *Pipeline[T], cmp func(a, b T) int) (T, bool, error) {
	iter := p.Iter(ctx)
	defer iter.Close()

	var best T
	found := false
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			var zero T
			return zero, false, err
		}
		if !ok {
			return best, found, nil
		}
		if !found || cmp(val, best) > 0 {
			best = val
			found = true
		}
	}
}

// --- Iterator implementations ---

type sortIter[T any] struct {
	source Iterator[T]
	cmp    func(a, b T) int
	sorted []T
	index  int
	ready  bool
}

func (it *sortIter[T]) Next(ctx context.Context) (result T, ok bool, err error) {
	if !it.ready {
		items, err := drain(ctx, it.source)
		if err != nil {
			var zero T
			return zero, false, err
		}
		slices.SortStableFunc(items, it.cmp)
		it.sorted = items
		it.ready = true
	}
	if it.index >= len(it.sorted) {
		var zero T
		return zero, false, nil
	}
	val := it.sorted[it.index]
	it.index++
	return val, true, nil
}

func (it *sortIter[T]) Close() error { return it.source.Close() }

type groupIter[T any, K comparable] struct {
	source Iterator[T]
	keyFn  func(T) K
	groups []Group[K, T]
	index  int
	ready  bool
}

func (it *groupIter[T, K]) Next(ctx context.Context) (result Group[K, T], ok bool, err error) {
	if !it.ready {
		items, err := drain(ctx, it.source)
		if err != nil {
			var zero Group[K, T]
			return zero, false, err
		}
		indexByKey := make(map[K]int)
		for _, item := range items {
			k := it.keyFn(item)
			idx, seen := indexByKey[k]
			if !seen {
				idx = len(it.groups)
				indexByKey[k] = idx
				it.groups = append(it.groups, Group[K, T]{Key: k})
			}
			it.groups[idx].Items = append(it.groups[idx].Items, item)
		}
		it.ready = true
	}
	if it.index >= len(it.groups) {
		var zero Group[K, T]
		return zero, false, nil
	}
	g := it.groups[it.index]
	it.index++
	return g, true, nil
}

func (it *groupIter[T, K]) Close() error { return it.source.Close() }

// drain pulls every remaining value from iter into a slice.
func drain[T any](ctx context.Context, iter Iterator[T]) ([]T, error) {
	var items []T
	for {
		val, ok, err := iter.Next(ctx)
		if err != nil {
			return nil, err
		}
		if !ok {
			return items, nil
		}
		items = append(items, val)
	}
}
