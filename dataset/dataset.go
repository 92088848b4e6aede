// Package dataset constructs validated record sets for the demo surfaces.
//
// Loading a set struct-validates every record at the boundary, so malformed
// data (negative quantities, missing names) is rejected before it reaches a
// pipeline. Each loaded set carries a load id so results can be correlated
// in logs.
package dataset

import (
	"context"
	"slices"

	"github.com/google/uuid"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/pipeline"
	"github.com/kbukum/recordkit/validation"
)

// Set is a validated, immutable collection of records.
type Set[T any] struct {
	LoadID uuid.UUID
	Items  []T
}

// Load validates every record and returns a Set holding a private copy of
// the input. The first invalid record fails the load and names its index.
func Load[T any](items []T) (*Set[T], error) {
	for i, item := range items {
		if err := validation.Validate(item); err != nil {
			if appErr, ok := errors.AsAppError(err); ok {
				return nil, appErr.WithDetail("index", i)
			}
			return nil, err
		}
	}
	return &Set[T]{
		LoadID: uuid.New(),
		Items:  slices.Clone(items),
	}, nil
}

// MustLoad is Load for fixture data that is known to be valid.
func MustLoad[T any](items []T) *Set[T] {
	set, err := Load(items)
	if err != nil {
		panic(err)
	}
	return set
}

// Pipeline returns a lazy pipeline over the set's records.
func (s *Set[T]) Pipeline() *pipeline.Pipeline[T] {
	return pipeline.FromSlice(s.Items)
}

// Len returns the number of records in the set.
func (s *Set[T]) Len() int {
	return len(s.Items)
}

// Context returns ctx tagged with the set's load id for log correlation.
func (s *Set[T]) Context(ctx context.Context) context.Context {
	return logger.ContextWithLoadID(ctx, s.LoadID.String())
}
