package student

import (
	"cmp"
	"slices"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/util"
)

// DefaultThreshold is the marks cut-off used when callers have no override.
const DefaultThreshold = 75.0

// FilterAndSort returns the students with marks strictly above threshold,
// sorted by marks descending. Students with equal marks keep their input
// order. The input slice is never modified; no qualifying student yields an
// empty result, not an error.
func FilterAndSort(students []Student, threshold float64) []Student {
	kept := util.Filter(students, func(s Student) bool { return s.Marks > threshold })
	slices.SortStableFunc(kept, func(a, b Student) int {
		return cmp.Compare(b.Marks, a.Marks)
	})
	return kept
}

// Names runs FilterAndSort and projects each retained student to its name,
// in the same order. A retained student with an empty name fails the whole
// projection with an invalid-record error.
func Names(students []Student, threshold float64) ([]string, error) {
	kept := FilterAndSort(students, threshold)
	for _, s := range kept {
		if s.Name == "" {
			return nil, errors.InvalidRecord("name").WithDetail("id", s.ID)
		}
	}
	return util.Map(kept, func(s Student) string { return s.Name }), nil
}
