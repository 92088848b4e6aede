// Package product groups product records by category and computes per-group
// and whole-dataset aggregates.
//
// Every operation is a pure function: input slices are treated as read-only,
// results are fresh values, and no references to the input survive the call.
// Group order follows first-seen category order; within a group the input's
// relative order is preserved.
package product
