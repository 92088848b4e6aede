// Package util provides small generic helpers for slices and maps.
//
// These are the building blocks the record pipelines compose: Filter, Map,
// Reduce, and an order-preserving GroupBy. All helpers treat their inputs
// as read-only and return fresh slices and maps.
package util
