// Package pipeline provides composable, pull-based data pipeline operators.
//
// Pipelines are lazy — no work happens until values are pulled via Collect,
// Drain, or ForEach. Each stage pulls from the previous stage on demand.
// Every operator returns a new pipeline; sources are never mutated.
//
// # Operators
//
//   - Map: transform each value
//   - Filter: keep values matching a predicate
//   - Tap: side-effect without altering the value (logging, metrics)
//   - Sort: stable sort by a comparison function (materializes the stream)
//   - GroupBy: partition into keyed groups in first-seen key order
//   - Distinct: drop duplicate values
//   - Take: stop after n values
//   - Reduce: accumulate all values into one result
//
// # Terminals
//
//   - Collect: gather all values into a slice
//   - Drain / ForEach: pull all values through a sink
//   - MaxBy: largest value, with an explicit absent flag for empty streams
//
// # Usage
//
//	src := pipeline.FromSlice([]int{1, 2, 3, 4, 5})
//	evens := pipeline.Filter(src, func(n int) bool { return n%2 == 0 })
//	sorted := pipeline.Sort(evens, func(a, b int) int { return b - a })
//	results, _ := pipeline.Collect(ctx, sorted)
package pipeline
