// Package errors provides the unified error type for recordkit.
//
// Every failure surfaced by the record pipelines is an *AppError carrying a
// machine-readable ErrorCode, a human-readable message, and a recommended
// HTTP status for callers that expose the pipelines over HTTP. The taxonomy
// is deliberately small: the pipelines are pure in-memory transformations,
// so every error is an input-validation error of one kind or another.
//
// Queries that legitimately have no answer (max of an empty list) do NOT
// use this package; they return an explicit absent value instead.
package errors
