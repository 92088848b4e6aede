// Package observability initializes OpenTelemetry tracing and metrics for
// the recordkit server, exporting over OTLP HTTP.
//
// Both providers are optional: when disabled the global no-op providers stay
// in place and instrumented code runs unchanged.
package observability
