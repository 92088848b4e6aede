// Package middleware provides Gin middleware: panic recovery, request-ID
// propagation, and structured request logging.
package middleware
