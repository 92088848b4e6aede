// Package server provides the HTTP demo surface for the record drills.
//
// It wraps a Gin engine in a small lifecycle (Start binds the listener,
// Stop shuts down gracefully) and registers read-only routes that expose
// the employee, student, and product operations over JSON. Responses use
// a uniform data envelope; errors map to RFC 7807 style bodies via the
// errors package.
package server
