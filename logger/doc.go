// Package logger provides structured logging for recordkit built on zerolog.
//
// A Logger wraps zerolog.Logger with component tagging and field helpers.
// Libraries receive a *Logger (or use the package-level global); the console
// format is intended for the demo CLI, the json format for the server.
package logger
