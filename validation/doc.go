// Package validation validates records before they enter a pipeline.
//
// Two styles are provided: struct-tag validation via go-playground/validator
// (used by the dataset loaders), and a fluent Validator for hand-rolled
// checks on request parameters. Both produce *errors.AppError values so
// callers and the HTTP layer see one error shape.
package validation
