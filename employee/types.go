// Package employee provides stable sort operations over employee records.
package employee

// Employee is an immutable value record; equality and ordering are by field
// value only.
type Employee struct {
	ID         int     `json:"id" validate:"required"`
	Name       string  `json:"name" validate:"required"`
	Age        int     `json:"age" validate:"gt=0"`
	Salary     float64 `json:"salary" validate:"gte=0"`
	Department string  `json:"department"`
}
