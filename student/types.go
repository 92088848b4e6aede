// Package student filters student records by a marks threshold.
package student

// Student is an immutable value record. Marks are expected in 0-100 but the
// pipeline does not enforce the range; validation happens at the dataset
// boundary.
type Student struct {
	ID      int     `json:"id" validate:"required"`
	Name    string  `json:"name" validate:"required"`
	Marks   float64 `json:"marks"`
	Subject string  `json:"subject"`
}
