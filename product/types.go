package product

// Product is an immutable value record. Category is a free-form grouping
// key; products with equal category belong to the same group.
type Product struct {
	ID       int     `json:"id" validate:"required"`
	Name     string  `json:"name" validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
	Quantity int     `json:"quantity" validate:"gte=0"`
}
