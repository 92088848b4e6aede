package dataset

import (
	"github.com/kbukum/recordkit/employee"
	"github.com/kbukum/recordkit/product"
	"github.com/kbukum/recordkit/student"
)

// SampleEmployees returns the demo employee roster.
func SampleEmployees() []employee.Employee {
	return []employee.Employee{
		{ID: 1, Name: "Bob", Age: 35, Salary: 65000, Department: "Engineering"},
		{ID: 2, Name: "Charlie", Age: 30, Salary: 60000, Department: "Sales"},
		{ID: 3, Name: "Alice", Age: 28, Salary: 55000, Department: "Engineering"},
		{ID: 4, Name: "Diana", Age: 41, Salary: 82000, Department: "Management"},
		{ID: 5, Name: "Evan", Age: 28, Salary: 58000, Department: "Sales"},
	}
}

// SampleStudents returns the demo student roster.
func SampleStudents() []student.Student {
	return []student.Student{
		{ID: 1, Name: "John", Marks: 92.5, Subject: "Math"},
		{ID: 2, Name: "Tom", Marks: 60, Subject: "Math"},
		{ID: 3, Name: "Sarah", Marks: 88, Subject: "Physics"},
		{ID: 4, Name: "Mike", Marks: 76.5, Subject: "Physics"},
		{ID: 5, Name: "Nina", Marks: 75, Subject: "Chemistry"},
	}
}

// SampleProducts returns the demo product catalog.
func SampleProducts() []product.Product {
	return []product.Product{
		{ID: 1, Name: "Laptop", Category: "Electronics", Price: 10000, Quantity: 5},
		{ID: 2, Name: "Workstation", Category: "Electronics", Price: 20000, Quantity: 2},
		{ID: 3, Name: "Desk", Category: "Furniture", Price: 5000, Quantity: 10},
		{ID: 4, Name: "Chair", Category: "Furniture", Price: 1500, Quantity: 24},
		{ID: 5, Name: "Monitor", Category: "Electronics", Price: 3000, Quantity: 12},
	}
}

// Employees loads and validates the sample employee roster.
func Employees() (*Set[employee.Employee], error) {
	return Load(SampleEmployees())
}

// Students loads and validates the sample student roster.
func Students() (*Set[student.Student], error) {
	return Load(SampleStudents())
}

// Products loads and validates the sample product catalog.
func Products() (*Set[product.Product], error) {
	return Load(SampleProducts())
}
