package validation

import (
	"testing"

	"github.com/kbukum/recordkit/errors"
)

func TestValidatorNoErrors(t *testing.T) {
	v := New()
	v.Required("name", "Alice").NonNegative("salary", 55000)
	if v.HasErrors() {
		t.Errorf("unexpected errors: %v", v.Errors())
	}
	if err := v.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestValidatorRequired(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"non-empty", "Bob", false},
		{"empty", "", true},
		{"whitespace only", "   ", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v := New().Required("name", tc.value)
			if v.HasErrors() != tc.wantErr {
				t.Errorf("HasErrors() = %v, want %v", v.HasErrors(), tc.wantErr)
			}
		})
	}
}

func TestValidatorNumericChecks(t *testing.T) {
	v := New().
		Positive("age", 0).
		NonNegative("price", -1).
		InRange("marks", 120, 0, 100)
	if len(v.Errors()) != 3 {
		t.Errorf("expected 3 errors, got %v", v.Errors())
	}
}

func TestValidatorValidRange(t *testing.T) {
	if New().ValidRange("low", "high", 10, 100).HasErrors() {
		t.Error("valid range flagged")
	}
	if !New().ValidRange("low", "high", 100, 10).HasErrors() {
		t.Error("inverted range not flagged")
	}
}

func TestValidatorOneOf(t *testing.T) {
	if New().OneOf("order", "asc", "asc", "desc").HasErrors() {
		t.Error("allowed value flagged")
	}
	if !New().OneOf("order", "sideways", "asc", "desc").HasErrors() {
		t.Error("disallowed value not flagged")
	}
}

func TestValidatorAggregatesIntoAppError(t *testing.T) {
	err := New().Required("name", "").NonNegative("price", -5).Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if err.Code != errors.ErrCodeInvalidInput {
		t.Errorf("code = %s, want %s", err.Code, errors.ErrCodeInvalidInput)
	}
	fields, ok := err.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Errorf("details fields = %v", err.Details["fields"])
	}
}

type testRecord struct {
	ID    int     `json:"id" validate:"required"`
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"gte=0"`
}

func TestStructValidate(t *testing.T) {
	if err := Validate(testRecord{ID: 1, Name: "Laptop", Price: 10}); err != nil {
		t.Errorf("valid record rejected: %v", err)
	}

	err := Validate(testRecord{ID: 2, Price: -1})
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	fields, ok := appErr.Details["fields"].([]FieldError)
	if !ok || len(fields) != 2 {
		t.Fatalf("details fields = %v", appErr.Details["fields"])
	}
	seen := map[string]bool{}
	for _, f := range fields {
		seen[f.Field] = true
	}
	if !seen["name"] || !seen["price"] {
		t.Errorf("expected name and price errors, got %v", fields)
	}
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"Name", "name"},
		{"MaxPrice", "max_price"},
		{"ID", "i_d"},
	}
	for _, tc := range tests {
		if got := toSnakeCase(tc.in); got != tc.want {
			t.Errorf("toSnakeCase(%s) = %s, want %s", tc.in, got, tc.want)
		}
	}
}
