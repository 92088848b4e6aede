package dataset

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/pipeline"
	"github.com/kbukum/recordkit/product"
)

func TestLoadValidSet(t *testing.T) {
	set, err := Load(SampleProducts())
	if err != nil {
		t.Fatal(err)
	}
	if set.LoadID == uuid.Nil {
		t.Error("expected a load id")
	}
	if set.Len() != len(SampleProducts()) {
		t.Errorf("Len = %d, want %d", set.Len(), len(SampleProducts()))
	}
}

func TestLoadCopiesInput(t *testing.T) {
	input := SampleProducts()
	set, err := Load(input)
	if err != nil {
		t.Fatal(err)
	}
	input[0].Name = "Mutated"
	if set.Items[0].Name == "Mutated" {
		t.Error("set must hold a private copy of the input")
	}
}

func TestLoadRejectsMalformedRecord(t *testing.T) {
	bad := []product.Product{
		{ID: 1, Name: "OK", Category: "X", Price: 10, Quantity: 1},
		{ID: 2, Name: "Broken", Category: "X", Price: -5, Quantity: 1},
	}
	_, err := Load(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	appErr, ok := errors.AsAppError(err)
	if !ok {
		t.Fatalf("expected AppError, got %T", err)
	}
	if appErr.Details["index"] != 1 {
		t.Errorf("error must name the failing index, got %v", appErr.Details)
	}
}

func TestLoadRejectsNegativeQuantity(t *testing.T) {
	bad := []product.Product{{ID: 1, Name: "X", Category: "C", Price: 1, Quantity: -1}}
	if _, err := Load(bad); err == nil {
		t.Fatal("negative quantity must be rejected at the boundary")
	}
}

func TestSampleSetsAllValid(t *testing.T) {
	if _, err := Employees(); err != nil {
		t.Errorf("employees: %v", err)
	}
	if _, err := Students(); err != nil {
		t.Errorf("students: %v", err)
	}
	if _, err := Products(); err != nil {
		t.Errorf("products: %v", err)
	}
}

func TestSetPipeline(t *testing.T) {
	set, err := Products()
	if err != nil {
		t.Fatal(err)
	}
	total := pipeline.Reduce(set.Pipeline(), 0.0, func(acc float64, p product.Product) float64 {
		return acc + p.Price*float64(p.Quantity)
	})
	got, err := pipeline.Collect(context.Background(), total)
	if err != nil {
		t.Fatal(err)
	}
	want := product.TotalInventoryValue(set.Items)
	if len(got) != 1 || got[0] != want {
		t.Errorf("pipeline total = %v, want [%v]", got, want)
	}
}

func TestSetContext(t *testing.T) {
	set, err := Products()
	if err != nil {
		t.Fatal(err)
	}
	ctx := set.Context(context.Background())
	if ctx == context.Background() {
		t.Error("expected a derived context carrying the load id")
	}
}
