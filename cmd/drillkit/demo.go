package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/kbukum/recordkit/dataset"
	"github.com/kbukum/recordkit/employee"
	"github.com/kbukum/recordkit/pipeline"
	"github.com/kbukum/recordkit/product"
	"github.com/kbukum/recordkit/student"
)

var demoThreshold float64

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Run all three drills and print the results",
	Long: `Run the employee sorting, student filtering, and product grouping
drills over the built-in sample datasets and print the results.

Examples:
  drillkit demo
  drillkit demo --threshold 80`,
	Run: runDemo,
}

func init() {
	demoCmd.Flags().Float64Var(&demoThreshold, "threshold", student.DefaultThreshold, "Marks threshold for the student drill")
}

func runDemo(_ *cobra.Command, _ []string) {
	if err := demo(os.Stdout, demoThreshold); err != nil {
		fmt.Fprintf(os.Stderr, "✗ Demo failed: %v\n", err)
		os.Exit(ExitRuntimeError)
	}
}

// demo writes the output of all three drills to w.
func demo(w io.Writer, threshold float64) error {
	if err := employeeDrill(w); err != nil {
		return err
	}
	if err := studentDrill(w, threshold); err != nil {
		return err
	}
	return productDrill(w)
}

func employeeDrill(w io.Writer) error {
	// The sample rosters are static fixtures, so a failed load is a bug.
	set := dataset.MustLoad(dataset.SampleEmployees())

	fmt.Fprintln(w, "=== Employee sorting ===")

	byName, err := employee.SortByName(set.Items)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "By name:")
	for _, e := range byName {
		fmt.Fprintf(w, "  %-8s age=%-3d salary=%.0f %s\n", e.Name, e.Age, e.Salary, e.Department)
	}

	bySalary, err := employee.SortBySalary(set.Items, true)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "By salary (descending):")
	for _, e := range bySalary {
		fmt.Fprintf(w, "  %-8s salary=%.0f\n", e.Name, e.Salary)
	}

	composite, err := employee.SortBy(set.Items,
		employee.SortKey{Field: employee.FieldDepartment},
		employee.SortKey{Field: employee.FieldSalary, Descending: true},
	)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "By department, then salary descending:")
	for _, e := range composite {
		fmt.Fprintf(w, "  %-12s %-8s salary=%.0f\n", e.Department, e.Name, e.Salary)
	}
	return nil
}

func studentDrill(w io.Writer, threshold float64) error {
	set := dataset.MustLoad(dataset.SampleStudents())

	// Same drill expressed as a lazy stream: filter, stable sort, print.
	p := pipeline.Filter(set.Pipeline(), func(s student.Student) bool {
		return s.Marks > threshold
	})
	p = pipeline.Sort(p, func(a, b student.Student) int {
		return cmp.Compare(b.Marks, a.Marks)
	})

	fmt.Fprintf(w, "\n=== Students above %.1f ===\n", threshold)
	ctx := set.Context(context.Background())
	err := pipeline.ForEach(ctx, p, func(_ context.Context, s student.Student) error {
		fmt.Fprintf(w, "  %-8s marks=%.1f %s\n", s.Name, s.Marks, s.Subject)
		return nil
	})
	if err != nil {
		return err
	}

	names, err := student.Names(set.Items, threshold)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "Names only: %v\n", names)
	return nil
}

func productDrill(w io.Writer) error {
	set := dataset.MustLoad(dataset.SampleProducts())

	fmt.Fprintln(w, "\n=== Product grouping ===")

	groups, err := product.GroupByCategory(set.Items)
	if err != nil {
		return err
	}
	for _, category := range groups.Categories() {
		items, _ := groups.Get(category)
		fmt.Fprintf(w, "%s (%d products):\n", category, len(items))
		for _, p := range items {
			fmt.Fprintf(w, "  %-12s price=%.0f qty=%d\n", p.Name, p.Price, p.Quantity)
		}
	}

	averages, err := product.AveragePriceByCategory(set.Items)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Average price by category:")
	for _, category := range groups.Categories() {
		fmt.Fprintf(w, "  %-12s %.2f\n", category, averages[category])
	}

	if max, ok := product.MaxPricedProduct(set.Items); ok {
		fmt.Fprintf(w, "Most expensive: %s (%.0f)\n", max.Name, max.Price)
	}
	fmt.Fprintf(w, "Total inventory value: %.0f\n", product.TotalInventoryValue(set.Items))
	return nil
}
