package employee

import (
	"cmp"
	"slices"
	"strings"

	"github.com/kbukum/recordkit/errors"
)

// Field names a sortable Employee field.
type Field string

const (
	FieldName       Field = "name"
	FieldAge        Field = "age"
	FieldSalary     Field = "salary"
	FieldDepartment Field = "department"
)

// ParseField converts a string (e.g. a query parameter) to a Field.
func ParseField(s string) (Field, error) {
	switch Field(strings.ToLower(s)) {
	case FieldName:
		return FieldName, nil
	case FieldAge:
		return FieldAge, nil
	case FieldSalary:
		return FieldSalary, nil
	case FieldDepartment:
		return FieldDepartment, nil
	default:
		return "", errors.InvalidInput("field", "unknown sort field: "+s)
	}
}

// SortKey is one (field, direction) pair of a composite sort.
type SortKey struct {
	Field      Field
	Descending bool
}

// SortByName returns a new slice sorted by name ascending, using
// code-point string comparison. Equal names keep their input order.
func SortByName(employees []Employee) ([]Employee, error) {
	return SortBy(employees, SortKey{Field: FieldName})
}

// SortByAge returns a new slice sorted by age ascending, ties stable.
func SortByAge(employees []Employee) ([]Employee, error) {
	return SortBy(employees, SortKey{Field: FieldAge})
}

// SortBySalary returns a new slice sorted by salary; descending reverses the
// comparison rather than the result, so ties stay in input order either way.
func SortBySalary(employees []Employee, descending bool) ([]Employee, error) {
	return SortBy(employees, SortKey{Field: FieldSalary, Descending: descending})
}

// SortBy sorts by an ordered list of keys: the first key breaks most ties,
// each later key breaks ties the earlier keys left. The input slice is never
// reordered. If any record is missing a string key used by the sort, the
// whole operation fails with an invalid-record error.
func SortBy(employees []Employee, keys ...SortKey) ([]Employee, error) {
	if len(keys) == 0 {
		return nil, errors.InvalidInput("keys", "at least one sort key is required")
	}
	for _, k := range keys {
		if err := checkKey(employees, k.Field); err != nil {
			return nil, err
		}
	}

	sorted := slices.Clone(employees)
	slices.SortStableFunc(sorted, func(a, b Employee) int {
		for _, k := range keys {
			c := compareField(a, b, k.Field)
			if k.Descending {
				c = -c
			}
			if c != 0 {
				return c
			}
		}
		return 0
	})
	return sorted, nil
}

// checkKey rejects records whose sort key is absent. Only string fields can
// be absent; numeric fields always carry a value.
func checkKey(employees []Employee, field Field) error {
	switch field {
	case FieldName:
		for _, e := range employees {
			if e.Name == "" {
				return errors.InvalidRecord("name").WithDetail("id", e.ID)
			}
		}
	case FieldDepartment:
		for _, e := range employees {
			if e.Department == "" {
				return errors.InvalidRecord("department").WithDetail("id", e.ID)
			}
		}
	case FieldAge, FieldSalary:
	default:
		return errors.InvalidInput("field", "unknown sort field: "+string(field))
	}
	return nil
}

func compareField(a, b Employee, field Field) int {
	switch field {
	case FieldName:
		return cmp.Compare(a.Name, b.Name)
	case FieldAge:
		return cmp.Compare(a.Age, b.Age)
	case FieldSalary:
		return cmp.Compare(a.Salary, b.Salary)
	case FieldDepartment:
		return cmp.Compare(a.Department, b.Department)
	default:
		return 0
	}
}
