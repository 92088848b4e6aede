package server

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/recordkit/employee"
	"github.com/kbukum/recordkit/validation"
)

// handleEmployeesSorted returns the employee dataset sorted by one or more
// fields. Query parameters: by (comma-separated field names, default "name")
// and order ("asc" or "desc", default "asc", applied to every field).
func (h *Handlers) handleEmployeesSorted(c *gin.Context) {
	done := h.observe(c, "employees.sorted")

	by := c.DefaultQuery("by", string(employee.FieldName))
	order := c.DefaultQuery("order", "asc")

	if err := validation.New().
		Required("by", by).
		OneOf("order", order, "asc", "desc").
		Validate(); err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	descending := order == "desc"
	var keys []employee.SortKey
	for _, part := range strings.Split(by, ",") {
		field, err := employee.ParseField(strings.TrimSpace(part))
		if err != nil {
			done(0, err)
			RespondWithError(c, err)
			return
		}
		keys = append(keys, employee.SortKey{Field: field, Descending: descending})
	}

	sorted, err := employee.SortBy(h.employees.Items, keys...)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(len(sorted), nil)
	RespondOKWithCount(c, sorted, len(sorted))
}
