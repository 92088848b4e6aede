package server

import (
	"cmp"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/recordkit/errors"
	"github.com/kbukum/recordkit/pipeline"
	"github.com/kbukum/recordkit/student"
	"github.com/kbukum/recordkit/validation"
)

// thresholdParam reads the "threshold" query parameter, falling back to the
// package default and rejecting values outside 0-100.
func thresholdParam(c *gin.Context) (float64, error) {
	raw := c.Query("threshold")
	if raw == "" {
		return student.DefaultThreshold, nil
	}
	threshold, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, errors.InvalidInput("threshold", "must be a number").WithCause(err)
	}
	if err := validation.New().InRange("threshold", threshold, 0, 100).Validate(); err != nil {
		return 0, err
	}
	return threshold, nil
}

// limitParam reads the optional "limit" query parameter. Zero means no limit.
func limitParam(c *gin.Context) (int, error) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, nil
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		return 0, errors.InvalidInput("limit", "must be an integer").WithCause(err)
	}
	if limit < 1 {
		return 0, errors.InvalidInput("limit", "must be positive")
	}
	return limit, nil
}

// handleStudentsTop streams the student set through a filter and a stable
// marks-descending sort, optionally truncated to the first limit records.
func (h *Handlers) handleStudentsTop(c *gin.Context) {
	done := h.observe(c, "students.top")

	threshold, err := thresholdParam(c)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}
	limit, err := limitParam(c)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	p := pipeline.Filter(h.students.Pipeline(), func(s student.Student) bool {
		return s.Marks > threshold
	})
	p = pipeline.Sort(p, func(a, b student.Student) int {
		return cmp.Compare(b.Marks, a.Marks)
	})
	if limit > 0 {
		p = pipeline.Take(p, limit)
	}

	top, err := pipeline.Collect(h.students.Context(c.Request.Context()), p)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(len(top), nil)
	RespondOKWithCount(c, top, len(top))
}

// handleStudentNames returns only the names of the students above the
// threshold, in the same descending-marks order.
func (h *Handlers) handleStudentNames(c *gin.Context) {
	done := h.observe(c, "students.names")

	threshold, err := thresholdParam(c)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	names, err := student.Names(h.students.Items, threshold)
	if err != nil {
		done(0, err)
		RespondWithError(c, err)
		return
	}

	done(len(names), nil)
	RespondOKWithCount(c, names, len(names))
}
