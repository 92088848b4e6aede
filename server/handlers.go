package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/recordkit/dataset"
	"github.com/kbukum/recordkit/employee"
	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/observability"
	"github.com/kbukum/recordkit/product"
	"github.com/kbukum/recordkit/student"
	"github.com/kbukum/recordkit/version"
)

// Handlers bundles the loaded datasets and exposes them as read-only routes.
type Handlers struct {
	serviceName string
	employees   *dataset.Set[employee.Employee]
	students    *dataset.Set[student.Student]
	products    *dataset.Set[product.Product]
	metrics     *observability.Metrics
	log         *logger.Logger
}

// NewHandlers loads the sample datasets and returns a Handlers ready to
// register. Loading fails only if a sample record is invalid.
func NewHandlers(serviceName string, log *logger.Logger) (*Handlers, error) {
	employees, err := dataset.Employees()
	if err != nil {
		return nil, err
	}
	students, err := dataset.Students()
	if err != nil {
		return nil, err
	}
	products, err := dataset.Products()
	if err != nil {
		return nil, err
	}
	h := &Handlers{
		serviceName: serviceName,
		employees:   employees,
		students:    students,
		products:    products,
		log:         log.WithComponent("handlers"),
	}
	h.log.Info("Datasets loaded", map[string]interface{}{
		"employees":         employees.Len(),
		"students":          students.Len(),
		"products":          products.Len(),
		"employees_load_id": employees.LoadID.String(),
		"students_load_id":  students.LoadID.String(),
		"products_load_id":  products.LoadID.String(),
	})
	return h, nil
}

// WithMetrics attaches an operation metrics recorder. Optional; handlers
// work without one.
func (h *Handlers) WithMetrics(m *observability.Metrics) *Handlers {
	h.metrics = m
	return h
}

// Register mounts all routes on the given router.
func (h *Handlers) Register(r gin.IRouter) {
	r.GET("/health", h.handleHealth)
	r.GET("/version", h.handleVersion)

	v1 := r.Group("/v1")
	v1.GET("/employees/sorted", h.handleEmployeesSorted)
	v1.GET("/students/top", h.handleStudentsTop)
	v1.GET("/students/names", h.handleStudentNames)
	v1.GET("/products/groups", h.handleProductGroups)
	v1.GET("/products/categories", h.handleCategories)
	v1.GET("/products/average-price", h.handleAveragePrice)
	v1.GET("/products/max", h.handleMaxPriced)
	v1.GET("/products/max-by-category", h.handleMaxPricedByCategory)
	v1.GET("/products/inventory-value", h.handleInventoryValue)
	v1.GET("/products/price-range", h.handlePriceRange)
}

// observe starts a span for the operation and returns a closure that ends it
// and records metrics. Call the closure exactly once, after the work is done.
func (h *Handlers) observe(c *gin.Context, op string) func(records int, err error) {
	ctx, span := observability.StartSpan(c.Request.Context(), op)
	c.Request = c.Request.WithContext(ctx)
	start := time.Now()
	return func(records int, err error) {
		if err != nil {
			observability.SetSpanError(ctx, err)
		}
		span.End()
		if h.metrics != nil {
			h.metrics.RecordOperation(ctx, op, records, time.Since(start), err)
		}
	}
}

func (h *Handlers) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": h.serviceName,
	})
}

func (h *Handlers) handleVersion(c *gin.Context) {
	RespondOK(c, version.GetVersionInfo())
}
