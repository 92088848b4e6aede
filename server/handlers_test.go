package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/recordkit/logger"
	"github.com/kbukum/recordkit/server"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	handlers, err := server.NewHandlers("recordkit-test", logger.NewDefault("recordkit-test"))
	if err != nil {
		t.Fatalf("failed to build handlers: %v", err)
	}

	engine := gin.New()
	handlers.Register(engine)
	return engine
}

func doGet(t *testing.T, engine *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	engine.ServeHTTP(rr, httptest.NewRequest("GET", path, http.NoBody))
	return rr
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Count int             `json:"count"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder, out any) int {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rr.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not a valid envelope: %v", err)
	}
	if out != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("cannot decode data field: %v", err)
		}
	}
	return env.Count
}

func TestHealth(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/health")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("status = %s, want ok", body["status"])
	}
}

func TestVersionEndpoint(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/version")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var info struct {
		Version string `json:"version"`
	}
	decodeEnvelope(t, rr, &info)
	if info.Version == "" {
		t.Error("expected a non-empty version")
	}
}

func TestEmployeesSorted_DefaultByName(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/employees/sorted")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var employees []struct {
		Name string `json:"name"`
	}
	count := decodeEnvelope(t, rr, &employees)
	if count != 5 || len(employees) != 5 {
		t.Fatalf("expected 5 employees, got count=%d len=%d", count, len(employees))
	}
	want := []string{"Alice", "Bob", "Charlie", "Diana", "Evan"}
	for i, w := range want {
		if employees[i].Name != w {
			t.Errorf("position %d: got %s, want %s", i, employees[i].Name, w)
		}
	}
}

func TestEmployeesSorted_SalaryDescending(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/employees/sorted?by=salary&order=desc")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var employees []struct {
		Salary float64 `json:"salary"`
	}
	decodeEnvelope(t, rr, &employees)
	for i := 1; i < len(employees); i++ {
		if employees[i].Salary > employees[i-1].Salary {
			t.Fatalf("salaries not descending at position %d", i)
		}
	}
}

func TestEmployeesSorted_UnknownField(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/employees/sorted?by=height")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestEmployeesSorted_BadOrder(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/employees/sorted?order=sideways")

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestStudentsTop_DefaultThreshold(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/students/top")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var students []struct {
		Name  string  `json:"name"`
		Marks float64 `json:"marks"`
	}
	count := decodeEnvelope(t, rr, &students)
	if count != 3 {
		t.Fatalf("expected 3 students above 75, got %d", count)
	}
	want := []string{"John", "Sarah", "Mike"}
	for i, w := range want {
		if students[i].Name != w {
			t.Errorf("position %d: got %s, want %s", i, students[i].Name, w)
		}
	}
}

func TestStudentsTop_CustomThreshold(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/students/top?threshold=90")

	var students []struct {
		Name string `json:"name"`
	}
	count := decodeEnvelope(t, rr, &students)
	if count != 1 || students[0].Name != "John" {
		t.Fatalf("expected only John above 90, got %v", students)
	}
}

func TestStudentsTop_Limit(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/students/top?limit=2")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var students []struct {
		Name string `json:"name"`
	}
	count := decodeEnvelope(t, rr, &students)
	if count != 2 {
		t.Fatalf("expected 2 students with limit=2, got %d", count)
	}
	want := []string{"John", "Sarah"}
	for i, w := range want {
		if students[i].Name != w {
			t.Errorf("position %d: got %s, want %s", i, students[i].Name, w)
		}
	}
}

func TestStudentsTop_InvalidLimit(t *testing.T) {
	engine := newTestRouter(t)

	for _, path := range []string{
		"/v1/students/top?limit=abc",
		"/v1/students/top?limit=0",
		"/v1/students/top?limit=-3",
	} {
		rr := doGet(t, engine, path)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rr.Code)
		}
	}
}

func TestStudentsTop_InvalidThreshold(t *testing.T) {
	engine := newTestRouter(t)

	for _, path := range []string{
		"/v1/students/top?threshold=abc",
		"/v1/students/top?threshold=150",
	} {
		rr := doGet(t, engine, path)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400, got %d", path, rr.Code)
		}
	}
}

func TestStudentNames(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/students/names")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var names []string
	decodeEnvelope(t, rr, &names)
	want := []string{"John", "Sarah", "Mike"}
	if len(names) != len(want) {
		t.Fatalf("expected %d names, got %d", len(want), len(names))
	}
	for i, w := range want {
		if names[i] != w {
			t.Errorf("position %d: got %s, want %s", i, names[i], w)
		}
	}
}

func TestProductGroups(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/groups")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var groups []struct {
		Category string `json:"category"`
		Count    int    `json:"count"`
	}
	decodeEnvelope(t, rr, &groups)
	if len(groups) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(groups))
	}
	// First-seen order: Electronics before Furniture.
	if groups[0].Category != "Electronics" || groups[0].Count != 3 {
		t.Errorf("first group = %+v, want Electronics with 3 products", groups[0])
	}
	if groups[1].Category != "Furniture" || groups[1].Count != 2 {
		t.Errorf("second group = %+v, want Furniture with 2 products", groups[1])
	}
}

func TestProductCategories(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/categories")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var categories []string
	count := decodeEnvelope(t, rr, &categories)
	want := []string{"Electronics", "Furniture"}
	if count != len(want) || len(categories) != len(want) {
		t.Fatalf("expected %d distinct categories, got %v", len(want), categories)
	}
	for i, w := range want {
		if categories[i] != w {
			t.Errorf("position %d: got %s, want %s", i, categories[i], w)
		}
	}
}

func TestAveragePrice(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/average-price")

	var averages map[string]float64
	decodeEnvelope(t, rr, &averages)
	if got := averages["Electronics"]; got != 11000 {
		t.Errorf("Electronics average = %v, want 11000", got)
	}
	if got := averages["Furniture"]; got != 3250 {
		t.Errorf("Furniture average = %v, want 3250", got)
	}
}

func TestMaxPriced(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/max")

	var p struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}
	decodeEnvelope(t, rr, &p)
	if p.Name != "Workstation" || p.Price != 20000 {
		t.Errorf("max priced = %+v, want Workstation at 20000", p)
	}
}

func TestInventoryValue(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/inventory-value")

	var body struct {
		Total float64 `json:"total"`
	}
	decodeEnvelope(t, rr, &body)
	if body.Total != 212000 {
		t.Errorf("total = %v, want 212000", body.Total)
	}
}

func TestPriceRange(t *testing.T) {
	engine := newTestRouter(t)
	rr := doGet(t, engine, "/v1/products/price-range?low=3000&high=10000")

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var products []struct {
		Price float64 `json:"price"`
	}
	count := decodeEnvelope(t, rr, &products)
	if count != 3 {
		t.Fatalf("expected 3 products in [3000, 10000], got %d", count)
	}
	for _, p := range products {
		if p.Price < 3000 || p.Price > 10000 {
			t.Errorf("price %v outside requested range", p.Price)
		}
	}
}

func TestPriceRange_Errors(t *testing.T) {
	engine := newTestRouter(t)

	tests := []struct {
		path string
		want int
	}{
		{"/v1/products/price-range", http.StatusBadRequest},
		{"/v1/products/price-range?low=100", http.StatusBadRequest},
		{"/v1/products/price-range?low=abc&high=200", http.StatusBadRequest},
		{"/v1/products/price-range?low=500&high=100", http.StatusBadRequest},
	}
	for _, tt := range tests {
		rr := doGet(t, engine, tt.path)
		if rr.Code != tt.want {
			t.Errorf("%s: expected %d, got %d", tt.path, tt.want, rr.Code)
		}
	}
}
