package branch

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/pkg"
)

// setupAPIRouter wires the full stack (handler → service → repository → DB)
// against an in-memory database for handler testing.
func setupAPIRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := setupTestDB(t)
	h := NewBranchHandler(NewBranchService(NewBranchRepository(db)))

	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(h).RegisterRoutes(api)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestBranchHandler_CreateAndGet(t *testing.T) {
	r := setupAPIRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/branches", `{"branch_name":"Head Office","location":"Downtown"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d (body %s)", w.Code, w.Body.String())
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Message != "branch created successfully" {
		t.Errorf("message = %q", resp.Message)
	}

	data := resp.Data.(map[string]any)
	if data["branch_name"] != "Head Office" {
		t.Errorf("branch_name = %v", data["branch_name"])
	}
	if data["is_active"] != "Y" {
		t.Errorf("is_active = %v; want default Y", data["is_active"])
	}

	id := int(data["id"].(float64))
	w = doJSON(t, r, http.MethodGet, "/api/v1/branches/"+jsonItoa(id), "")
	if w.Code != http.StatusOK {
		t.Fatalf("get status = %d", w.Code)
	}
}

func jsonItoa(n int) string {
	b, _ := json.Marshal(n)
	return string(b)
}

func TestBranchHandler_Create_ValidationError(t *testing.T) {
	r := setupAPIRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/branches", `{"branch_name":""}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d; want 400", w.Code)
	}

	var resp pkg.ValidationErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := resp.Errors["branch_name"]; !ok {
		t.Errorf("errors = %v; want branch_name key", resp.Errors)
	}
}

func TestBranchHandler_Get_NotFound(t *testing.T) {
	r := setupAPIRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/v1/branches/999", "")
	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d; want 404", w.Code)
	}
}

func TestBranchHandler_Get_BadID(t *testing.T) {
	r := setupAPIRouter(t)

	for _, path := range []string{"/api/v1/branches/abc", "/api/v1/branches/0"} {
		w := doJSON(t, r, http.MethodGet, path, "")
		if w.Code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d; want 400", path, w.Code)
		}
	}
}

func TestBranchHandler_List_Envelope(t *testing.T) {
	r := setupAPIRouter(t)

	for _, name := range []string{"alpha", "bravo", "charlie"} {
		w := doJSON(t, r, http.MethodPost, "/api/v1/branches", `{"branch_name":"`+name+`"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("seed %s: status %d", name, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/v1/branches?page=1&size=2", "")
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	page := resp.Data.(map[string]any)
	if page["currentPage"] != float64(1) || page["size"] != float64(2) {
		t.Errorf("pagination metadata = %v", page)
	}
	if page["totalCount"] != float64(3) || page["totalPages"] != float64(2) {
		t.Errorf("totals = %v/%v; want 3/2", page["totalCount"], page["totalPages"])
	}
	if len(page["data"].([]any)) != 2 {
		t.Errorf("data length = %d; want 2", len(page["data"].([]any)))
	}
}

func TestBranchHandler_UpdateAndDelete(t *testing.T) {
	r := setupAPIRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/v1/branches", `{"branch_name":"Old Name"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("create status = %d", w.Code)
	}
	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	id := jsonItoa(int(resp.Data.(map[string]any)["id"].(float64)))

	w = doJSON(t, r, http.MethodPut, "/api/v1/branches/"+id, `{"branch_name":"New Name"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("update status = %d (body %s)", w.Code, w.Body.String())
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := resp.Data.(map[string]any)["branch_name"]; got != "New Name" {
		t.Errorf("branch_name after update = %v", got)
	}

	w = doJSON(t, r, http.MethodDelete, "/api/v1/branches/"+id, "")
	if w.Code != http.StatusOK {
		t.Fatalf("delete status = %d", w.Code)
	}

	// Deleting again is a data error, not a silent success.
	w = doJSON(t, r, http.MethodDelete, "/api/v1/branches/"+id, "")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("second delete status = %d; want 500", w.Code)
	}
}
