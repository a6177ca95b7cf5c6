package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/hrstack/hrms/internal/domain"
	"github.com/hrstack/hrms/internal/pkg"
)

// fakeAuthService is a canned Service for handler tests.
type fakeAuthService struct {
	loginResp    *TokenResponse
	loginErr     error
	registerUser *domain.User
	registerErr  error
}

func (f *fakeAuthService) Login(context.Context, string, string) (*TokenResponse, error) {
	return f.loginResp, f.loginErr
}

func (f *fakeAuthService) Register(context.Context, string, string, string) (*domain.User, error) {
	return f.registerUser, f.registerErr
}

func setupAuthRouter(svc Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api/v1")
	NewModule(NewHandler(svc)).RegisterRoutes(api)
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestLoginHandler_Success(t *testing.T) {
	svc := &fakeAuthService{loginResp: &TokenResponse{Token: "tok123", ExpiresAt: 1893456000}}
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/v1/auth/login", `{"email":"op@example.com","password":"long-enough"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := resp.Data.(map[string]any)
	if data["token"] != "tok123" {
		t.Errorf("token = %v", data["token"])
	}
}

func TestLoginHandler_BadCredentials(t *testing.T) {
	svc := &fakeAuthService{loginErr: domain.ErrUnauthorized}
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/v1/auth/login", `{"email":"op@example.com","password":"long-enough"}`)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d; want 401", w.Code)
	}
}

func TestLoginHandler_ValidationError(t *testing.T) {
	r := setupAuthRouter(&fakeAuthService{})

	w := postJSON(r, "/api/v1/auth/login", `{"email":"not-an-email","password":"short"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d; want 400", w.Code)
	}
}

func TestRegisterHandler_Success(t *testing.T) {
	user := &domain.User{Name: "Operator", Email: "op@example.com", PasswordHash: "secret-hash"}
	user.ID = 1
	r := setupAuthRouter(&fakeAuthService{registerUser: user})

	w := postJSON(r, "/api/v1/auth/register", `{"name":"Operator","email":"op@example.com","password":"long-enough"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("status = %d (body %s)", w.Code, w.Body.String())
	}

	// The password hash must never appear in the response body.
	if strings.Contains(w.Body.String(), "secret-hash") {
		t.Error("response leaked the password hash")
	}

	var resp pkg.Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	data := resp.Data.(map[string]any)
	if data["email"] != "op@example.com" {
		t.Errorf("email = %v", data["email"])
	}
}

func TestRegisterHandler_DuplicateEmailIs409(t *testing.T) {
	svc := &fakeAuthService{registerErr: domain.NewAppError(domain.CodeAlreadyExists, "email already registered", nil)}
	r := setupAuthRouter(svc)

	w := postJSON(r, "/api/v1/auth/register", `{"name":"Operator","email":"op@example.com","password":"long-enough"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("status = %d; want 409", w.Code)
	}
}
