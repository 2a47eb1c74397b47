package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/apierr"
	"github.com/8180e/personal-finance-dashboard/internal/cqrs"
	"github.com/8180e/personal-finance-dashboard/internal/models"
)

// ---- mock implementations ----

type mockUserServicer struct {
	registerFn     func(cqrs.RegisterUserCommand) (models.PublicUser, error)
	authenticateFn func(cqrs.AuthenticateCommand) (models.PublicUser, error)
}

func (m *mockUserServicer) Register(cmd cqrs.RegisterUserCommand) (models.PublicUser, error) {
	if m.registerFn != nil {
		return m.registerFn(cmd)
	}
	return models.PublicUser{}, fmt.Errorf("not configured")
}

func (m *mockUserServicer) Authenticate(cmd cqrs.AuthenticateCommand) (models.PublicUser, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(cmd)
	}
	return models.PublicUser{}, fmt.Errorf("not configured")
}

type mockTokenIssuer struct {
	issueFn func(models.PublicUser) (string, error)
}

func (m *mockTokenIssuer) Issue(user models.PublicUser) (string, error) {
	if m.issueFn != nil {
		return m.issueFn(user)
	}
	return "mock.jwt.token", nil
}

// ---- helpers ----

func newAuthTestRouter(users UserServicer, tokens TokenIssuer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAuthHandler(users, tokens)
	v1 := r.Group("/v1/auth")
	v1.POST("/signup", h.Signup)
	v1.POST("/signin", h.Signin)
	return r
}

func authDoRequest(router *gin.Engine, method, url string, body interface{}) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, nil)
	if body != nil {
		b, _ := json.Marshal(body)
		req, _ = http.NewRequest(method, url, strings.NewReader(string(b)))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ---- test data ----

var authTestUser = models.PublicUser{ID: "usr-001", Name: "Alice", Email: "alice@example.com"}

// ---- tests ----

func TestSignup(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		registerFn     func(cqrs.RegisterUserCommand) (models.PublicUser, error)
		expectedStatus int
	}{
		{
			name: "created - valid registration returns token",
			body: map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"},
			registerFn: func(cmd cqrs.RegisterUserCommand) (models.PublicUser, error) {
				return authTestUser, nil
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name: "conflict - email already registered",
			body: map[string]string{"name": "Alice", "email": "alice@example.com", "password": "secret123"},
			registerFn: func(cmd cqrs.RegisterUserCommand) (models.PublicUser, error) {
				return models.PublicUser{}, apierr.Conflictf("User already exists")
			},
			expectedStatus: http.StatusConflict,
		},
		{
			name:           "bad request - missing fields",
			body:           map[string]string{"email": "alice@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - invalid email",
			body:           map[string]string{"name": "Alice", "email": "not-an-email", "password": "secret123"},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "bad request - short password",
			body:           map[string]string{"name": "Alice", "email": "alice@example.com", "password": "abc"},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserServicer{registerFn: tt.registerFn}
			router := newAuthTestRouter(users, &mockTokenIssuer{})
			w := authDoRequest(router, http.MethodPost, "/v1/auth/signup", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
			if tt.expectedStatus == http.StatusCreated {
				var resp AuthResponse
				if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil || resp.Token == "" {
					t.Errorf("expected token in response, got %s", w.Body.String())
				}
			}
		})
	}
}

func TestSignin(t *testing.T) {
	tests := []struct {
		name           string
		body           interface{}
		authenticateFn func(cqrs.AuthenticateCommand) (models.PublicUser, error)
		expectedStatus int
	}{
		{
			name: "ok - valid credentials return token",
			body: map[string]string{"email": "alice@example.com", "password": "secret123"},
			authenticateFn: func(cmd cqrs.AuthenticateCommand) (models.PublicUser, error) {
				return authTestUser, nil
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "not found - unknown email",
			body: map[string]string{"email": "nobody@example.com", "password": "secret123"},
			authenticateFn: func(cmd cqrs.AuthenticateCommand) (models.PublicUser, error) {
				return models.PublicUser{}, apierr.NotFoundf("User not found")
			},
			expectedStatus: http.StatusNotFound,
		},
		{
			name: "unauthorized - wrong password",
			body: map[string]string{"email": "alice@example.com", "password": "wrong"},
			authenticateFn: func(cmd cqrs.AuthenticateCommand) (models.PublicUser, error) {
				return models.PublicUser{}, apierr.Unauthorizedf("Invalid password")
			},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "bad request - missing password",
			body:           map[string]string{"email": "alice@example.com"},
			expectedStatus: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := &mockUserServicer{authenticateFn: tt.authenticateFn}
			router := newAuthTestRouter(users, &mockTokenIssuer{})
			w := authDoRequest(router, http.MethodPost, "/v1/auth/signin", tt.body)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
