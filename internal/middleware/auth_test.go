package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/8180e/personal-finance-dashboard/internal/models"
	"github.com/8180e/personal-finance-dashboard/internal/token"
)

func newAuthProtectedRouter(tokens *token.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", Auth(tokens), func(c *gin.Context) {
		user, ok := CurrentUser(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "no user in context"})
			return
		}
		c.JSON(http.StatusOK, user)
	})
	return r
}

func TestAuth(t *testing.T) {
	tokens := token.NewService("test-secret")
	user := models.PublicUser{ID: "usr-001", Name: "Alice", Email: "alice@example.com"}
	valid, err := tokens.Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	foreign, err := token.NewService("other-secret").Issue(user)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	tests := []struct {
		name           string
		header         string
		expectedStatus int
	}{
		{"ok - valid bearer token", "Bearer " + valid, http.StatusOK},
		{"unauthorized - missing header", "", http.StatusUnauthorized},
		{"unauthorized - not a bearer scheme", "Basic abc123", http.StatusUnauthorized},
		{"unauthorized - malformed token", "Bearer garbage", http.StatusUnauthorized},
		{"unauthorized - wrong signing secret", "Bearer " + foreign, http.StatusUnauthorized},
	}

	router := newAuthProtectedRouter(tokens)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, _ := http.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			if w.Code != tt.expectedStatus {
				t.Errorf("expected %d got %d; body: %s", tt.expectedStatus, w.Code, w.Body.String())
			}
		})
	}
}
