package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestPasswordHashAndCheck(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cretpass" {
		t.Fatal("password stored in plain text")
	}
	if !CheckPasswordHash("s3cretpass", hash) {
		t.Error("correct password rejected")
	}
	if CheckPasswordHash("wrongpass", hash) {
		t.Error("wrong password accepted")
	}
}

func TestGenerateTokenRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	if _, err := GenerateToken("user-1", "admin@minimind.agency"); err == nil {
		t.Error("expected error without JWT_SECRET")
	}
}

func runAuthMiddleware(authHeader string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/messages", nil)
	if authHeader != "" {
		c.Request.Header.Set("Authorization", authHeader)
	}
	AuthMiddleware()(c)
	return w, c
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w, _ := runAuthMiddleware("")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareInvalidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	w, _ := runAuthMiddleware("Bearer not-a-token")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", w.Code)
	}
}

func TestAuthMiddlewareWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("user-1", "admin@minimind.agency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Setenv("JWT_SECRET", "rotated-secret")
	w, _ := runAuthMiddleware("Bearer " + token)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 after secret rotation, got %d", w.Code)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateToken("user-1", "admin@minimind.agency")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	w, c := runAuthMiddleware("Bearer " + token)
	if w.Code == http.StatusUnauthorized {
		t.Fatalf("valid token rejected: %s", w.Body.String())
	}
	if got, ok := c.Get("userEmail"); !ok || got != "admin@minimind.agency" {
		t.Errorf("expected userEmail in context, got %v", got)
	}
	if got, ok := c.Get("userId"); !ok || got != "user-1" {
		t.Errorf("expected userId in context, got %v", got)
	}
}
