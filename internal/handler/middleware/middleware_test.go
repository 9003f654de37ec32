//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"spotlight-ledger/internal/domain/account"
	"spotlight-ledger/internal/handler/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedValidator struct {
	id   uuid.UUID
	role account.Role
}

func (v fixedValidator) ValidateToken(token string) (uuid.UUID, account.Role, error) {
	if token != "valid" {
		return uuid.Nil, "", errors.New("invalid token")
	}
	return v.id, v.role, nil
}

func newEngine(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(mw...)
	return engine
}

func serve(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestRequestLogger(t *testing.T) {
	engine := newEngine(middleware.RequestLogger())
	engine.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, middleware.GetRequestID(c))
	})

	t.Run("受け取ったIDを引き継ぐ", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "req-123")

		w := serve(engine, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
		assert.Equal(t, "req-123", w.Body.String())
	})

	t.Run("未指定なら発行する", func(t *testing.T) {
		w := serve(engine, httptest.NewRequest(http.MethodGet, "/ping", nil))

		id := w.Header().Get("X-Request-ID")
		_, err := uuid.Parse(id)
		require.NoError(t, err)
		assert.Equal(t, id, w.Body.String())
	})
}

func TestAuthMiddleware(t *testing.T) {
	userID := uuid.New()
	auth := middleware.NewAuthMiddleware(fixedValidator{id: userID, role: account.RoleUser})

	engine := newEngine()
	engine.GET("/me", auth.RequireAuth(), func(c *gin.Context) {
		id, ok := middleware.GetAccountID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id.String())
	})
	engine.GET("/admin", auth.RequireAuth(), auth.RequireRole(account.RoleAdmin), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{name: "トークンなし", path: "/me", status: http.StatusUnauthorized},
		{name: "Bearer以外", path: "/me", header: "Basic valid", status: http.StatusUnauthorized},
		{name: "無効なトークン", path: "/me", header: "Bearer broken", status: http.StatusUnauthorized},
		{name: "有効なトークン", path: "/me", header: "Bearer valid", status: http.StatusOK},
		{name: "権限不足", path: "/admin", header: "Bearer valid", status: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			w := serve(engine, req)

			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusOK {
				assert.Equal(t, userID.String(), w.Body.String())
			}
		})
	}
}

func TestCustomRecovery(t *testing.T) {
	engine := newEngine(middleware.CustomRecovery())
	engine.GET("/boom", func(*gin.Context) {
		panic("boom")
	})

	w := serve(engine, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Internal server error"}}`, w.Body.String())
}
