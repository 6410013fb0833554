package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"points-calculator/internal/auth"
	"points-calculator/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(ts *auth.TokenService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/private", NewAuthMiddleware(ts).RequireAuth(), func(c *gin.Context) {
		c.String(http.StatusOK, c.GetString(SessionKey))
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	ts := auth.NewTokenService(config.Config{JWTSecret: "s", JWTExpiresIn: time.Hour})
	r := newRouter(ts)
	sid, token, err := ts.NewSession()
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
	}{
		{"missing", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized},
		{"empty bearer", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer abc", http.StatusUnauthorized},
		{"valid", "Bearer " + token, http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/private", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, tt.code, rec.Code)
			if tt.code == http.StatusOK {
				assert.Equal(t, sid, rec.Body.String())
			}
		})
	}
}
