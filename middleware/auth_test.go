package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
)

const testSecret = "test-secret"

func protectedRouter(secret string) *gin.Engine {
	r := gin.New()
	r.GET("/dashboard", RequireAdmin(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"sub": c.GetString(AdminKey)})
	})
	return r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := protectedRouter(testSecret)

	t.Run("valid admin token passes", func(t *testing.T) {
		token, err := CreateAccessToken(testSecret, "admin", 1)
		assert.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing header - 401", func(t *testing.T) {
		w := get(r, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("malformed header - 401", func(t *testing.T) {
		w := get(r, "Token abc")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("token signed with another secret - 401", func(t *testing.T) {
		token, err := CreateAccessToken("other-secret", "admin", 1)
		assert.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token - 401", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  "admin",
			"role": "admin",
			"exp":  time.Now().Add(-time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		assert.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token without admin role - 403", func(t *testing.T) {
		claims := jwt.MapClaims{
			"sub":  "viewer",
			"role": "viewer",
			"exp":  time.Now().Add(time.Hour).Unix(),
		}
		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
		assert.NoError(t, err)

		w := get(r, "Bearer "+token)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
