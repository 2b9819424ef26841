package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"portfolio-backend/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newAuthRouter() *gin.Engine {
	cfg := &config.Config{
		AdminUsername:  "admin",
		AdminPassword:  "hunter2",
		JWTSecret:      "test-secret",
		JWTExpireHours: 1,
	}
	ac := &AuthController{Cfg: cfg, Logger: zap.NewNop()}
	r := gin.New()
	r.POST("/auth/login", ac.Login)
	return r
}

func TestLogin(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("valid credentials return a token", func(t *testing.T) {
		r := newAuthRouter()

		w := performJSON(r, http.MethodPost, "/auth/login", gin.H{"username": "admin", "password": "hunter2"})

		assert.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Token string `json:"token"`
			Admin bool   `json:"admin"`
		}
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.NotEmpty(t, body.Token)
		assert.True(t, body.Admin)
	})

	t.Run("wrong password - 401", func(t *testing.T) {
		r := newAuthRouter()

		w := performJSON(r, http.MethodPost, "/auth/login", gin.H{"username": "admin", "password": "wrong"})

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid username or password")
	})

	t.Run("missing fields - 400", func(t *testing.T) {
		r := newAuthRouter()

		w := performJSON(r, http.MethodPost, "/auth/login", gin.H{"username": "admin"})

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
