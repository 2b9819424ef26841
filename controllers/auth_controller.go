package controllers

import (
	"net/http"

	"portfolio-backend/config"
	"portfolio-backend/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthController struct {
	Cfg    *config.Config
	Logger *zap.Logger
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login checks the configured admin credentials and returns a dashboard
// token.
func (ac *AuthController) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Username != ac.Cfg.AdminUsername || req.Password != ac.Cfg.AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
		return
	}

	token, err := middleware.CreateAccessToken(ac.Cfg.JWTSecret, req.Username, ac.Cfg.JWTExpireHours)
	if err != nil {
		ac.Logger.Error("failed to issue admin token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "admin": true})
}
