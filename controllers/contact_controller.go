package controllers

import (
	"net/http"

	"portfolio-backend/models"
	"portfolio-backend/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type ContactController struct {
	Content repository.ContentRepository
	Logger  *zap.Logger
}

// CreateMessage persists an inbound contact form submission. Unlike the
// content reads, a lost message is a real failure, so the store error
// surfaces as a 500.
func (cc *ContactController) CreateMessage(c *gin.Context) {
	var in models.ContactMessageCreate
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg := models.NewContactMessage(in)
	if err := cc.Content.InsertContactMessage(c.Request.Context(), msg); err != nil {
		cc.Logger.Error("error saving contact message", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
		return
	}
	c.JSON(http.StatusOK, msg)
}

func (cc *ContactController) ListMessages(c *gin.Context) {
	messages, err := cc.Content.ListContactMessages(c.Request.Context())
	if err != nil {
		cc.Logger.Warn("contact messages query failed", zap.Error(err))
		c.JSON(http.StatusOK, []models.ContactMessage{})
		return
	}
	c.JSON(http.StatusOK, messages)
}
