package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newContactRouter(repo *fakeContentRepo) *gin.Engine {
	cc := &ContactController{Content: repo, Logger: zap.NewNop()}
	r := gin.New()
	r.POST("/contact", cc.CreateMessage)
	r.GET("/contact", cc.ListMessages)
	return r
}

func validContactBody() gin.H {
	return gin.H{
		"name":    "Jordan",
		"email":   "jordan@example.com",
		"subject": "Hi",
		"message": "Love the site",
	}
}

func TestCreateContactMessage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("persists and echoes the message", func(t *testing.T) {
		repo := &fakeContentRepo{}
		r := newContactRouter(repo)

		w := performJSON(r, http.MethodPost, "/contact", validContactBody())

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Len(t, repo.contacts, 1)
		assert.Equal(t, "Jordan", repo.contacts[0].Name)
	})

	t.Run("invalid email - 400", func(t *testing.T) {
		repo := &fakeContentRepo{}
		r := newContactRouter(repo)

		body := validContactBody()
		body["email"] = "not-an-email"
		w := performJSON(r, http.MethodPost, "/contact", body)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, repo.contacts)
	})

	t.Run("store failure - 500, a lost message is a real failure", func(t *testing.T) {
		r := newContactRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodPost, "/contact", validContactBody())

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestListContactMessages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("store failure degrades to an empty list", func(t *testing.T) {
		r := newContactRouter(&fakeContentRepo{err: errors.New("mongo down")})

		w := performJSON(r, http.MethodGet, "/contact", nil)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, "[]", w.Body.String())
	})
}
