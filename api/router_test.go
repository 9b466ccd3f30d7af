package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/beka-birhanu/vinom-posemaze/api/i"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingController struct{}

func (pingController) RegisterPublic(r *gin.RouterGroup) {
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func (pingController) RegisterProtected(r *gin.RouterGroup) {
	r.POST("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })
}

func denyAll(c *gin.Context) {
	c.AbortWithStatus(http.StatusUnauthorized)
}

func TestRouterEngine(t *testing.T) {
	engine := NewRouter(Config{
		BaseURL:                 "/api",
		Mode:                    gin.TestMode,
		Controllers:             []i.Controller{pingController{}},
		AuthorizationMiddleware: denyAll,
	}).Engine()

	t.Run("Public routes skip authorization", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "pong", w.Body.String())
	})

	t.Run("Protected routes require authorization", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/ping", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Unknown routes", func(t *testing.T) {
		w := httptest.NewRecorder()
		engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/ping", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
