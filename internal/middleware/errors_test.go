package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/muzahidswe/fs17-Backend-project/internal/apperror"
)

func errorRouter(handler gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", handler)
	return router
}

func TestErrorHandlerMapsKnownVariant(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		_ = c.Error(apperror.NotFound("Product not found"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Product not found"}`, rec.Body.String())
}

func TestErrorHandlerWrapsUnknownErrorInto500(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		_ = c.Error(errors.New("driver: connection refused"))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"Internal server error"}`, rec.Body.String())
}

func TestErrorHandlerLeavesWrittenResponseAlone(t *testing.T) {
	router := errorRouter(func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
		_ = c.Error(apperror.Internal(""))
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
