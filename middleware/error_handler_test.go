// file: middleware/error_handler_test.go
package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-events/logger"
	"club-events/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupErrorTestRouter(err error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger.Discard()
	router := gin.New()
	router.Use(SecurityHeaders(), ErrorHandler())
	router.GET("/fail", func(c *gin.Context) {
		_ = c.Error(err)
		c.Abort()
	})
	router.GET("/ok", func(c *gin.Context) {
		c.String(http.StatusOK, "fine")
	})
	return router
}

func TestErrorHandler_MapsKinds(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", fmt.Errorf("event 9: %w", models.ErrNotFound), http.StatusNotFound},
		{"validation", fmt.Errorf("title: %w", models.ErrValidation), http.StatusBadRequest},
		{"storage", errors.Join(models.ErrStorage, errors.New("disk I/O error")), http.StatusInternalServerError},
		{"export", errors.Join(models.ErrExport, errors.New("read-only fs")), http.StatusInternalServerError},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			router := setupErrorTestRouter(tc.err)

			req, _ := http.NewRequest("GET", "/fail", nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tc.status, w.Code)
			assert.NotContains(t, w.Body.String(), "disk I/O error")
		})
	}
}

func TestErrorHandler_PassesThroughSuccess(t *testing.T) {
	router := setupErrorTestRouter(nil)

	req, _ := http.NewRequest("GET", "/ok", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "fine", w.Body.String())
	assert.Equal(t, "SAMEORIGIN", w.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}
