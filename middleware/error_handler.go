// Package middleware provides request filters shared by every route.
// File: middleware/error_handler.go
package middleware

import (
	"errors"
	"net/http"

	"club-events/logger"
	"club-events/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns errors attached with c.Error into a plain-text response.
// Handlers attach the error, abort, and return; nothing is written when a
// handler already produced a response.
//
//	router.Use(middleware.ErrorHandler())
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, msg := StatusFor(err)

		if status >= http.StatusInternalServerError {
			logger.Error.Printf("ErrorHandler: %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)
		} else {
			logger.Warn.Printf("ErrorHandler: %s %s rejected: %v", c.Request.Method, c.Request.URL.Path, err)
		}

		if c.Writer.Written() {
			return
		}
		c.String(status, msg)
	}
}

// StatusFor maps the error kinds in models to an HTTP status and a short message.
func StatusFor(err error) (int, string) {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, models.ErrValidation):
		return http.StatusBadRequest, "Bad request: " + err.Error()
	case errors.Is(err, models.ErrExport):
		return http.StatusInternalServerError, "Could not create certificate"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
