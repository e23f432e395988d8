// Package controllers holds the gin handlers for every page and action.
// File: controllers/forms.go
package controllers

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"club-events/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// Form fields are pointers so "required" means the field was submitted; an
// empty value is accepted.

// EventForm is the admin event creation form.
type EventForm struct {
	Title       *string `form:"title" binding:"required"`
	Club        *string `form:"club" binding:"required"`
	Date        *string `form:"date" binding:"required"`
	Description *string `form:"description" binding:"required"`
}

// RegistrationForm is the attendee registration form.
type RegistrationForm struct {
	Name  *string `form:"name" binding:"required"`
	Email *string `form:"email" binding:"required"`
}

// bindForm binds the posted form into dst. Fields absent from the request come
// back as models.ErrValidation naming each field.
func bindForm(c *gin.Context, dst interface{}) error {
	err := c.ShouldBind(dst)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, strings.ToLower(fe.Field()))
		}
		return fmt.Errorf("missing %s: %w", strings.Join(fields, ", "), models.ErrValidation)
	}
	return fmt.Errorf("%v: %w", err, models.ErrValidation)
}

// pathID reads an integer path parameter. Anything that is not a
// non-negative integer is treated as an unknown route.
func pathID(c *gin.Context, name string) (int64, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 63)
	if err != nil {
		return 0, fmt.Errorf("%s %q is not an id: %w", name, raw, models.ErrNotFound)
	}
	return int64(id), nil
}

// fail attaches err for middleware.ErrorHandler and stops the chain.
func fail(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}
