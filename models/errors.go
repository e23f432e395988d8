// File: models/errors.go
package models

import "errors"

// Error kinds shared by the store, services and HTTP layer. Callers wrap them
// with fmt.Errorf("...: %w", ...) and test with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
	ErrStorage    = errors.New("storage error")
	ErrExport     = errors.New("export error")
)
