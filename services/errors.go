// Package services owns the reservation core: entity CRUD, name
// deduplication, availability classification and sessions. All store-layer
// failures are translated to the typed errors below before they leave this
// package; controllers never see a raw driver error.
package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when a referenced row does not exist.
	// Handlers translate it into HTTP 404.
	ErrNotFound = errors.New("not_found")

	// ErrConflict signals a unique-constraint violation, e.g. a duplicate
	// passport or room number. Handlers translate it into HTTP 409.
	ErrConflict = errors.New("conflict")

	// ErrUnauthorized signals failed credentials or a missing/expired
	// session. Handlers translate it into HTTP 401.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports a rejected payload with a stable reason code.
// Handlers translate it into HTTP 400.
type ValidationError struct {
	Code string
}

func (e *ValidationError) Error() string {
	return e.Code
}

func validationErr(code string) error {
	return &ValidationError{Code: code}
}

// translateDBError converts driver/gorm failures into the typed taxonomy.
// Unique violations are matched by message the way both MySQL and SQLite
// report them.
func translateDBError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	msg := err.Error()
	if strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed") {
		return ErrConflict
	}
	return err
}
