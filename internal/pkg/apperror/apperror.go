// FILE: internal/pkg/apperror/apperror.go
package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies operation failures for callers and the HTTP layer.
type Kind string

const (
	KindValidation             Kind = "VALIDATION_ERROR"
	KindInvalidTransition      Kind = "INVALID_TRANSITION"
	KindForbidden              Kind = "FORBIDDEN"
	KindNotFound               Kind = "NOT_FOUND"
	KindInsufficientBalance    Kind = "INSUFFICIENT_BALANCE"
	KindBelowMinimum           Kind = "BELOW_MINIMUM"
	KindConcurrentModification Kind = "CONCURRENT_MODIFICATION"
	KindDuplicateRegistration  Kind = "DUPLICATE_REGISTRATION"
	KindDuplicateOrder         Kind = "DUPLICATE_ORDER"
)

// Error carries the taxonomy kind plus a human-readable reason. Reason is
// mandatory for invalid transitions and concurrent modifications.
type Error struct {
	Kind   Kind
	Reason string
	Field  string // populated for field-level validation failures
}

func (e *Error) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Field, e.Reason)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func New(kind Kind, reason string) *Error {
	return &Error{Kind: kind, Reason: reason}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// Validation builds a field-level validation error.
func Validation(field, reason string) *Error {
	return &Error{Kind: KindValidation, Reason: reason, Field: field}
}

// KindOf extracts the taxonomy kind, if err belongs to the taxonomy.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

// HTTPStatus maps a kind to the status code the REST layer responds with.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidation, KindBelowMinimum:
		return fiber.StatusBadRequest
	case KindForbidden:
		return fiber.StatusForbidden
	case KindNotFound:
		return fiber.StatusNotFound
	case KindInvalidTransition, KindDuplicateRegistration, KindDuplicateOrder, KindConcurrentModification:
		return fiber.StatusConflict
	case KindInsufficientBalance:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
