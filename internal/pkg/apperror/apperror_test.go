package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	err := New(KindInsufficientBalance, "requested 100.00 but only 40.00 is available")

	kind, ok := KindOf(err)
	assert.True(t, ok)
	assert.Equal(t, KindInsufficientBalance, kind)

	kind, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
	assert.Equal(t, Kind(""), kind)

	// wrapped taxonomy errors are still classified
	wrapped := fmt.Errorf("recording commission: %w", err)
	assert.True(t, Is(wrapped, KindInsufficientBalance))
	assert.False(t, Is(wrapped, KindNotFound))
}

func TestValidationCarriesField(t *testing.T) {
	err := Validation("amount", "must be positive")
	assert.Equal(t, KindValidation, err.Kind)
	assert.Equal(t, "amount", err.Field)
	assert.Contains(t, err.Error(), "amount")
}

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, fiber.StatusBadRequest},
		{KindBelowMinimum, fiber.StatusBadRequest},
		{KindForbidden, fiber.StatusForbidden},
		{KindNotFound, fiber.StatusNotFound},
		{KindInvalidTransition, fiber.StatusConflict},
		{KindDuplicateRegistration, fiber.StatusConflict},
		{KindDuplicateOrder, fiber.StatusConflict},
		{KindConcurrentModification, fiber.StatusConflict},
		{KindInsufficientBalance, fiber.StatusUnprocessableEntity},
		{Kind("SOMETHING_ELSE"), fiber.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.kind))
		})
	}
}
