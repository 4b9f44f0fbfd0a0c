package serverutils

import (
	"testing"
	"time"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestValidateRequestCouponExpiry(t *testing.T) {
	base := dto.CreateCouponRequest{
		Code:  "SUMMER20",
		Type:  "percentage",
		Value: 10,
	}

	t.Run("no expiry", func(t *testing.T) {
		req := base
		assert.NoError(t, ValidateRequest(req))
	})

	t.Run("future expiry", func(t *testing.T) {
		req := base
		future := time.Now().Add(48 * time.Hour)
		req.ExpiryDate = &future
		assert.NoError(t, ValidateRequest(req))
	})

	t.Run("past expiry is rejected", func(t *testing.T) {
		req := base
		past := time.Now().Add(-48 * time.Hour)
		req.ExpiryDate = &past
		err := ValidateRequest(req)
		assert.True(t, apperror.Is(err, apperror.KindValidation), "got: %v", err)
	})
}
