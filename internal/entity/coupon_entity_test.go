package entity

import (
	"testing"
	"time"

	"affiliate-hub-be/internal/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidateCouponTerms(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	future := now.Add(48 * time.Hour)

	tests := []struct {
		name        string
		couponType  CouponType
		value       float64
		maxDiscount *float64
		expiry      *time.Time
		wantErr     bool
	}{
		{"valid percentage", CouponTypePercentage, 10, nil, nil, false},
		{"valid percentage with cap", CouponTypePercentage, 25, floatPtr(100), nil, false},
		{"percentage at 100", CouponTypePercentage, 100, nil, nil, false},
		{"percentage over 100", CouponTypePercentage, 101, nil, nil, true},
		{"zero percentage", CouponTypePercentage, 0, nil, nil, true},
		{"negative percentage", CouponTypePercentage, -5, nil, nil, true},
		{"valid fixed", CouponTypeFixed, 15, nil, nil, false},
		{"zero fixed", CouponTypeFixed, 0, nil, nil, true},
		{"fixed with cap", CouponTypeFixed, 15, floatPtr(10), nil, true},
		{"zero cap allowed", CouponTypePercentage, 10, floatPtr(0), nil, false},
		{"negative cap", CouponTypePercentage, 10, floatPtr(-1), nil, true},
		{"unknown type", CouponType("bogus"), 10, nil, nil, true},
		{"expiry in the future", CouponTypePercentage, 10, nil, &future, false},
		{"expiry in the past", CouponTypePercentage, 10, nil, &past, true},
		{"expiry right now", CouponTypePercentage, 10, nil, &now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCouponTerms(tt.couponType, tt.value, tt.maxDiscount, tt.expiry, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNormalizeCouponCode(t *testing.T) {
	assert.Equal(t, "SUMMER20", NormalizeCouponCode("  summer20 "))
	assert.Equal(t, "ABC", NormalizeCouponCode("abc"))
}

func TestDiscountFor(t *testing.T) {
	tests := []struct {
		name        string
		coupon      Coupon
		orderAmount float64
		want        float64
	}{
		{
			name:        "percentage",
			coupon:      Coupon{Type: CouponTypePercentage, Value: 10},
			orderAmount: 200,
			want:        20,
		},
		{
			name:        "percentage hits cap",
			coupon:      Coupon{Type: CouponTypePercentage, Value: 10, MaxDiscount: floatPtr(15)},
			orderAmount: 200,
			want:        15,
		},
		{
			name:        "percentage under cap",
			coupon:      Coupon{Type: CouponTypePercentage, Value: 10, MaxDiscount: floatPtr(50)},
			orderAmount: 200,
			want:        20,
		},
		{
			name:        "fixed",
			coupon:      Coupon{Type: CouponTypeFixed, Value: 30},
			orderAmount: 200,
			want:        30,
		},
		{
			name:        "fixed clamped to order amount",
			coupon:      Coupon{Type: CouponTypeFixed, Value: 30},
			orderAmount: 20,
			want:        20,
		},
		{
			name:        "percentage rounds to cents",
			coupon:      Coupon{Type: CouponTypePercentage, Value: 10},
			orderAmount: 19.99,
			want:        2.0, // 1.999 rounds up
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.coupon.DiscountFor(tt.orderAmount))
		})
	}
}

func TestCouponUsable(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	base := Coupon{
		ApprovalStatus: CouponApprovalApproved,
		IsActive:       true,
	}

	t.Run("approved and active", func(t *testing.T) {
		c := base
		assert.True(t, c.Usable(now))
	})

	t.Run("pending approval", func(t *testing.T) {
		c := base
		c.ApprovalStatus = CouponApprovalPending
		assert.False(t, c.Usable(now))
	})

	t.Run("deactivated", func(t *testing.T) {
		c := base
		c.IsActive = false
		assert.False(t, c.Usable(now))
	})

	t.Run("expired", func(t *testing.T) {
		c := base
		c.ExpiryDate = &past
		assert.False(t, c.Usable(now))
		assert.True(t, c.IsExpired(now))
	})

	t.Run("not yet expired", func(t *testing.T) {
		c := base
		c.ExpiryDate = &future
		assert.True(t, c.Usable(now))
	})

	t.Run("usage limit reached", func(t *testing.T) {
		c := base
		c.UsageLimit = intPtr(5)
		c.UsedCount = 5
		assert.False(t, c.Usable(now))
		assert.True(t, c.UsageExhausted())
	})

	t.Run("usage below limit", func(t *testing.T) {
		c := base
		c.UsageLimit = intPtr(5)
		c.UsedCount = 4
		assert.True(t, c.Usable(now))
	})
}

func TestCheckRedeemableKinds(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)

	base := Coupon{
		ApprovalStatus: CouponApprovalApproved,
		IsActive:       true,
	}

	t.Run("redeemable", func(t *testing.T) {
		c := base
		assert.NoError(t, c.CheckRedeemable(now))
	})

	t.Run("unapproved is a validation failure", func(t *testing.T) {
		c := base
		c.ApprovalStatus = CouponApprovalPending
		assert.True(t, apperror.Is(c.CheckRedeemable(now), apperror.KindValidation))
	})

	t.Run("expired is a validation failure", func(t *testing.T) {
		c := base
		c.ExpiryDate = &past
		assert.True(t, apperror.Is(c.CheckRedeemable(now), apperror.KindValidation))
	})

	t.Run("exhausted usage is an invalid transition", func(t *testing.T) {
		c := base
		c.UsageLimit = intPtr(5)
		c.UsedCount = 5
		assert.True(t, apperror.Is(c.CheckRedeemable(now), apperror.KindInvalidTransition))
	})
}
