package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAffiliateStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from AffiliateStatus
		to   AffiliateStatus
		want bool
	}{
		{"pending to active", AffiliateStatusPending, AffiliateStatusActive, true},
		{"pending to rejected", AffiliateStatusPending, AffiliateStatusRejected, true},
		{"pending to suspended", AffiliateStatusPending, AffiliateStatusSuspended, false},
		{"active to suspended", AffiliateStatusActive, AffiliateStatusSuspended, true},
		{"active to rejected", AffiliateStatusActive, AffiliateStatusRejected, false},
		{"suspended to active", AffiliateStatusSuspended, AffiliateStatusActive, true},
		{"suspended to rejected", AffiliateStatusSuspended, AffiliateStatusRejected, false},
		{"rejected is a dead end", AffiliateStatusRejected, AffiliateStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
