package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithdrawStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from WithdrawStatus
		to   WithdrawStatus
		want bool
	}{
		{"pending to approved", WithdrawStatusPending, WithdrawStatusApproved, true},
		{"pending to rejected", WithdrawStatusPending, WithdrawStatusRejected, true},
		{"pending straight to paid", WithdrawStatusPending, WithdrawStatusPaid, false},
		{"approved to paid", WithdrawStatusApproved, WithdrawStatusPaid, true},
		{"approved to rejected", WithdrawStatusApproved, WithdrawStatusRejected, false},
		{"paid is terminal", WithdrawStatusPaid, WithdrawStatusApproved, false},
		{"rejected is terminal", WithdrawStatusRejected, WithdrawStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
