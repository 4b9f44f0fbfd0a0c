package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestCommissionStatusTransitions(t *testing.T) {
	tests := []struct {
		name string
		from CommissionStatus
		to   CommissionStatus
		want bool
	}{
		{"pending to approved", CommissionStatusPending, CommissionStatusApproved, true},
		{"pending to cancelled", CommissionStatusPending, CommissionStatusCancelled, true},
		{"pending to paid skips review", CommissionStatusPending, CommissionStatusPaid, false},
		{"approved to paid", CommissionStatusApproved, CommissionStatusPaid, true},
		{"approved back to pending", CommissionStatusApproved, CommissionStatusPending, false},
		{"approved to cancelled", CommissionStatusApproved, CommissionStatusCancelled, false},
		{"paid is terminal", CommissionStatusPaid, CommissionStatusApproved, false},
		{"cancelled is terminal", CommissionStatusCancelled, CommissionStatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func entry(status CommissionStatus, amount float64) *CommissionEntry {
	return &CommissionEntry{Id: uuid.New(), Amount: amount, Status: status}
}

func withdrawal(status WithdrawStatus, amount float64) *WithdrawRequest {
	return &WithdrawRequest{Id: uuid.New(), Amount: amount, Status: status}
}

func TestFoldBalances(t *testing.T) {
	entries := []*CommissionEntry{
		entry(CommissionStatusPending, 10),
		entry(CommissionStatusApproved, 30),
		entry(CommissionStatusApproved, 20),
		entry(CommissionStatusPaid, 40),
		entry(CommissionStatusCancelled, 99), // excluded everywhere
	}
	withdrawals := []*WithdrawRequest{
		withdrawal(WithdrawStatusPending, 5),
		withdrawal(WithdrawStatusApproved, 10),
		withdrawal(WithdrawStatusPaid, 15),    // already settled, must not subtract
		withdrawal(WithdrawStatusRejected, 7), // released, must not subtract
	}

	b := FoldBalances(entries, withdrawals)

	assert.Equal(t, 100.0, b.TotalCommission)
	assert.Equal(t, 10.0, b.PendingCommission)
	assert.Equal(t, 40.0, b.PaidCommission)
	// 50 approved minus 15 reserved by open withdrawals
	assert.Equal(t, 35.0, b.ApprovedAvailable)
}

func TestFoldBalancesEmpty(t *testing.T) {
	b := FoldBalances(nil, nil)
	assert.Equal(t, Balances{}, b)
}

func TestFoldBalancesNegativeCorrections(t *testing.T) {
	// A settlement split leaves a paid correction with a negative amount and
	// an approved remainder; the fold must net them out.
	entries := []*CommissionEntry{
		entry(CommissionStatusPaid, 30),
		entry(CommissionStatusPaid, -12), // correction
		entry(CommissionStatusApproved, 12),
	}

	b := FoldBalances(entries, nil)

	assert.Equal(t, 18.0, b.PaidCommission)
	assert.Equal(t, 12.0, b.ApprovedAvailable)
	assert.Equal(t, 30.0, b.TotalCommission)
}

func approvedAt(amount float64, createdAt time.Time) *CommissionEntry {
	return &CommissionEntry{
		Id:        uuid.New(),
		Amount:    amount,
		Status:    CommissionStatusApproved,
		CreatedAt: createdAt,
	}
}

func TestPlanSettlement(t *testing.T) {
	base := time.Now()
	e1 := approvedAt(10, base)
	e2 := approvedAt(20, base.Add(time.Minute))
	e3 := approvedAt(30, base.Add(2*time.Minute))
	approved := []*CommissionEntry{e1, e2, e3}

	t.Run("exact fit consumes oldest first", func(t *testing.T) {
		plan := PlanSettlement(approved, 30)
		assert.Equal(t, []uuid.UUID{e1.Id, e2.Id}, plan.PaidInFull)
		assert.Nil(t, plan.Split)
	})

	t.Run("straddling entry is split", func(t *testing.T) {
		plan := PlanSettlement(approved, 25)
		assert.Equal(t, []uuid.UUID{e1.Id}, plan.PaidInFull)
		if assert.NotNil(t, plan.Split) {
			assert.Equal(t, e2.Id, plan.Split.EntryId)
			assert.Equal(t, 15.0, plan.Split.Settled)
			assert.Equal(t, 5.0, plan.Split.Remainder)
		}
	})

	t.Run("amount below first entry splits it", func(t *testing.T) {
		plan := PlanSettlement(approved, 4)
		assert.Empty(t, plan.PaidInFull)
		if assert.NotNil(t, plan.Split) {
			assert.Equal(t, e1.Id, plan.Split.EntryId)
			assert.Equal(t, 4.0, plan.Split.Settled)
			assert.Equal(t, 6.0, plan.Split.Remainder)
		}
	})

	t.Run("full balance consumes everything", func(t *testing.T) {
		plan := PlanSettlement(approved, 60)
		assert.Equal(t, []uuid.UUID{e1.Id, e2.Id, e3.Id}, plan.PaidInFull)
		assert.Nil(t, plan.Split)
	})

	t.Run("float cents do not force a phantom split", func(t *testing.T) {
		cents := []*CommissionEntry{
			approvedAt(0.1, base),
			approvedAt(0.2, base.Add(time.Second)),
		}
		plan := PlanSettlement(cents, 0.3)
		assert.Len(t, plan.PaidInFull, 2)
		assert.Nil(t, plan.Split)
	})
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 1.23, RoundMoney(1.2349))
	assert.Equal(t, 1.24, RoundMoney(1.2351))
	assert.Equal(t, -1.24, RoundMoney(-1.2351))
	assert.Equal(t, 0.0, RoundMoney(0))
}
