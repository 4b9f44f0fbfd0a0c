// FILE: internal/entity/commission_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type CommissionStatus string

const (
	CommissionStatusPending   CommissionStatus = "pending"
	CommissionStatusApproved  CommissionStatus = "approved"
	CommissionStatusPaid      CommissionStatus = "paid"
	CommissionStatusCancelled CommissionStatus = "cancelled"
)

// CommissionEntry is one append-only ledger line. Entries are never deleted
// or re-amounted; corrections are new entries with a negative amount and a
// back-reference in CorrectsEntryId.
type CommissionEntry struct {
	Id             uuid.UUID
	AffiliateId    uuid.UUID
	OrderId        string
	ReferredUserId uuid.UUID
	OrderAmount    float64
	CommissionRate float64 // percentage snapshot at order time
	Amount         float64 // fixed at creation, never recomputed
	Status         CommissionStatus
	CorrectsEntryId *uuid.UUID
	WithdrawId      *uuid.UUID // set when settled by a paid withdraw request
	PaidAt          *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (s CommissionStatus) CanTransitionTo(next CommissionStatus) bool {
	switch s {
	case CommissionStatusPending:
		return next == CommissionStatusApproved || next == CommissionStatusCancelled
	case CommissionStatusApproved:
		// paid only as a side effect of withdraw settlement
		return next == CommissionStatusPaid
	default:
		return false
	}
}

// StatusTotal is one bucket of a group-by-status rollup.
type StatusTotal struct {
	Status string
	Count  int64
	Sum    float64
}

// Balances is the fold of a ledger for one affiliate.
type Balances struct {
	TotalCommission   float64
	PendingCommission float64
	ApprovedAvailable float64
	PaidCommission    float64
}

// FoldBalances derives balances from ledger entries and withdraw requests.
// ApprovedAvailable = sum(approved entries) - sum(pending|approved withdrawals).
// Paid withdrawals are not subtracted: settlement already moved the entries
// they consumed to paid, so counting them again would double-charge.
func FoldBalances(entries []*CommissionEntry, withdrawals []*WithdrawRequest) Balances {
	var b Balances
	var approvedSum float64
	for _, e := range entries {
		switch e.Status {
		case CommissionStatusPending:
			b.PendingCommission += e.Amount
			b.TotalCommission += e.Amount
		case CommissionStatusApproved:
			approvedSum += e.Amount
			b.TotalCommission += e.Amount
		case CommissionStatusPaid:
			b.PaidCommission += e.Amount
			b.TotalCommission += e.Amount
		}
	}
	var withdrawn float64
	for _, w := range withdrawals {
		if w.Status == WithdrawStatusPending || w.Status == WithdrawStatusApproved {
			withdrawn += w.Amount
		}
	}
	b.ApprovedAvailable = RoundMoney(approvedSum - withdrawn)
	b.TotalCommission = RoundMoney(b.TotalCommission)
	b.PendingCommission = RoundMoney(b.PendingCommission)
	b.PaidCommission = RoundMoney(b.PaidCommission)
	return b
}

// SettlementSplit describes the entry that straddles the settlement boundary.
// The straddling entry is marked paid in full, then two back-referencing
// entries restore the unsettled remainder: a negative paid correction and a
// positive approved remainder. The ledger stays append-only and the paid sum
// moves by exactly the settled portion.
type SettlementSplit struct {
	EntryId   uuid.UUID
	Settled   float64
	Remainder float64
}

// SettlementPlan is the outcome of planning a FIFO settlement.
type SettlementPlan struct {
	// PaidInFull lists entry ids consumed entirely, oldest first.
	PaidInFull []uuid.UUID
	Split      *SettlementSplit
}

// PlanSettlement walks approved entries oldest-first and selects the set that
// settles exactly amount. Entries must be sorted by CreatedAt ascending and
// their amounts must cover amount; callers guarantee this by validating the
// withdraw request against the available balance in the same transaction.
func PlanSettlement(approved []*CommissionEntry, amount float64) SettlementPlan {
	var plan SettlementPlan
	remaining := amount
	for _, e := range approved {
		if remaining <= 0 {
			break
		}
		if e.Amount <= remaining+0.004 { // tolerate float cents
			plan.PaidInFull = append(plan.PaidInFull, e.Id)
			remaining = RoundMoney(remaining - e.Amount)
			continue
		}
		plan.Split = &SettlementSplit{
			EntryId:   e.Id,
			Settled:   remaining,
			Remainder: RoundMoney(e.Amount - remaining),
		}
		remaining = 0
	}
	return plan
}
