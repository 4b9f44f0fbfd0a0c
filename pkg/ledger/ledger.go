// Package ledger holds the append-only commission ledger operations shared by
// the order consumer and the admin workflows.
package ledger

import (
	"context"
	"time"

	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/apperror"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// Recompute rebuilds the affiliate's denormalized aggregates from the ledger.
// Aggregates are never incremented in place; every status change calls this
// inside the same transaction so the display values cannot drift.
func Recompute(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId uuid.UUID) error {
	entries, err := uow.CommissionRepository().FindAll(ctx, specification.ByAffiliateID{AffiliateID: affiliateId})
	if err != nil {
		return err
	}
	withdrawals, err := uow.WithdrawRepository().FindAll(ctx, specification.ByAffiliateID{AffiliateID: affiliateId})
	if err != nil {
		return err
	}

	b := entity.FoldBalances(entries, withdrawals)

	// One referral per organic entry; corrections are bookkeeping, not orders.
	referred := make(map[uuid.UUID]struct{})
	for _, e := range entries {
		if e.CorrectsEntryId == nil && e.Status != entity.CommissionStatusCancelled {
			referred[e.ReferredUserId] = struct{}{}
		}
	}

	return uow.AffiliateRepository().UpdateAggregates(ctx, affiliateId,
		len(referred), b.TotalCommission, b.PendingCommission, b.PaidCommission)
}

// ExecuteSettlement marks approved entries as paid, oldest first, until the
// withdrawn amount is covered. An entry straddling the boundary is paid in
// full and immediately corrected: a negative paid entry and a positive
// approved entry restore the unsettled remainder without rewriting history.
//
// Callers must hold the affiliate row lock and run inside a transaction.
func ExecuteSettlement(ctx context.Context, uow unitofwork.UnitOfWork, affiliateId, withdrawId uuid.UUID, amount float64) error {
	approved, err := uow.CommissionRepository().FindAll(ctx,
		specification.ByAffiliateID{AffiliateID: affiliateId},
		specification.ByStatus{Status: string(entity.CommissionStatusApproved)},
		specification.OrderBy{Field: "created_at", Desc: false},
	)
	if err != nil {
		return err
	}

	plan := entity.PlanSettlement(approved, amount)

	for _, entryId := range plan.PaidInFull {
		rows, err := uow.CommissionRepository().UpdateStatusIf(ctx, entryId,
			entity.CommissionStatusApproved, entity.CommissionStatusPaid, &withdrawId)
		if err != nil {
			return err
		}
		if rows == 0 {
			return apperror.New(apperror.KindConcurrentModification, "ledger entry changed during settlement")
		}
	}

	if plan.Split == nil {
		return nil
	}

	rows, err := uow.CommissionRepository().UpdateStatusIf(ctx, plan.Split.EntryId,
		entity.CommissionStatusApproved, entity.CommissionStatusPaid, &withdrawId)
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperror.New(apperror.KindConcurrentModification, "ledger entry changed during settlement")
	}

	straddle, err := uow.CommissionRepository().FindOne(ctx, specification.ByID{ID: plan.Split.EntryId})
	if err != nil {
		return err
	}
	if straddle == nil {
		return apperror.New(apperror.KindNotFound, "settled ledger entry disappeared")
	}

	now := time.Now()
	correction := &entity.CommissionEntry{
		Id:              uuid.New(),
		AffiliateId:     affiliateId,
		OrderId:         straddle.OrderId + "/correction",
		ReferredUserId:  straddle.ReferredUserId,
		OrderAmount:     0,
		CommissionRate:  straddle.CommissionRate,
		Amount:          -plan.Split.Remainder,
		Status:          entity.CommissionStatusPaid,
		CorrectsEntryId: &plan.Split.EntryId,
		WithdrawId:      &withdrawId,
		PaidAt:          &now,
	}
	if err := uow.CommissionRepository().Create(ctx, correction); err != nil {
		return err
	}

	remainder := &entity.CommissionEntry{
		Id:              uuid.New(),
		AffiliateId:     affiliateId,
		OrderId:         straddle.OrderId + "/remainder",
		ReferredUserId:  straddle.ReferredUserId,
		OrderAmount:     0,
		CommissionRate:  straddle.CommissionRate,
		Amount:          plan.Split.Remainder,
		Status:          entity.CommissionStatusApproved,
		CorrectsEntryId: &plan.Split.EntryId,
	}
	return uow.CommissionRepository().Create(ctx, remainder)
}
