package dashboard

import (
	"context"

	"affiliate-hub-be/internal/dto"
	"affiliate-hub-be/internal/entity"
	"affiliate-hub-be/internal/pkg/logger"
	"affiliate-hub-be/internal/repository/specification"
	"affiliate-hub-be/internal/repository/unitofwork"
)

// Aggregator assembles the admin dashboard numbers. Everything here is a
// read-only projection; nothing is cached because the queries are cheap
// group-bys.
type Aggregator struct {
	logger logger.ILogger
}

// NewAggregator creates a new dashboard aggregator
func NewAggregator(logger logger.ILogger) *Aggregator {
	return &Aggregator{
		logger: logger,
	}
}

// GetStats retrieves dashboard statistics
func (a *Aggregator) GetStats(ctx context.Context, uow unitofwork.UnitOfWork) (*dto.AffiliateDashboardStats, error) {
	totalAffiliates, err := uow.AffiliateRepository().Count(ctx)
	if err != nil {
		return nil, err
	}

	pendingAffiliates, err := uow.AffiliateRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.AffiliateStatusPending)})
	if err != nil {
		return nil, err
	}

	activeAffiliates, err := uow.AffiliateRepository().Count(ctx,
		specification.ByStatus{Status: string(entity.AffiliateStatusActive)})
	if err != nil {
		return nil, err
	}

	pendingCoupons, err := uow.CouponRepository().Count(ctx,
		specification.Filter("approval_status", string(entity.CouponApprovalPending)))
	if err != nil {
		return nil, err
	}

	commissionTotals, err := uow.CommissionRepository().StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	withdrawTotals, err := uow.WithdrawRepository().StatusBreakdown(ctx)
	if err != nil {
		return nil, err
	}

	// Last 5 withdraw requests for the activity panel.
	recent, err := uow.WithdrawRepository().FindAll(ctx,
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: 5, Offset: 0},
	)
	var recentDtos []dto.WithdrawResponse
	if err == nil {
		for _, w := range recent {
			recentDtos = append(recentDtos, dto.WithdrawResponse{
				Id:          w.Id,
				AffiliateId: w.AffiliateId,
				Amount:      w.Amount,
				Status:      string(w.Status),
				CreatedAt:   w.CreatedAt,
			})
		}
	}

	return &dto.AffiliateDashboardStats{
		TotalAffiliates:   totalAffiliates,
		PendingAffiliates: pendingAffiliates,
		ActiveAffiliates:  activeAffiliates,
		PendingCoupons:    pendingCoupons,
		Commissions:       toStatusCounts(commissionTotals),
		Withdrawals:       toStatusCounts(withdrawTotals),
		RecentWithdrawals: recentDtos,
	}, nil
}

func toStatusCounts(totals []entity.StatusTotal) []dto.StatusCount {
	counts := make([]dto.StatusCount, len(totals))
	for i, t := range totals {
		counts[i] = dto.StatusCount{
			Status: t.Status,
			Count:  t.Count,
			Sum:    t.Sum,
		}
	}
	return counts
}

// GetLogs surfaces the structured application log on the dashboard.
func (a *Aggregator) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	if limit < 1 {
		limit = 50
	}
	return a.logger.GetLogs(level, limit, offset)
}
