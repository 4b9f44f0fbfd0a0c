package dto

// --- Dashboard ---

// StatusCount is one bucket of a status rollup (count plus amount sum).
type StatusCount struct {
	Status string  `json:"status"`
	Count  int64   `json:"count"`
	Sum    float64 `json:"sum"`
}

type AffiliateDashboardStats struct {
	TotalAffiliates   int64              `json:"total_affiliates"`
	PendingAffiliates int64              `json:"pending_affiliates"`
	ActiveAffiliates  int64              `json:"active_affiliates"`
	PendingCoupons    int64              `json:"pending_coupons"`
	Commissions       []StatusCount      `json:"commissions"`
	Withdrawals       []StatusCount      `json:"withdrawals"`
	RecentWithdrawals []WithdrawResponse `json:"recent_withdrawals"`
}
