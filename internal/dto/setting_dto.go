package dto

type ProgramSettingsResponse struct {
	CommissionRate  float64 `json:"commission_rate"`
	MinimumWithdraw float64 `json:"minimum_withdraw"`
}

type UpdateProgramSettingsRequest struct {
	CommissionRate  *float64 `json:"commission_rate" validate:"omitempty,gt=0,lte=100"`
	MinimumWithdraw *float64 `json:"minimum_withdraw" validate:"omitempty,gte=0"`
}
