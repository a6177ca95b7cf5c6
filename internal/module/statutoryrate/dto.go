package statutoryrate

// CreateRateRequest is the input for creating a statutory rate.
type CreateRateRequest struct {
	RateType      string  `json:"rate_type" binding:"required,min=2,max=100"`
	RateValue     float64 `json:"rate_value" binding:"omitempty,min=0"`
	EffectiveFrom string  `json:"effective_from" binding:"omitempty"`
	EffectiveTo   string  `json:"effective_to" binding:"omitempty"`
	IsActive      string  `json:"is_active" binding:"omitempty,oneof=Y N"`
	CreatedBy     int     `json:"createdby" binding:"omitempty,min=1"`
	LogInst       int     `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateRateRequest is the input for updating a statutory rate.
type UpdateRateRequest struct {
	RateType      string  `json:"rate_type" binding:"omitempty,min=2,max=100"`
	RateValue     float64 `json:"rate_value" binding:"omitempty,min=0"`
	EffectiveFrom string  `json:"effective_from" binding:"omitempty"`
	EffectiveTo   string  `json:"effective_to" binding:"omitempty"`
	IsActive      string  `json:"is_active" binding:"omitempty,oneof=Y N"`
	UpdatedBy     int     `json:"updatedby" binding:"omitempty,min=1"`
}
