package appraisal

// CreateAppraisalRequest is the input for creating an appraisal entry.
type CreateAppraisalRequest struct {
	CandidateID   uint    `json:"candidate_id" binding:"required,min=1"`
	ReviewPeriod  string  `json:"review_period" binding:"omitempty,max=100"`
	AppraisalDate string  `json:"appraisal_date" binding:"omitempty"`
	Rating        float64 `json:"rating" binding:"omitempty,min=0,max=10"`
	Remarks       string  `json:"remarks" binding:"omitempty,max=1000"`
	CreatedBy     int     `json:"createdby" binding:"omitempty,min=1"`
	LogInst       int     `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateAppraisalRequest is the input for updating an appraisal entry.
type UpdateAppraisalRequest struct {
	CandidateID   uint    `json:"candidate_id" binding:"omitempty,min=1"`
	ReviewPeriod  string  `json:"review_period" binding:"omitempty,max=100"`
	AppraisalDate string  `json:"appraisal_date" binding:"omitempty"`
	Rating        float64 `json:"rating" binding:"omitempty,min=0,max=10"`
	Remarks       string  `json:"remarks" binding:"omitempty,max=1000"`
	UpdatedBy     int     `json:"updatedby" binding:"omitempty,min=1"`
}
