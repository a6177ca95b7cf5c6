package candidate

// CreateCandidateRequest is the input for creating a candidate.
type CreateCandidateRequest struct {
	FullName  string `json:"full_name" binding:"required,min=2,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	IsActive  string `json:"is_active" binding:"omitempty,oneof=Y N"`
	CreatedBy int    `json:"createdby" binding:"omitempty,min=1"`
	LogInst   int    `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateCandidateRequest is the input for updating a candidate.
type UpdateCandidateRequest struct {
	FullName  string `json:"full_name" binding:"omitempty,min=2,max=255"`
	Email     string `json:"email" binding:"omitempty,email"`
	Phone     string `json:"phone" binding:"omitempty,max=50"`
	IsActive  string `json:"is_active" binding:"omitempty,oneof=Y N"`
	UpdatedBy int    `json:"updatedby" binding:"omitempty,min=1"`
}
