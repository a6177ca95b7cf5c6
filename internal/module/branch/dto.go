package branch

// CreateBranchRequest is the input for creating a branch.
type CreateBranchRequest struct {
	BranchName string `json:"branch_name" binding:"required,min=2,max=255"`
	Location   string `json:"location" binding:"omitempty,max=255"`
	Address    string `json:"address" binding:"omitempty,max=500"`
	IsActive   string `json:"is_active" binding:"omitempty,oneof=Y N"`
	CreatedBy  int    `json:"createdby" binding:"omitempty,min=1"`
	LogInst    int    `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateBranchRequest is the input for updating a branch. All fields are
// optional; omitted fields keep their stored value.
type UpdateBranchRequest struct {
	BranchName string `json:"branch_name" binding:"omitempty,min=2,max=255"`
	Location   string `json:"location" binding:"omitempty,max=255"`
	Address    string `json:"address" binding:"omitempty,max=500"`
	IsActive   string `json:"is_active" binding:"omitempty,oneof=Y N"`
	UpdatedBy  int    `json:"updatedby" binding:"omitempty,min=1"`
}
