package moduleref

// CreateModuleRequest is the input for creating a module reference row.
type CreateModuleRequest struct {
	ModuleName  string `json:"module_name" binding:"required,min=2,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	IsActive    string `json:"is_active" binding:"omitempty,oneof=Y N"`
	CreatedBy   int    `json:"createdby" binding:"omitempty,min=1"`
	LogInst     int    `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateModuleRequest is the input for updating a module reference row.
type UpdateModuleRequest struct {
	ModuleName  string `json:"module_name" binding:"omitempty,min=2,max=255"`
	Description string `json:"description" binding:"omitempty,max=500"`
	IsActive    string `json:"is_active" binding:"omitempty,oneof=Y N"`
	UpdatedBy   int    `json:"updatedby" binding:"omitempty,min=1"`
}
