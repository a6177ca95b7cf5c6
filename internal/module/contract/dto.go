package contract

// CreateContractRequest is the input for creating an employment contract.
// Dates arrive as text ("2006-01-02" or RFC 3339) and are parsed leniently;
// omitted dates default to the current time.
type CreateContractRequest struct {
	CandidateID       uint   `json:"candidate_id" binding:"required,min=1"`
	ContractStartDate string `json:"contract_start_date" binding:"omitempty"`
	ContractEndDate   string `json:"contract_end_date" binding:"omitempty"`
	ContractType      string `json:"contract_type" binding:"omitempty,max=100"`
	DocumentPath      string `json:"document_path" binding:"omitempty,max=500"`
	Description       string `json:"description" binding:"omitempty,max=1000"`
	CreatedBy         int    `json:"createdby" binding:"omitempty,min=1"`
	LogInst           int    `json:"log_inst" binding:"omitempty,min=1"`
}

// UpdateContractRequest is the input for updating an employment contract.
type UpdateContractRequest struct {
	CandidateID       uint   `json:"candidate_id" binding:"omitempty,min=1"`
	ContractStartDate string `json:"contract_start_date" binding:"omitempty"`
	ContractEndDate   string `json:"contract_end_date" binding:"omitempty"`
	ContractType      string `json:"contract_type" binding:"omitempty,max=100"`
	DocumentPath      string `json:"document_path" binding:"omitempty,max=500"`
	Description       string `json:"description" binding:"omitempty,max=1000"`
	UpdatedBy         int    `json:"updatedby" binding:"omitempty,min=1"`
}
