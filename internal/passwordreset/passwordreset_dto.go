package passwordreset

type SubmitResetRequest struct {
	EmployeeCode string `json:"employee_code" binding:"required"`
	ContactEmail string `json:"contact_email" binding:"required,email"`
	Reason       string `json:"reason"`
}

type ApproveRequest struct {
	TempPassword string `json:"temp_password" binding:"required,min=6"`
}

type ResetRequestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	ContactEmail string  `json:"contact_email"`
	Reason       string  `json:"reason,omitempty"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at"`
	ResolvedAt   *string `json:"resolved_at,omitempty"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

// ApproveResponse echoes the temporary password back to the approving admin;
// only its hash is persisted, so this is the last time it is visible.
type ApproveResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	TempPassword string `json:"temp_password"`
}
