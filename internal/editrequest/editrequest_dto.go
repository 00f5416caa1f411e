package editrequest

type SubmitRequest struct {
	PunchType string `json:"punch_type" binding:"required,oneof=IN OUT BREAK_IN BREAK_OUT"`
	Timestamp string `json:"timestamp" binding:"required"`
	Comment   string `json:"comment" binding:"required"`
}

type EditRequestResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	PunchType    string  `json:"punch_type"`
	Timestamp    string  `json:"timestamp"`
	Comment      string  `json:"comment"`
	CreatedAt    string  `json:"created_at"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
}

type ResolveResponse struct {
	ID      string  `json:"id"`
	Outcome string  `json:"outcome"`
	PunchID *string `json:"punch_id,omitempty"`
}
