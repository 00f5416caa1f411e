package report

type GetReportFilterRequest struct {
	// Type selects the window: "daily" covers one day, "biweekly" the 14 days
	// ending on Date, "custom" the inclusive Start..End range.
	Type       string `form:"type" binding:"required,oneof=daily biweekly custom"`
	Date       string `form:"date"`
	Start      string `form:"start"`
	End        string `form:"end"`
	EmployeeID string `form:"employee_id"`
}

type ReportResponse struct {
	Type  string      `json:"type"`
	Start string      `json:"start"`
	End   string      `json:"end"`
	Rows  []ReportRow `json:"rows"`
}

type ReportRow struct {
	UserID       string  `json:"user_id"`
	EmployeeName string  `json:"employee_name"`
	EmployeeCode string  `json:"employee_code"`
	WorkedHours  float64 `json:"worked_hours"`
	BreakHours   float64 `json:"break_hours"`
	TotalHours   float64 `json:"total_hours"`
}
