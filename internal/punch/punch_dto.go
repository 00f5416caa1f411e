package punch

type PunchRequest struct {
	PunchType string `json:"punch_type" binding:"required,oneof=IN OUT BREAK_IN BREAK_OUT"`
}

type PunchResponse struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	PunchType string `json:"punch_type"`
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// History DTOs mirror the ledger hierarchy with display-ready annotations.

type HistoryResponse struct {
	Years []YearGroup `json:"years"`
}

type YearGroup struct {
	Year   int          `json:"year"`
	Months []MonthGroup `json:"months"`
}

type MonthGroup struct {
	Name  string      `json:"name"`
	Weeks []WeekGroup `json:"weeks"`
}

type WeekGroup struct {
	Week int        `json:"week"`
	Days []DayGroup `json:"days"`
}

type DayGroup struct {
	Date    string       `json:"date"`
	Punches []PunchEntry `json:"punches"`
}

type PunchEntry struct {
	ID           string  `json:"id"`
	PunchType    string  `json:"punch_type"`
	Timestamp    string  `json:"timestamp"`
	EmployeeName *string `json:"employee_name,omitempty"`
	EmployeeCode *string `json:"employee_code,omitempty"`
	// Duration is the rendered pairing label, e.g. "Worked 8.00h"; only set
	// on OUT and BREAK_OUT punches that found their opener.
	Duration *string `json:"duration,omitempty"`
}
