package passwordreset

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// ResetRequest keeps its resolution on the row instead of deleting it, so the
// admin screen can show who handled a reset and when. The Pending -> resolved
// hop is guarded by a conditional update; once resolved a row never changes
// again. IssuedTempSecret holds the bcrypt hash of the one-time password and
// is set exactly when Status is Approved.
type ResetRequest struct {
	ID               uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID           uuid.UUID  `gorm:"column:user_id;type:uuid;not null;index"`
	ContactEmail     string     `gorm:"column:contact_email;type:varchar(255);not null"`
	Reason           string     `gorm:"column:reason;type:text"`
	Status           string     `gorm:"type:varchar(20);not null;default:'Pending'"`
	IssuedTempSecret *string    `gorm:"column:issued_temp_secret;type:varchar(255)"`
	ResolvedBy       *uuid.UUID `gorm:"column:resolved_by;type:uuid"`
	ResolvedAt       *time.Time `gorm:"column:resolved_at;type:timestamptz"`
	CreatedAt        time.Time

	Employee *EmployeeRef `gorm:"foreignKey:UserID;references:ID"`
}

func (ResetRequest) TableName() string {
	return "password_reset_requests"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Name         string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
