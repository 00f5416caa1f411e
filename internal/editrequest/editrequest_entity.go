package editrequest

import (
	"time"

	"github.com/google/uuid"
)

// EditRequest is a pending punch correction. A row in this table IS the
// pending state: approving materializes a punch and removes the row, denying
// just removes the row. Resolution therefore races on the delete, and whoever
// deletes the row wins.
type EditRequest struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index"`
	PunchType string    `gorm:"column:punch_type;type:varchar(20);not null"`
	Timestamp time.Time `gorm:"column:timestamp;type:timestamptz;not null"`
	Comment   string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:UserID;references:ID"`
}

func (EditRequest) TableName() string {
	return "edit_requests"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Name         string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
