package punch

import (
	"time"

	"github.com/google/uuid"
)

// Punch is one immutable clock event. Timestamp is when the punch logically
// occurred: for direct punches that is the server clock, for punches
// materialized from an approved edit request it is the claimed time. Rows are
// never updated; the admin delete endpoint is the only escape hatch.
type Punch struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID    uuid.UUID `gorm:"column:user_id;type:uuid;not null;index:idx_punches_user_ts"`
	PunchType string    `gorm:"column:punch_type;type:varchar(20);not null"`
	Timestamp time.Time `gorm:"column:timestamp;type:timestamptz;not null;index:idx_punches_user_ts"`
	Source    string    `gorm:"type:varchar(30);not null;default:'DIRECT'"`
	CreatedAt time.Time

	Employee *EmployeeRef `gorm:"foreignKey:UserID;references:ID"`
}

func (Punch) TableName() string {
	return "punches"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Name         string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
