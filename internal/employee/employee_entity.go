package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleEmployee = "Employee"
	RoleAdmin    = "Admin"
)

// Employee is the single-store staff record. EmployeeCode is the short badge
// id staff type at the login screen (e.g. "EMP012"); ID is the database key.
type Employee struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeCode string    `gorm:"type:varchar(30);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(255);not null"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(50);not null;default:'Employee'"`
	IsActive     bool      `gorm:"default:true"`

	// Profile drawer fields
	Dob     *time.Time `gorm:"type:date"`
	Address *string    `gorm:"type:text"`
	Mobile  *string    `gorm:"type:varchar(30)"`

	PasswordLastChanged *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

func (Employee) TableName() string {
	return "employees"
}
