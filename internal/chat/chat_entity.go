package chat

import (
	"time"

	"github.com/google/uuid"
)

const RoomGeneral = "general"

// Message is either a room message (RoomSlug set, ReceiverID nil) or a direct
// message (ReceiverID set, RoomSlug nil). Exactly one of the two is non-nil.
type Message struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderID   uuid.UUID  `gorm:"column:sender_id;type:uuid;not null;index"`
	ReceiverID *uuid.UUID `gorm:"column:receiver_id;type:uuid;index"`
	RoomSlug   *string    `gorm:"column:room_slug;type:varchar(50);index"`
	Content    string     `gorm:"type:text;not null"`
	CreatedAt  time.Time

	Sender *EmployeeRef `gorm:"foreignKey:SenderID;references:ID"`
}

func (Message) TableName() string {
	return "chat_messages"
}

type EmployeeRef struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeCode string    `gorm:"column:employee_code"`
	Name         string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
