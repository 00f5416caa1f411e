package events

import "time"

const PunchRecordedTopic = "timeclock.punch.recorded.v1"

const (
	PunchSourceDirect      = "DIRECT"
	PunchSourceEditRequest = "EDIT_REQUEST"
)

type PunchRecordedEvent struct {
	EventType string    `json:"event_type"`
	PunchID   string    `json:"punch_id"`
	UserID    string    `json:"user_id"`
	PunchType string    `json:"punch_type"`
	Timestamp time.Time `json:"timestamp"`
	Source    string    `json:"source"`
}
