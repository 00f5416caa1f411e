package events

import "time"

const ChatMessageSentTopic = "timeclock.chat.message.v1"

type ChatMessageSentEvent struct {
	EventType  string    `json:"event_type"`
	MessageID  string    `json:"message_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID *string   `json:"receiver_id,omitempty"`
	RoomSlug   *string   `json:"room_slug,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}
