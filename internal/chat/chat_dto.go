package chat

type SendMessageRequest struct {
	Content    string  `json:"content" binding:"required"`
	ReceiverID *string `json:"receiver_id"`
	RoomSlug   *string `json:"room_slug"`
}

type MessageResponse struct {
	ID         string  `json:"id"`
	SenderID   string  `json:"sender_id"`
	SenderName *string `json:"sender_name,omitempty"`
	ReceiverID *string `json:"receiver_id,omitempty"`
	RoomSlug   *string `json:"room_slug,omitempty"`
	Content    string  `json:"content"`
	CreatedAt  string  `json:"created_at"`
}

type UnreadResponse struct {
	Unread int64 `json:"unread"`
}
