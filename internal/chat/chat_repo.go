package chat

import (
	"context"
	"database/sql"

	"gorm.io/gorm"
)

//go:generate mockgen -source=chat_repo.go -destination=mock/chat_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, m *Message) error
	FindRoom(ctx context.Context, roomSlug string, limit int) ([]Message, error)
	// FindThread returns the direct messages between two users in either
	// direction, oldest first.
	FindThread(ctx context.Context, userA, userB string, limit int) ([]Message, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) Create(ctx context.Context, m *Message) error {
	if r.tx != nil {
		_, err := r.tx.ExecContext(ctx,
			`INSERT INTO chat_messages (id, sender_id, receiver_id, room_slug, content, created_at) VALUES ($1, $2, $3, $4, $5, NOW())`,
			m.ID, m.SenderID, m.ReceiverID, m.RoomSlug, m.Content,
		)
		return err
	}
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *repository) FindRoom(ctx context.Context, roomSlug string, limit int) ([]Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("room_slug = ?", roomSlug).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindThread(ctx context.Context, userA, userB string, limit int) ([]Message, error) {
	var rows []Message
	err := r.db.WithContext(ctx).
		Preload("Sender").
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userA, userB, userB, userA).
		Order("created_at ASC").
		Limit(limit).
		Find(&rows).Error
	return rows, err
}
