package chat

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	chaterrors "github.com/ganeshsahu2020/SmileCastle/internal/chat/errors"
	"github.com/ganeshsahu2020/SmileCastle/internal/events"
	"github.com/ganeshsahu2020/SmileCastle/internal/messaging/kafka"
	"github.com/ganeshsahu2020/SmileCastle/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const historyLimit = 200

//go:generate mockgen -source=chat_service.go -destination=mock/chat_service_mock.go -package=mock
type Service interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error)
	ListRoom(ctx context.Context, roomSlug string) ([]MessageResponse, error)
	ListThread(ctx context.Context, userID, otherID string) ([]MessageResponse, error)
	// Unread returns the caller's unread direct-message count and resets it,
	// mirroring the badge-clearing behavior of opening the inbox.
	Unread(ctx context.Context, userID string) (UnreadResponse, error)
}

type service struct {
	db         *sql.DB
	repo       Repository
	outboxRepo kafka.OutboxRepository
	rdb        *redis.Client
	logger     *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("chat.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("chat.service")
	}
	return &service{db: db, repo: repo, outboxRepo: outboxRepo, rdb: rdb, logger: l}
}

func (s *service) Send(ctx context.Context, senderID string, req SendMessageRequest) (MessageResponse, error) {
	senderUUID, err := uuid.Parse(senderID)
	if err != nil {
		return MessageResponse{}, chaterrors.ErrInvalidUserID
	}
	content := strings.TrimSpace(req.Content)
	if content == "" {
		return MessageResponse{}, chaterrors.ErrEmptyMessage
	}

	row := &Message{
		ID:       uuid.New(),
		SenderID: senderUUID,
		Content:  content,
	}

	if req.ReceiverID != nil && *req.ReceiverID != "" {
		receiverUUID, err := uuid.Parse(*req.ReceiverID)
		if err != nil {
			return MessageResponse{}, chaterrors.ErrInvalidRecipient
		}
		if receiverUUID == senderUUID {
			return MessageResponse{}, chaterrors.ErrSelfMessage
		}
		row.ReceiverID = &receiverUUID
	} else {
		slug := RoomGeneral
		if req.RoomSlug != nil && strings.TrimSpace(*req.RoomSlug) != "" {
			slug = strings.TrimSpace(*req.RoomSlug)
		}
		row.RoomSlug = &slug
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return MessageResponse{}, err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
		s.logger.Error("persist chat message failed", zap.Error(err))
		return MessageResponse{}, err
	}

	if err := s.enqueueMessageSent(ctx, tx, row); err != nil {
		s.logger.Error("enqueue chat_message_sent failed", zap.Error(err))
		return MessageResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return MessageResponse{}, err
	}

	contextutil.GetLogger(ctx, s.logger).Info("chat message sent",
		zap.String("message_id", row.ID.String()),
		zap.Bool("direct", row.ReceiverID != nil),
	)
	return mapToResponse(*row), nil
}

func (s *service) ListRoom(ctx context.Context, roomSlug string) ([]MessageResponse, error) {
	if strings.TrimSpace(roomSlug) == "" {
		roomSlug = RoomGeneral
	}
	rows, err := s.repo.FindRoom(ctx, roomSlug, historyLimit)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) ListThread(ctx context.Context, userID, otherID string) ([]MessageResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return nil, chaterrors.ErrInvalidUserID
	}
	if _, err := uuid.Parse(otherID); err != nil {
		return nil, chaterrors.ErrInvalidRecipient
	}
	rows, err := s.repo.FindThread(ctx, userID, otherID, historyLimit)
	if err != nil {
		return nil, err
	}
	return mapAll(rows), nil
}

func (s *service) Unread(ctx context.Context, userID string) (UnreadResponse, error) {
	if _, err := uuid.Parse(userID); err != nil {
		return UnreadResponse{}, chaterrors.ErrInvalidUserID
	}

	val, err := s.rdb.GetDel(ctx, fmt.Sprintf("chat:unread:%s", userID)).Int64()
	if err == redis.Nil {
		return UnreadResponse{Unread: 0}, nil
	}
	if err != nil {
		return UnreadResponse{}, err
	}
	return UnreadResponse{Unread: val}, nil
}

func (s *service) enqueueMessageSent(ctx context.Context, tx *sql.Tx, row *Message) error {
	event := events.ChatMessageSentEvent{
		EventType: "chat_message_sent",
		MessageID: row.ID.String(),
		SenderID:  row.SenderID.String(),
		RoomSlug:  row.RoomSlug,
		SentAt:    time.Now().UTC(),
	}
	if row.ReceiverID != nil {
		v := row.ReceiverID.String()
		event.ReceiverID = &v
	}

	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outboxRepo.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "chat_message",
		AggregateID:   row.ID.String(),
		EventType:     "chat_message_sent",
		Topic:         events.ChatMessageSentTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func mapToResponse(m Message) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID.String(),
		SenderID:  m.SenderID.String(),
		RoomSlug:  m.RoomSlug,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.Format(time.RFC3339),
	}
	if m.ReceiverID != nil {
		v := m.ReceiverID.String()
		resp.ReceiverID = &v
	}
	if m.Sender != nil {
		resp.SenderName = &m.Sender.Name
	}
	return resp
}

func mapAll(rows []Message) []MessageResponse {
	out := make([]MessageResponse, len(rows))
	for i, m := range rows {
		out[i] = mapToResponse(m)
	}
	return out
}
