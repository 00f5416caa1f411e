package consumer

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ganeshsahu2020/SmileCastle/internal/events"

	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

func unreadKey(userID string) string {
	return fmt.Sprintf("chat:unread:%s", userID)
}

// ConsumeChatMessages tails the chat topic and keeps per-recipient unread
// counters in Redis. Direct messages bump the receiver's counter; common-room
// messages have no single recipient and only get logged.
func ConsumeChatMessages(
	ctx context.Context,
	reader *kafkago.Reader,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.chat_unread")
	log.Info("chat unread consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("chat unread consumer stopped")
				return
			}
			log.Error("fetch chat message failed", zap.Error(err))
			continue
		}

		var event events.ChatMessageSentEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode chat_message_sent event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if event.ReceiverID != nil && *event.ReceiverID != "" {
			if err := rdb.Incr(ctx, unreadKey(*event.ReceiverID)).Err(); err != nil {
				log.Error("increment unread counter failed",
					zap.String("message_id", event.MessageID),
					zap.String("receiver_id", *event.ReceiverID),
					zap.Error(err),
				)
				continue
			}
		} else {
			log.Debug("common room message, no unread counter",
				zap.String("message_id", event.MessageID),
			)
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit chat message failed", zap.Error(err))
		}
	}
}
