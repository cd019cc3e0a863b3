package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/asglabs/mission-control/internal/core/domain"
)

const (
	historyKeyPrefix = "chat:history:"
	historyTTL       = 7 * 24 * time.Hour
)

// HistoryStore keeps the bounded per-session conversation window in Redis.
// Entries expire after historyTTL; there is no compaction beyond that.
type HistoryStore struct {
	client *redis.Client
}

func NewHistoryStore(client *redis.Client) *HistoryStore {
	return &HistoryStore{client: client}
}

// Load returns the stored conversation, or nil when the session is new.
func (h *HistoryStore) Load(ctx context.Context, sessionID string) ([]domain.ConversationMessage, error) {
	raw, err := h.client.Get(ctx, historyKeyPrefix+sessionID).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("history load: %w", err)
	}

	var messages []domain.ConversationMessage
	if err := json.Unmarshal([]byte(raw), &messages); err != nil {
		return nil, fmt.Errorf("history load: %w", err)
	}
	return messages, nil
}

// Save replaces the stored conversation and refreshes its TTL.
func (h *HistoryStore) Save(ctx context.Context, sessionID string, messages []domain.ConversationMessage) error {
	raw, err := json.Marshal(messages)
	if err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	if err := h.client.Set(ctx, historyKeyPrefix+sessionID, raw, historyTTL).Err(); err != nil {
		return fmt.Errorf("history save: %w", err)
	}
	return nil
}

// Clear drops the stored conversation.
func (h *HistoryStore) Clear(ctx context.Context, sessionID string) error {
	if err := h.client.Del(ctx, historyKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("history clear: %w", err)
	}
	return nil
}
