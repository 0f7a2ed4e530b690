package conversation

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	openai "github.com/sashabaranov/go-openai"
)

// ErrUnknownConversation is wrapped by Load when no transcript exists.
var ErrUnknownConversation = fmt.Errorf("conversation: unknown conversation")

// HistoryStore persists full model transcripts (including tool plumbing)
// between turns.
type HistoryStore interface {
	Save(ctx context.Context, conversationID string, history []openai.ChatCompletionMessage) error
	Load(ctx context.Context, conversationID string) ([]openai.ChatCompletionMessage, error)
}

// RedisHistoryStore keeps transcripts in Redis with a TTL, so abandoned
// conversations expire on their own.
type RedisHistoryStore struct {
	redis *redis.Client
	ttl   time.Duration
}

// NewRedisHistoryStore creates the store. TTL <= 0 defaults to 24 hours.
func NewRedisHistoryStore(client *redis.Client, ttl time.Duration) *RedisHistoryStore {
	if client == nil {
		panic("conversation: redis client cannot be nil")
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisHistoryStore{redis: client, ttl: ttl}
}

func (s *RedisHistoryStore) Save(ctx context.Context, conversationID string, history []openai.ChatCompletionMessage) error {
	data, err := json.Marshal(history)
	if err != nil {
		return fmt.Errorf("conversation: failed to marshal history: %w", err)
	}
	if err := s.redis.Set(ctx, conversationKey(conversationID), data, s.ttl).Err(); err != nil {
		return fmt.Errorf("conversation: failed to persist history: %w", err)
	}
	return nil
}

func (s *RedisHistoryStore) Load(ctx context.Context, conversationID string) ([]openai.ChatCompletionMessage, error) {
	data, err := s.redis.Get(ctx, conversationKey(conversationID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownConversation, conversationID)
		}
		return nil, fmt.Errorf("conversation: failed to load history: %w", err)
	}
	var history []openai.ChatCompletionMessage
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("conversation: failed to decode history: %w", err)
	}
	return history, nil
}

func conversationKey(id string) string {
	return fmt.Sprintf("conversation:%s", id)
}

// MemoryHistoryStore is the in-process fallback used when Redis is not
// configured, and in tests.
type MemoryHistoryStore struct {
	mu       sync.RWMutex
	byConvID map[string][]openai.ChatCompletionMessage
}

func NewMemoryHistoryStore() *MemoryHistoryStore {
	return &MemoryHistoryStore{byConvID: map[string][]openai.ChatCompletionMessage{}}
}

func (s *MemoryHistoryStore) Save(_ context.Context, conversationID string, history []openai.ChatCompletionMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := make([]openai.ChatCompletionMessage, len(history))
	copy(cp, history)
	s.byConvID[conversationID] = cp
	return nil
}

func (s *MemoryHistoryStore) Load(_ context.Context, conversationID string) ([]openai.ChatCompletionMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	history, ok := s.byConvID[conversationID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownConversation, conversationID)
	}
	cp := make([]openai.ChatCompletionMessage, len(history))
	copy(cp, history)
	return cp, nil
}
