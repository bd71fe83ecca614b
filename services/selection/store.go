package selection

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// ErrSessionNotFound means the selection session expired or never existed.
var ErrSessionNotFound = errors.New("selection session not found or expired")

// sessionTTL keeps abandoned selections from lingering.
const sessionTTL = 30 * time.Minute

// SessionStore persists aggregator state in Redis between requests, keyed
// by session ID, the same way booking context is cached between matching
// and confirmation.
type SessionStore struct {
	Client *redis.Client
}

// NewSessionStore wraps the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{Client: client}
}

// Create stores a fresh aggregator and returns its session ID.
func (s *SessionStore) Create(ctx context.Context) (string, error) {
	sessionID := uuid.New().String()
	if err := s.Save(ctx, sessionID, NewAggregator()); err != nil {
		return "", err
	}
	return sessionID, nil
}

// Load retrieves the aggregator for a session.
func (s *SessionStore) Load(ctx context.Context, sessionID string) (*Aggregator, error) {
	data, err := s.Client.Get(ctx, sessionKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load selection session %s: %w", sessionID, err)
	}

	var agg Aggregator
	if err := json.Unmarshal([]byte(data), &agg); err != nil {
		return nil, fmt.Errorf("failed to parse selection session %s: %w", sessionID, err)
	}
	if agg.Blocks == nil {
		agg.Blocks = NewAggregator().Blocks
	}
	return &agg, nil
}

// Save writes the aggregator back, refreshing the TTL.
func (s *SessionStore) Save(ctx context.Context, sessionID string, agg *Aggregator) error {
	data, err := json.Marshal(agg)
	if err != nil {
		return fmt.Errorf("failed to marshal selection session %s: %w", sessionID, err)
	}
	if err := s.Client.Set(ctx, sessionKey(sessionID), data, sessionTTL).Err(); err != nil {
		return fmt.Errorf("failed to cache selection session %s: %w", sessionID, err)
	}
	return nil
}

// Delete discards the session.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.Client.Del(ctx, sessionKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete selection session %s: %w", sessionID, err)
	}
	return nil
}

func sessionKey(sessionID string) string {
	return "selection:" + sessionID
}
