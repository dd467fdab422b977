package conversation

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"busimap/models"

	"github.com/go-redis/redis/v8"
)

// ErrSnapshotMissing reports that a session snapshot does not exist in the
// store. Distinct from transport errors so callers can treat it as a clean
// miss.
var ErrSnapshotMissing = errors.New("session snapshot missing")

// SessionStore persists session snapshots across processes. The manager
// treats it as best-effort; losing a snapshot never fails a turn.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session) error
	Load(ctx context.Context, sessionID string) (*models.Session, error)
	Clear(ctx context.Context, sessionID string) error
}

const sessionKeyPrefix = "conv:session:"

// RedisSessionStore keeps JSON session snapshots in Redis with a TTL. Expiry
// is the deployment's session-lifetime policy, not the engine's.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, session *models.Session) error {
	b, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, sessionKeyPrefix+session.ID, b, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, ErrSnapshotMissing
	}
	if err != nil {
		return nil, err
	}
	var session models.Session
	if err := json.Unmarshal([]byte(data), &session); err != nil {
		return nil, err
	}
	return &session, nil
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, sessionKeyPrefix+sessionID).Err()
}
