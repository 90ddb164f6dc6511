package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/domain"
)

const (
	sessionKeyPrefix   = "gcf:session:"    // JSON blob per session: gcf:session:{token}
	sessionTokenSetKey = "gcf:session:ids" // Index of live session tokens, pruned by the janitor
)

// SessionRepo persists login sessions. Keys do not carry a Redis TTL:
// expiry is checked on read and the janitor prunes both the blobs and the
// token index, so the index never accumulates dangling entries.
type SessionRepo struct {
	client *redis.Client
	log    *zap.Logger
}

func NewSessionRepo(client *redis.Client, log *zap.Logger) *SessionRepo {
	return &SessionRepo{client: client, log: log}
}

func (r *SessionRepo) Put(ctx context.Context, s domain.Session) error {
	data, err := json.Marshal(&s)
	if err != nil {
		return fmt.Errorf("marshal session: %w", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, sessionKeyPrefix+s.Token, data, 0)
	pipe.SAdd(ctx, sessionTokenSetKey, s.Token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Get returns the session for the token. Expired sessions are treated as
// absent and removed eagerly.
func (r *SessionRepo) Get(ctx context.Context, token string) (*domain.Session, error) {
	data, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
	if err == redis.Nil {
		return nil, domain.ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	var s domain.Session
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.log.Error("corrupt session record", zap.Error(err))
		return nil, domain.ErrSessionNotFound
	}
	if s.Expired(time.Now().UTC()) {
		_ = r.Delete(ctx, token)
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *SessionRepo) Delete(ctx context.Context, token string) error {
	pipe := r.client.Pipeline()
	pipe.Del(ctx, sessionKeyPrefix+token)
	pipe.SRem(ctx, sessionTokenSetKey, token)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PruneExpired removes every session past its expiry. Run periodically by
// the janitor.
func (r *SessionRepo) PruneExpired(ctx context.Context, now time.Time) (int, error) {
	tokens, err := r.client.SMembers(ctx, sessionTokenSetKey).Result()
	if err != nil {
		return 0, fmt.Errorf("list session tokens: %w", err)
	}

	pruned := 0
	for _, token := range tokens {
		data, err := r.client.Get(ctx, sessionKeyPrefix+token).Result()
		if err == redis.Nil {
			// blob gone, drop the index entry
			_ = r.client.SRem(ctx, sessionTokenSetKey, token).Err()
			continue
		}
		if err != nil {
			return pruned, fmt.Errorf("get session %s: %w", token, err)
		}

		var s domain.Session
		if err := json.Unmarshal([]byte(data), &s); err != nil {
			r.log.Error("corrupt session record, pruning", zap.Error(err))
			if err := r.Delete(ctx, token); err != nil {
				return pruned, err
			}
			pruned++
			continue
		}
		if s.Expired(now) {
			if err := r.Delete(ctx, token); err != nil {
				return pruned, err
			}
			pruned++
		}
	}
	return pruned, nil
}
