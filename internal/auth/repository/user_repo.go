package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/domain"
)

const (
	userKeyPrefix = "gcf:user:" // JSON blob per account: gcf:user:{email}
)

// UserRepo persists signed-up accounts, keyed by email.
type UserRepo struct {
	client *redis.Client
	log    *zap.Logger
}

func NewUserRepo(client *redis.Client, log *zap.Logger) *UserRepo {
	return &UserRepo{client: client, log: log}
}

// Save stores a new account. An existing email is a duplicate-signup
// error; accounts are never overwritten.
func (r *UserRepo) Save(ctx context.Context, u domain.User) error {
	data, err := json.Marshal(&u)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	ok, err := r.client.SetNX(ctx, userKeyPrefix+u.Email, data, 0).Result()
	if err != nil {
		return fmt.Errorf("store user: %w", err)
	}
	if !ok {
		return domain.ErrDuplicateEmail
	}
	return nil
}

// FindByEmail returns the account for the given email. A corrupt stored
// blob is logged and treated as absent.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	data, err := r.client.Get(ctx, userKeyPrefix+email).Result()
	if err == redis.Nil {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	var u domain.User
	if err := json.Unmarshal([]byte(data), &u); err != nil {
		r.log.Error("corrupt user record", zap.String("email", email), zap.Error(err))
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}
