package service

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/domain"
	"github.com/stai-tuned/gcf-flood-backend/internal/auth/repository"
)

func setupAuth(t *testing.T) *AuthService {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	users := repository.NewUserRepo(client, zap.NewNop())
	sessions := repository.NewSessionRepo(client, zap.NewNop())
	return NewAuthService(users, sessions, 24*time.Hour)
}

func TestSignup_Valid(t *testing.T) {
	svc := setupAuth(t)

	u, err := svc.Signup(context.Background(), "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)
	assert.Equal(t, "Alice", u.Name)
}

func TestSignup_ValidationMessages(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	t.Run("everything missing", func(t *testing.T) {
		_, err := svc.Signup(ctx, "", "", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{
			"Please enter your name.",
			"Please enter your email.",
			"Please enter your password.",
		}, verr.Messages)
	})

	t.Run("bad email format", func(t *testing.T) {
		_, err := svc.Signup(ctx, "Bob", "not-an-email", "secret1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Please enter a valid email format."}, verr.Messages)
	})

	t.Run("short password", func(t *testing.T) {
		_, err := svc.Signup(ctx, "Bob", "bob@example.com", "abc")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Password must be at least 6 characters long."}, verr.Messages)
	})
}

func TestSignup_DuplicateEmail(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	_, err = svc.Signup(ctx, "Alice Again", "alice@example.com", "secret2")
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"This email is already registered."}, verr.Messages)
}

func TestLogin_Success(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	sess, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)
	assert.NotEmpty(t, sess.Token)
	assert.Equal(t, "alice@example.com", sess.Email)
	assert.Equal(t, "ALICE", sess.Name)
	assert.True(t, sess.ExpiresAt.After(sess.CreatedAt))

	resolved, err := svc.Session(ctx, sess.Token)
	require.NoError(t, err)
	assert.Equal(t, sess.Email, resolved.Email)
}

func TestLogin_Failures(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)

	t.Run("unknown email", func(t *testing.T) {
		_, err := svc.Login(ctx, "nobody@example.com", "secret1")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"This email is not registered."}, verr.Messages)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := svc.Login(ctx, "alice@example.com", "wrong99")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, []string{"Password does not match."}, verr.Messages)
	})

	t.Run("empty fields", func(t *testing.T) {
		_, err := svc.Login(ctx, "", "")
		var verr *ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Messages, 2)
	})
}

func TestLogout(t *testing.T) {
	svc := setupAuth(t)
	ctx := context.Background()

	_, err := svc.Signup(ctx, "Alice", "alice@example.com", "secret1")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "alice@example.com", "secret1")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, sess.Token))

	_, err = svc.Session(ctx, sess.Token)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// logging out twice is fine
	assert.NoError(t, svc.Logout(ctx, sess.Token))
}
