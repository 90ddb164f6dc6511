package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/domain"
	"github.com/stai-tuned/gcf-flood-backend/internal/auth/repository"
)

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLen = 6

// AuthService handles signup, login, and logout over the user and
// session stores.
type AuthService struct {
	users      *repository.UserRepo
	sessions   *repository.SessionRepo
	sessionTTL time.Duration
}

func NewAuthService(users *repository.UserRepo, sessions *repository.SessionRepo, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

// ValidationError lists every user-facing problem with a request.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, "; ")
}

// Signup validates and stores a new account.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, error) {
	var msgs []string

	if strings.TrimSpace(name) == "" {
		msgs = append(msgs, "Please enter your name.")
	}
	switch {
	case strings.TrimSpace(email) == "":
		msgs = append(msgs, "Please enter your email.")
	case !emailRe.MatchString(email):
		msgs = append(msgs, "Please enter a valid email format.")
	}
	switch {
	case password == "":
		msgs = append(msgs, "Please enter your password.")
	case len(password) < minPasswordLen:
		msgs = append(msgs, fmt.Sprintf("Password must be at least %d characters long.", minPasswordLen))
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	u := domain.User{
		Email:     email,
		Password:  password, // plaintext placeholder, see domain.User
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Save(ctx, u); err != nil {
		if err == domain.ErrDuplicateEmail {
			return nil, &ValidationError{Messages: []string{"This email is already registered."}}
		}
		return nil, err
	}
	return &u, nil
}

// Login checks the credentials and opens a session. The session name is
// the account name upper-cased, matching how the dashboard displays it.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	var msgs []string
	if strings.TrimSpace(email) == "" {
		msgs = append(msgs, "Please enter your email.")
	}
	if password == "" {
		msgs = append(msgs, "Please enter your password.")
	}
	if len(msgs) > 0 {
		return nil, &ValidationError{Messages: msgs}
	}

	u, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if err == domain.ErrUserNotFound {
			return nil, &ValidationError{Messages: []string{"This email is not registered."}}
		}
		return nil, err
	}
	if u.Password != password {
		return nil, &ValidationError{Messages: []string{"Password does not match."}}
	}

	now := time.Now().UTC()
	sess := domain.Session{
		Token:     uuid.NewString(),
		Email:     u.Email,
		Name:      strings.ToUpper(u.Name),
		CreatedAt: now,
		ExpiresAt: now.Add(s.sessionTTL),
	}
	if err := s.sessions.Put(ctx, sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Session resolves a bearer token to its live session.
func (s *AuthService) Session(ctx context.Context, token string) (*domain.Session, error) {
	return s.sessions.Get(ctx, token)
}

// Logout drops the session. Unknown tokens are not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.sessions.Delete(ctx, token)
}
