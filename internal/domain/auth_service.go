package domain

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/brandonbryant12/content-studio-sub011/internal/apperr"
	"github.com/brandonbryant12/content-studio-sub011/internal/models"
	"github.com/brandonbryant12/content-studio-sub011/internal/ports"
)

type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	sessionTTL time.Duration
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration) *AuthService {
	return &AuthService{users: users, sessions: sessions, sessionTTL: sessionTTL}
}

func (s *AuthService) Register(ctx context.Context, email, name, password string) (*models.User, *models.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, apperr.Invalid("a valid email is required")
	}
	if len(password) < 8 {
		return nil, nil, apperr.Invalid("password must be at least 8 characters")
	}

	existing, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("register: %w", err)
	}
	if existing != nil {
		return nil, nil, apperr.Conflict("email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, nil, fmt.Errorf("register hash: %w", err)
	}

	user, err := s.users.InsertUser(ctx, &models.User{
		Email:        email,
		Name:         strings.TrimSpace(name),
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("register insert: %w", err)
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, *models.Session, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, nil, fmt.Errorf("login: %w", err)
	}
	if user == nil {
		return nil, nil, apperr.Unauthorized("invalid email or password")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, nil, apperr.Unauthorized("invalid email or password")
	}

	session, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.DeleteSession(ctx, token)
}

// Resolve maps a session token to its user. Unknown and expired tokens both
// come back unauthorized.
func (s *AuthService) Resolve(ctx context.Context, token string) (*models.User, error) {
	if token == "" {
		return nil, apperr.Unauthorized("missing session")
	}

	session, err := s.sessions.GetSession(ctx, token)
	if err != nil {
		return nil, fmt.Errorf("resolve session: %w", err)
	}
	if session == nil || session.ExpiresAt.Before(time.Now()) {
		return nil, apperr.Unauthorized("session expired")
	}

	user, err := s.users.GetUserByID(ctx, session.UserID)
	if err != nil {
		return nil, fmt.Errorf("resolve user: %w", err)
	}
	if user == nil {
		return nil, apperr.Unauthorized("session expired")
	}
	return user, nil
}

func (s *AuthService) startSession(ctx context.Context, userID int) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.sessionTTL),
	}
	if err := s.sessions.InsertSession(ctx, session); err != nil {
		return nil, fmt.Errorf("start session: %w", err)
	}
	return session, nil
}
