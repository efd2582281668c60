package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/james-ralph8555/tarot-daily/internal/config"
	"github.com/james-ralph8555/tarot-daily/internal/ids"
	"github.com/james-ralph8555/tarot-daily/internal/models"
	"github.com/james-ralph8555/tarot-daily/internal/repository"
	"github.com/james-ralph8555/tarot-daily/internal/security"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrNoSession          = errors.New("no valid session")
)

// UserStore is the slice of user persistence the auth service needs.
type UserStore interface {
	Create(ctx context.Context, user models.User) error
	FindByEmail(ctx context.Context, email string) (models.User, error)
	GetByID(ctx context.Context, id string) (models.User, error)
}

// SessionStore is the storage boundary for sessions: one joined fetch, one
// persist, one delete, one token rotation.
type SessionStore interface {
	Create(ctx context.Context, session models.Session) error
	GetWithUser(ctx context.Context, id string) (models.Session, models.User, error)
	Delete(ctx context.Context, id string) error
	UpdateCsrfToken(ctx context.Context, id string, token string) error
}

// AuthService owns the session and CSRF lifecycle: issuance, validation,
// rotation and invalidation.
type AuthService struct {
	users    UserStore
	sessions SessionStore
	cfg      *config.AppConfig
	log      zerolog.Logger
	now      func() time.Time
}

func NewAuthService(users UserStore, sessions SessionStore, cfg *config.AppConfig, log zerolog.Logger) *AuthService {
	return &AuthService{
		users:    users,
		sessions: sessions,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
	}
}

// SessionBundle is everything a handler needs to establish an authenticated
// browser: the persisted session plus serialized cookie directives.
type SessionBundle struct {
	Session       models.Session
	SessionCookie *http.Cookie
	CsrfToken     string
	CsrfCookie    *http.Cookie
}

func (s *AuthService) Register(ctx context.Context, email, password string) (models.User, SessionBundle, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return models.User{}, SessionBundle{}, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return models.User{}, SessionBundle{}, err
	}

	passwordHash, err := security.HashPassword(password)
	if err != nil {
		return models.User{}, SessionBundle{}, err
	}

	user := models.User{
		ID:           ids.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return models.User{}, SessionBundle{}, err
	}

	bundle, err := s.CreateSession(ctx, user.ID)
	if err != nil {
		return models.User{}, SessionBundle{}, err
	}
	return user, bundle, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, SessionBundle, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return models.User{}, SessionBundle{}, ErrInvalidCredentials
		}
		return models.User{}, SessionBundle{}, err
	}

	ok, err := security.VerifyPassword(password, user.PasswordHash)
	if err != nil || !ok {
		return models.User{}, SessionBundle{}, ErrInvalidCredentials
	}

	bundle, err := s.CreateSession(ctx, user.ID)
	if err != nil {
		return models.User{}, SessionBundle{}, err
	}
	return user, bundle, nil
}

// CreateSession issues a session with a fixed expiry and its paired CSRF
// token. There is no refresh transition; expiry is decided here, once.
func (s *AuthService) CreateSession(ctx context.Context, userID string) (SessionBundle, error) {
	sessionID, err := security.GenerateSessionID()
	if err != nil {
		return SessionBundle{}, err
	}
	csrfToken, err := security.GenerateCsrfToken()
	if err != nil {
		return SessionBundle{}, err
	}

	now := s.now().UTC()
	session := models.Session{
		ID:        sessionID,
		UserID:    userID,
		CsrfToken: csrfToken,
		ExpiresAt: now.Add(s.cfg.Security.SessionTTL),
		CreatedAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return SessionBundle{}, fmt.Errorf("persist session: %w", err)
	}

	return SessionBundle{
		Session:       session,
		SessionCookie: security.SessionCookie(sessionID, s.cfg.Security.SessionTTL, s.cfg.Production()),
		CsrfToken:     csrfToken,
		CsrfCookie:    security.CsrfCookie(csrfToken, s.cfg.Security.CsrfTTL, s.cfg.Production()),
	}, nil
}

// Validate resolves a session id to its session and owning user. Sessions at
// or past their expiry are deleted on sight (lazy expiry); a second attempt
// at the same instant reports absent the same way.
func (s *AuthService) Validate(ctx context.Context, sessionID string) (models.Session, models.User, error) {
	if sessionID == "" {
		return models.Session{}, models.User{}, ErrNoSession
	}

	session, user, err := s.sessions.GetWithUser(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return models.Session{}, models.User{}, ErrNoSession
		}
		return models.Session{}, models.User{}, err
	}

	if !session.ExpiresAt.After(s.now()) {
		if err := s.sessions.Delete(ctx, session.ID); err != nil {
			s.log.Warn().Err(err).Str("session_id", session.ID).Msg("expired session delete failed")
		}
		return models.Session{}, models.User{}, ErrNoSession
	}

	return session, user, nil
}

// Invalidate deletes the session row unconditionally. Deleting an
// already-absent session is not an error.
func (s *AuthService) Invalidate(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

// RotateCsrf regenerates only the CSRF token; the session identifier and its
// expiry are untouched.
func (s *AuthService) RotateCsrf(ctx context.Context, sessionID string) (string, *http.Cookie, error) {
	token, err := security.GenerateCsrfToken()
	if err != nil {
		return "", nil, err
	}
	if err := s.sessions.UpdateCsrfToken(ctx, sessionID, token); err != nil {
		return "", nil, err
	}
	return token, security.CsrfCookie(token, s.cfg.Security.CsrfTTL, s.cfg.Production()), nil
}
