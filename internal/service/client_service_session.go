package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"dario.cat/mergo"

	"github.com/traduzo/traduzo/internal/adapter"
	"github.com/traduzo/traduzo/internal/app"
	"github.com/traduzo/traduzo/internal/logger"
	"github.com/traduzo/traduzo/internal/store"
	"github.com/traduzo/traduzo/internal/utils"
	"github.com/traduzo/traduzo/models"
)

type clientSessionService struct {
	adapter adapter.ServerAdapter
	tokens  store.TokenStore
	logger  *logger.Logger

	mu      sync.RWMutex
	token   string
	user    *models.User
	phase   SessionPhase
	lastErr string
}

// NewClientSessionService creates a session service that keeps its state in
// memory and persists the bearer token through the given TokenStore.
func NewClientSessionService(tokens store.TokenStore, serverAdapter adapter.ServerAdapter, log *logger.Logger) ClientSessionService {
	return &clientSessionService{
		adapter: serverAdapter,
		tokens:  tokens,
		logger:  log.Component("session"),
		phase:   PhaseAnonymous,
	}
}

func (s *clientSessionService) Hydrate(ctx context.Context) error {
	token, err := s.tokens.Load()
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			s.logger.Debug().Msg("no persisted session found")
			return nil
		}
		return fmt.Errorf("load persisted token: %w", err)
	}

	if expiry, err := utils.TokenExpiry(token); err == nil && !expiry.IsZero() && expiry.Before(time.Now()) {
		s.logger.Warn().Time("expiry", expiry).Msg("persisted token already expired")
	}

	s.mu.Lock()
	s.token = token
	s.phase = PhaseAuthenticating
	s.mu.Unlock()

	return s.RefreshProfile(ctx)
}

func (s *clientSessionService) Login(ctx context.Context, email, password string) error {
	auth, err := s.adapter.Login(ctx, models.LoginRequest{Email: email, Password: password})
	if err != nil {
		s.setLastError(userMessage(err, app.MsgLoginFailed))
		return fmt.Errorf("login: %w", err)
	}
	if auth.Token == "" {
		s.setLastError(app.MsgLoginFailed)
		return fmt.Errorf("login: %s", app.MsgLoginFailed)
	}

	s.establish(auth)
	s.logger.Info().Int64("user_id", auth.User.ID).Msg("user logged in")
	return nil
}

func (s *clientSessionService) Register(ctx context.Context, name, email, password string) error {
	auth, err := s.adapter.Register(ctx, models.RegisterRequest{Name: name, Email: email, Password: password})
	if err != nil {
		s.setLastError(userMessage(err, app.MsgRegisterFailed))
		return fmt.Errorf("register: %w", err)
	}
	if auth.Token == "" {
		s.setLastError(app.MsgRegisterFailed)
		return fmt.Errorf("register: %s", app.MsgRegisterFailed)
	}

	s.establish(auth)
	s.logger.Info().Int64("user_id", auth.User.ID).Msg("user registered")
	return nil
}

// establish adopts a successful auth response: token and user go into memory,
// the token is persisted. A persistence failure does not fail the login, the
// session is simply not restorable after a restart.
func (s *clientSessionService) establish(auth models.AuthResponse) {
	user := auth.User

	s.mu.Lock()
	s.token = auth.Token
	s.user = &user
	s.phase = PhaseAuthenticated
	s.lastErr = ""
	s.mu.Unlock()

	if err := s.tokens.Save(auth.Token); err != nil {
		s.logger.Error().Err(err).Msg("failed to persist session token")
	}
}

func (s *clientSessionService) Logout() {
	s.mu.Lock()
	s.token = ""
	s.user = nil
	s.phase = PhaseAnonymous
	s.mu.Unlock()

	if err := s.tokens.Clear(); err != nil {
		s.logger.Error().Err(err).Msg("failed to clear persisted token")
	}
}

func (s *clientSessionService) RefreshProfile(ctx context.Context) error {
	token := s.Token()
	if token == "" {
		return nil
	}

	user, err := s.adapter.Profile(ctx, token)
	if err != nil {
		// The token no longer buys us a profile, so it is dead weight:
		// drop the whole session rather than keep a half-valid state.
		s.setLastError(userMessage(err, app.MsgProfileLoadFailed))
		s.Logout()
		s.logger.Warn().Err(err).Msg("profile fetch failed, session cleared")
		return fmt.Errorf("refresh profile: %w", err)
	}

	s.mu.Lock()
	s.user = &user
	s.phase = PhaseAuthenticated
	s.lastErr = ""
	s.mu.Unlock()

	return nil
}

func (s *clientSessionService) SaveProfile(ctx context.Context, patch models.ProfilePatch) error {
	token := s.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	user, err := s.adapter.UpdateProfile(ctx, token, patch)
	if err != nil {
		s.setLastError(userMessage(err, app.MsgProfileSaveFailed))
		return fmt.Errorf("save profile: %w", err)
	}

	s.replaceUser(user)
	return nil
}

func (s *clientSessionService) UpdateAvatar(ctx context.Context, avatar string) error {
	token := s.Token()
	if token == "" {
		return ErrNotAuthenticated
	}

	user, err := s.adapter.UpdateAvatar(ctx, token, avatar)
	if err != nil {
		s.setLastError(userMessage(err, app.MsgAvatarUpdateFailed))
		return fmt.Errorf("update avatar: %w", err)
	}

	s.replaceUser(user)
	return nil
}

func (s *clientSessionService) UpdateUserLocal(patch models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	if err := mergo.Merge(s.user, patch, mergo.WithOverride); err != nil {
		return fmt.Errorf("merge user patch: %w", err)
	}
	return nil
}

func (s *clientSessionService) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *clientSessionService) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

func (s *clientSessionService) Phase() SessionPhase {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.phase
}

func (s *clientSessionService) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

func (s *clientSessionService) replaceUser(user models.User) {
	s.mu.Lock()
	s.user = &user
	s.lastErr = ""
	s.mu.Unlock()
}

func (s *clientSessionService) setLastError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}
