package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// signOutTimeout bounds the background revocation call so sign-out never
// waits on the network.
const signOutTimeout = 10 * time.Second

// SessionUseCase implements the session provider. It owns the current
// session reference and the online flag; dependents subscribe to be told
// when the current user changes.
type SessionUseCase struct {
	gateway port.SessionGateway
	logger  *slog.Logger

	mu          sync.RWMutex
	current     *domain.Session
	online      bool
	subscribers []func()
}

// NewSessionUseCase creates a new SessionUseCase instance
func NewSessionUseCase(gateway port.SessionGateway, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{
		gateway: gateway,
		logger:  logger.With("component", "session_usecase"),
		online:  true,
	}
}

// SignIn authenticates with an identifier and credential
func (uc *SessionUseCase) SignIn(ctx context.Context, identifier, credential string) (*domain.Session, error) {
	if !uc.IsOnline() {
		return nil, domain.ErrOffline
	}

	session, err := uc.gateway.PasswordLogin(ctx, identifier, credential)
	if err != nil {
		uc.logger.Warn("sign in failed", "identifier", identifier, "error", err)
		return nil, err
	}

	uc.setCurrent(session)
	uc.logger.Info("sign in succeeded", "user_id", session.UserID)
	return session, nil
}

// VerifyOneTimeCode completes a one-time-code challenge. When offline it
// fails immediately without calling the remote service.
func (uc *SessionUseCase) VerifyOneTimeCode(ctx context.Context, identifier, code string) (*domain.Session, error) {
	if !uc.IsOnline() {
		return nil, domain.ErrOffline
	}

	session, err := uc.gateway.VerifyCode(ctx, identifier, code)
	if err != nil {
		uc.logger.Warn("code verification failed", "identifier", identifier, "error", err)
		return nil, err
	}

	uc.setCurrent(session)
	uc.logger.Info("code verification succeeded", "user_id", session.UserID)
	return session, nil
}

// SignOut clears the local session immediately. Remote revocation runs in
// the background; its failure only gets logged.
func (uc *SessionUseCase) SignOut(ctx context.Context, sessionToken string) {
	uc.setCurrent(nil)
	uc.logger.Info("signed out locally")

	if sessionToken == "" {
		return
	}

	go func() {
		revokeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), signOutTimeout)
		defer cancel()

		if err := uc.gateway.RevokeSession(revokeCtx, sessionToken); err != nil {
			uc.logger.Warn("remote session revocation failed", "error", err)
		}
	}()
}

// CurrentSession resolves the session for a token against the auth service
func (uc *SessionUseCase) CurrentSession(ctx context.Context, sessionToken string) (*domain.Session, error) {
	session, err := uc.gateway.WhoAmI(ctx, sessionToken)
	if err != nil {
		return nil, err
	}

	if !session.IsValid() {
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// Current returns the locally held session reference, if any
func (uc *SessionUseCase) Current() *domain.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current
}

// IsAuthenticated returns true when a valid session is held
func (uc *SessionUseCase) IsAuthenticated() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.current != nil && uc.current.IsValid()
}

// IsOnline reports the network connectivity flag
func (uc *SessionUseCase) IsOnline() bool {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.online
}

// SetOnline updates the network connectivity flag
func (uc *SessionUseCase) SetOnline(online bool) {
	uc.mu.Lock()
	uc.online = online
	uc.mu.Unlock()
}

// Subscribe registers a callback fired whenever the current user changes
func (uc *SessionUseCase) Subscribe(fn func()) {
	uc.mu.Lock()
	uc.subscribers = append(uc.subscribers, fn)
	uc.mu.Unlock()
}

func (uc *SessionUseCase) setCurrent(session *domain.Session) {
	uc.mu.Lock()
	uc.current = session
	subscribers := make([]func(), len(uc.subscribers))
	copy(subscribers, uc.subscribers)
	uc.mu.Unlock()

	for _, fn := range subscribers {
		fn()
	}
}
