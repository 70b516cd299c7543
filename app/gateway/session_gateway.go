package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// SessionGateway implements port.SessionGateway.
// It acts as an anti-corruption layer between the domain and the hosted
// auth service: domain sentinel errors pass through untouched, everything
// else is wrapped with operation context.
type SessionGateway struct {
	kratosClient port.KratosClient
	logger       *slog.Logger
}

// NewSessionGateway creates a new SessionGateway instance
func NewSessionGateway(kratosClient port.KratosClient, logger *slog.Logger) port.SessionGateway {
	return &SessionGateway{
		kratosClient: kratosClient,
		logger:       logger.With("component", "session_gateway"),
	}
}

// PasswordLogin authenticates an identifier/password pair
func (g *SessionGateway) PasswordLogin(ctx context.Context, identifier, credential string) (*domain.Session, error) {
	session, err := g.kratosClient.PasswordLogin(ctx, identifier, credential)
	if err != nil {
		if isAuthVerdict(err) {
			g.logger.Info("password login rejected", "error", err)
			return nil, err
		}
		g.logger.Error("password login failed", "error", err)
		return nil, fmt.Errorf("password login failed: %w", err)
	}

	g.logger.Info("password login succeeded",
		"session_id", session.ID,
		"user_id", session.UserID)
	return session, nil
}

// VerifyCode submits a one-time code for an identifier
func (g *SessionGateway) VerifyCode(ctx context.Context, identifier, code string) (*domain.Session, error) {
	session, err := g.kratosClient.VerifyCode(ctx, identifier, code)
	if err != nil {
		if isAuthVerdict(err) {
			g.logger.Info("code verification rejected", "error", err)
			return nil, err
		}
		g.logger.Error("code verification failed", "error", err)
		return nil, fmt.Errorf("code verification failed: %w", err)
	}

	g.logger.Info("code verification succeeded",
		"session_id", session.ID,
		"user_id", session.UserID)
	return session, nil
}

// WhoAmI resolves a session token to its session
func (g *SessionGateway) WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error) {
	session, err := g.kratosClient.WhoAmI(ctx, sessionToken)
	if err != nil {
		if isAuthVerdict(err) {
			return nil, err
		}
		g.logger.Error("session lookup failed", "error", err)
		return nil, fmt.Errorf("session lookup failed: %w", err)
	}

	if !session.IsValid() {
		g.logger.Info("session no longer valid", "session_id", session.ID)
		return nil, domain.ErrSessionExpired
	}

	return session, nil
}

// RevokeSession invalidates the session behind a token
func (g *SessionGateway) RevokeSession(ctx context.Context, sessionToken string) error {
	if err := g.kratosClient.RevokeSession(ctx, sessionToken); err != nil {
		g.logger.Error("session revocation failed", "error", err)
		return fmt.Errorf("session revocation failed: %w", err)
	}

	g.logger.Info("session revoked")
	return nil
}

// isAuthVerdict reports whether an error is an authentication verdict
// rather than an infrastructure failure. Verdicts are passed through so
// callers can branch on the sentinel.
func isAuthVerdict(err error) bool {
	return errors.Is(err, domain.ErrInvalidCredentials) ||
		errors.Is(err, domain.ErrInvalidCode) ||
		errors.Is(err, domain.ErrExpiredCode) ||
		errors.Is(err, domain.ErrSessionExpired) ||
		errors.Is(err, domain.ErrSessionNotFound)
}
