package port

//go:generate mockgen -source=session_port.go -destination=../mocks/mock_session_port.go

import (
	"context"

	"portal-service/app/domain"
)

// SessionUsecase defines the session provider business logic interface
type SessionUsecase interface {
	// Authentication
	SignIn(ctx context.Context, identifier, credential string) (*domain.Session, error)
	SignOut(ctx context.Context, sessionToken string)
	VerifyOneTimeCode(ctx context.Context, identifier, code string) (*domain.Session, error)

	// Session access
	CurrentSession(ctx context.Context, sessionToken string) (*domain.Session, error)

	// Connectivity
	IsOnline() bool
	SetOnline(online bool)

	// Subscribe registers a callback fired whenever the current user
	// changes (sign-in, sign-out). Used by dependents to invalidate
	// derived state.
	Subscribe(fn func())
}

// SessionGateway defines the hosted auth service interface
type SessionGateway interface {
	PasswordLogin(ctx context.Context, identifier, credential string) (*domain.Session, error)
	VerifyCode(ctx context.Context, identifier, code string) (*domain.Session, error)
	WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error)
	RevokeSession(ctx context.Context, sessionToken string) error
}

// KratosClient defines the raw hosted auth client consumed by the session
// gateway. The gateway adds logging and error classification on top.
type KratosClient interface {
	PasswordLogin(ctx context.Context, identifier, credential string) (*domain.Session, error)
	VerifyCode(ctx context.Context, identifier, code string) (*domain.Session, error)
	WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error)
	RevokeSession(ctx context.Context, sessionToken string) error
}
