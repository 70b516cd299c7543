package port

//go:generate mockgen -source=security_port.go -destination=../mocks/mock_security_port.go

import (
	"context"

	"portal-service/app/domain"
)

// SecurityUsecase defines the account lockout monitor interface.
// CheckAccountSecurity returns nil on transport failure; callers must treat
// nil as "status unknown", not "status clear".
type SecurityUsecase interface {
	CheckAccountSecurity(ctx context.Context, email string) *domain.LockoutStatus
	LogSecurityEvent(ctx context.Context, event domain.SecurityEvent)

	// Administrative surface
	GetUserLockoutStatus(ctx context.Context, email string) (*domain.LockoutStatus, error)
	UnlockUserAccount(ctx context.Context, email string) (*domain.UnlockResult, error)
}

// SecurityRepositoryPort defines the lockout and auth-event procedure surface
type SecurityRepositoryPort interface {
	CheckFailedLoginAttempts(ctx context.Context, email string) (*domain.LockoutStatus, error)
	GetUserLockoutStatus(ctx context.Context, email string) (*domain.LockoutStatus, error)
	UnlockUserAccount(ctx context.Context, email string) (*domain.UnlockResult, error)
	LogSecurityEvent(ctx context.Context, event domain.SecurityEvent) error
}
