package port

//go:generate mockgen -source=contact_port.go -destination=../mocks/mock_contact_port.go

import (
	"context"

	"portal-service/app/domain"
)

// ContactUsecase defines the contact lead intake interface
type ContactUsecase interface {
	Submit(ctx context.Context, submission *domain.ContactSubmission) (*domain.Lead, error)
}

// ContactRepositoryPort defines contact submission data access
type ContactRepositoryPort interface {
	SubmitContactForm(ctx context.Context, submission *domain.ContactSubmission) (*domain.Lead, error)
}

// EmailNotifier defines the outbound notification edge function.
// Delivery is best-effort; failures never block the submission path.
type EmailNotifier interface {
	NotifyContactSubmission(ctx context.Context, submission *domain.ContactSubmission, lead *domain.Lead) error
}
