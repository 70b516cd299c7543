package usecase

import (
	"context"
	"log/slog"
	"time"

	"portal-service/app/domain"
	"portal-service/app/port"
	"portal-service/app/utils/validator"
)

// notifyTimeout bounds the best-effort email notification
const notifyTimeout = 15 * time.Second

// ContactUseCase implements contact lead intake. The database write decides
// success; the email notification is best-effort and its failure never
// reaches the submitter.
type ContactUseCase struct {
	repo      port.ContactRepositoryPort
	notifier  port.EmailNotifier
	validator *validator.Validator
	logger    *slog.Logger
}

// NewContactUseCase creates a new ContactUseCase instance
func NewContactUseCase(repo port.ContactRepositoryPort, notifier port.EmailNotifier, v *validator.Validator, logger *slog.Logger) *ContactUseCase {
	return &ContactUseCase{
		repo:      repo,
		notifier:  notifier,
		validator: v,
		logger:    logger.With("component", "contact_usecase"),
	}
}

// Submit validates and stores a contact submission, then kicks off the
// notification in the background.
func (uc *ContactUseCase) Submit(ctx context.Context, submission *domain.ContactSubmission) (*domain.Lead, error) {
	if err := uc.validator.Validate(submission); err != nil {
		return nil, err
	}

	lead, err := uc.repo.SubmitContactForm(ctx, submission)
	if err != nil {
		uc.logger.Error("contact submission failed", "email", submission.Email, "error", err)
		return nil, err
	}

	uc.logger.Info("contact submission stored", "lead_id", lead.ID)

	if uc.notifier != nil {
		go func() {
			notifyCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), notifyTimeout)
			defer cancel()

			if err := uc.notifier.NotifyContactSubmission(notifyCtx, submission, lead); err != nil {
				uc.logger.Warn("contact notification failed", "lead_id", lead.ID, "error", err)
			}
		}()
	}

	return lead, nil
}
