package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// ContactRepository implements port.ContactRepositoryPort over the
// submit_contact_form procedure, which inserts the lead and returns its
// identifier in one round trip.
type ContactRepository struct {
	db     Querier
	logger *slog.Logger
}

// NewContactRepository creates a new PostgreSQL contact repository
func NewContactRepository(db Querier, logger *slog.Logger) port.ContactRepositoryPort {
	return &ContactRepository{
		db:     db,
		logger: logger.With("component", "contact_repository"),
	}
}

// SubmitContactForm stores one contact submission as a lead
func (r *ContactRepository) SubmitContactForm(ctx context.Context, submission *domain.ContactSubmission) (*domain.Lead, error) {
	query := `SELECT lead_id, created_at FROM submit_contact_form($1, $2, $3, $4, $5)`

	var pagesJSON []byte
	if len(submission.PagesVisited) > 0 {
		var err error
		pagesJSON, err = json.Marshal(submission.PagesVisited)
		if err != nil {
			return nil, fmt.Errorf("failed to encode pages visited: %w", err)
		}
	}

	lead := &domain.Lead{}
	err := r.db.QueryRow(ctx, query,
		submission.Name,
		submission.Email,
		nullableString(submission.Organization),
		submission.Message,
		pagesJSON,
	).Scan(&lead.ID, &lead.CreatedAt)
	if err != nil {
		r.logger.Error("submit_contact_form call failed", "error", err)
		return nil, domain.NewBackendError(domain.ErrorKindTransport,
			"contact submission failed", err)
	}

	r.logger.Info("contact lead stored", "lead_id", lead.ID)
	return lead, nil
}
