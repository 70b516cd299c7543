// Package edgefn calls the hosted notification function that emails the
// sales team about new contact leads. Delivery is best-effort; the caller
// decides whether a failure matters.
package edgefn

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"portal-service/app/config"
	"portal-service/app/domain"
	"portal-service/app/port"
)

const requestTimeout = 15 * time.Second

// Notifier implements port.EmailNotifier over an HTTP function endpoint
type Notifier struct {
	endpoint string
	token    string
	client   *http.Client
	logger   *slog.Logger
}

// NewNotifier creates a notifier from configuration. An empty endpoint
// yields a disabled notifier that silently drops notifications.
func NewNotifier(cfg *config.Config, logger *slog.Logger) port.EmailNotifier {
	return &Notifier{
		endpoint: cfg.ContactNotifyURL,
		token:    cfg.ContactNotifyToken,
		client: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With("component", "contact_notifier"),
	}
}

type notifyPayload struct {
	LeadID       string   `json:"lead_id"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Organization string   `json:"organization,omitempty"`
	Message      string   `json:"message"`
	PagesVisited []string `json:"pages_visited,omitempty"`
}

// NotifyContactSubmission posts the lead to the notification endpoint
func (n *Notifier) NotifyContactSubmission(ctx context.Context, submission *domain.ContactSubmission, lead *domain.Lead) error {
	if n.endpoint == "" {
		n.logger.Debug("contact notifications disabled, skipping")
		return nil
	}

	payload := notifyPayload{
		LeadID:       lead.ID.String(),
		Name:         submission.Name,
		Email:        submission.Email,
		Organization: submission.Organization,
		Message:      submission.Message,
		PagesVisited: submission.PagesVisited,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	if n.token != "" {
		req.Header.Set("Authorization", "Bearer "+n.token)
	}

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("notification request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notification endpoint returned status %d: %s", resp.StatusCode, detail)
	}

	n.logger.Info("contact notification sent", "lead_id", lead.ID)
	return nil
}
