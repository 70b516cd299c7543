package kratos

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	kratosclient "github.com/ory/kratos-client-go"

	"portal-service/app/domain"
	"portal-service/app/port"
)

// SessionAdapter adapts the Kratos client to port.KratosClient. It drives
// native (API-flavored) self-service flows: one flow is created and
// submitted per call, and the resulting session token identifies the
// principal on subsequent requests.
type SessionAdapter struct {
	client *Client
	logger *slog.Logger
}

// NewSessionAdapter creates a new adapter
func NewSessionAdapter(client *Client, logger *slog.Logger) port.KratosClient {
	return &SessionAdapter{
		client: client,
		logger: logger.With("component", "kratos_adapter"),
	}
}

// PasswordLogin authenticates an identifier/password pair
func (a *SessionAdapter) PasswordLogin(ctx context.Context, identifier, credential string) (*domain.Session, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		a.logger.Error("kratos login flow creation failed",
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, classifyFlowError(err, httpResp, opPasswordLogin)
	}

	body := kratosclient.UpdateLoginFlowWithPasswordMethod{
		Method:     "password",
		Identifier: identifier,
		Password:   credential,
	}

	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithPasswordMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Warn("kratos password login rejected",
			"flow_id", flow.Id,
			"http_status", statusOf(httpResp))
		return nil, classifyFlowError(err, httpResp, opPasswordLogin)
	}

	session, err := a.toDomainSession(&resp.Session, resp.GetSessionToken())
	if err != nil {
		return nil, err
	}

	a.logger.Info("password login succeeded", "session_id", session.ID)
	return session, nil
}

// VerifyCode submits a one-time code for an identifier
func (a *SessionAdapter) VerifyCode(ctx context.Context, identifier, code string) (*domain.Session, error) {
	flow, httpResp, err := a.client.PublicAPI().FrontendAPI.CreateNativeLoginFlow(ctx).Execute()
	if err != nil {
		a.logger.Error("kratos code flow creation failed",
			"error", err,
			"http_status", statusOf(httpResp))
		return nil, classifyFlowError(err, httpResp, opVerifyCode)
	}

	body := kratosclient.UpdateLoginFlowWithCodeMethod{
		Method:     "code",
		Identifier: &identifier,
		Code:       &code,
	}

	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		UpdateLoginFlow(ctx).
		Flow(flow.Id).
		UpdateLoginFlowBody(kratosclient.UpdateLoginFlowWithCodeMethodAsUpdateLoginFlowBody(&body)).
		Execute()
	if err != nil {
		a.logger.Warn("kratos code verification rejected",
			"flow_id", flow.Id,
			"http_status", statusOf(httpResp))
		return nil, classifyFlowError(err, httpResp, opVerifyCode)
	}

	session, err := a.toDomainSession(&resp.Session, resp.GetSessionToken())
	if err != nil {
		return nil, err
	}

	a.logger.Info("code verification succeeded", "session_id", session.ID)
	return session, nil
}

// WhoAmI resolves a session token to its session
func (a *SessionAdapter) WhoAmI(ctx context.Context, sessionToken string) (*domain.Session, error) {
	resp, httpResp, err := a.client.PublicAPI().FrontendAPI.
		ToSession(ctx).
		XSessionToken(sessionToken).
		Execute()
	if err != nil {
		return nil, classifyFlowError(err, httpResp, opWhoAmI)
	}

	return a.toDomainSession(resp, sessionToken)
}

// RevokeSession invalidates the session behind a token
func (a *SessionAdapter) RevokeSession(ctx context.Context, sessionToken string) error {
	httpResp, err := a.client.PublicAPI().FrontendAPI.
		PerformNativeLogout(ctx).
		PerformNativeLogoutBody(kratosclient.PerformNativeLogoutBody{
			SessionToken: sessionToken,
		}).
		Execute()
	if err != nil {
		a.logger.Error("kratos logout failed",
			"error", err,
			"http_status", statusOf(httpResp))
		return classifyFlowError(err, httpResp, opRevoke)
	}

	return nil
}

// toDomainSession maps a Kratos session to the domain session
func (a *SessionAdapter) toDomainSession(sess *kratosclient.Session, token string) (*domain.Session, error) {
	if sess == nil || sess.Identity == nil {
		return nil, fmt.Errorf("kratos session has no identity")
	}

	userID, err := uuid.Parse(sess.Identity.Id)
	if err != nil {
		return nil, fmt.Errorf("kratos identity ID is not a UUID: %w", err)
	}

	expiresAt := time.Now().Add(24 * time.Hour)
	if sess.ExpiresAt != nil {
		expiresAt = *sess.ExpiresAt
	}

	issuedAt := time.Now()
	if sess.IssuedAt != nil {
		issuedAt = *sess.IssuedAt
	}

	return &domain.Session{
		ID:        sess.Id,
		UserID:    userID,
		Email:     identityEmail(sess.Identity),
		Token:     token,
		Active:    sess.GetActive(),
		IssuedAt:  issuedAt,
		ExpiresAt: expiresAt,
	}, nil
}

// identityEmail extracts the email trait from a Kratos identity
func identityEmail(identity *kratosclient.Identity) string {
	traits, ok := identity.Traits.(map[string]interface{})
	if !ok {
		return ""
	}

	email, _ := traits["email"].(string)
	return email
}
