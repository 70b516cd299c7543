package integration

import (
	"context"
	"errors"
	"testing"

	"portal-service/app/domain"
	"portal-service/app/driver/kratos"
	"portal-service/app/utils/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKratosIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	require.NoError(t, WaitForKratos(ctx), "Kratos should be ready")

	client, err := TestKratosClient()
	require.NoError(t, err, "Should create Kratos client")

	require.NoError(t, client.HealthCheck(ctx), "Kratos health check should pass")
}

func TestKratosSessionRejection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	require.NoError(t, WaitForKratos(ctx))

	client, err := TestKratosClient()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	adapter := kratos.NewSessionAdapter(client, testLogger)

	// A fabricated token must resolve to a session verdict, never to a
	// transport failure.
	session, err := adapter.WhoAmI(ctx, "not-a-real-session-token")

	require.Error(t, err)
	assert.Nil(t, session)

	isVerdict := errors.Is(err, domain.ErrSessionExpired) || errors.Is(err, domain.ErrSessionNotFound)
	assert.True(t, isVerdict, "rejection should be a session verdict, got %v", err)
}

func TestKratosCredentialRejection(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()
	require.NoError(t, WaitForKratos(ctx))

	client, err := TestKratosClient()
	require.NoError(t, err)

	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	adapter := kratos.NewSessionAdapter(client, testLogger)

	session, err := adapter.PasswordLogin(ctx, "nobody@integration.example.com", "definitely-wrong")

	require.Error(t, err)
	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}
