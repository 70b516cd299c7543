package edgefn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-service/app/config"
	"portal-service/app/domain"
	"portal-service/app/utils/logger"
)

func testSubmission() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		Name:         "Jane Doe",
		Email:        "jane@example.com",
		Organization: "Acme Corp",
		Message:      "We would like a security assessment.",
		PagesVisited: []string{"/services"},
	}
}

func TestNotifier_NotifyContactSubmission(t *testing.T) {
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	lead := &domain.Lead{ID: uuid.New(), CreatedAt: time.Now()}

	t.Run("posts payload with bearer token", func(t *testing.T) {
		var gotAuth string
		var gotPayload notifyPayload

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		notifier := NewNotifier(&config.Config{
			ContactNotifyURL:   server.URL,
			ContactNotifyToken: "secret-token",
		}, testLogger)

		err := notifier.NotifyContactSubmission(context.Background(), testSubmission(), lead)

		require.NoError(t, err)
		assert.Equal(t, "Bearer secret-token", gotAuth)
		assert.Equal(t, lead.ID.String(), gotPayload.LeadID)
		assert.Equal(t, "jane@example.com", gotPayload.Email)
	})

	t.Run("non-2xx response is an error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "upstream unavailable", http.StatusBadGateway)
		}))
		defer server.Close()

		notifier := NewNotifier(&config.Config{ContactNotifyURL: server.URL}, testLogger)

		err := notifier.NotifyContactSubmission(context.Background(), testSubmission(), lead)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "status 502")
	})

	t.Run("disabled when endpoint unset", func(t *testing.T) {
		notifier := NewNotifier(&config.Config{}, testLogger)

		err := notifier.NotifyContactSubmission(context.Background(), testSubmission(), lead)

		assert.NoError(t, err)
	})
}
