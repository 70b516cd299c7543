package kratos

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portal-service/app/config"
	"portal-service/app/utils/logger"
)

func TestNewClient(t *testing.T) {
	testLogger, err := logger.New("debug")
	require.NoError(t, err)

	tests := []struct {
		name      string
		publicURL string
		adminURL  string
		wantErr   bool
		errorMsg  string
	}{
		{
			name:      "valid URLs",
			publicURL: "http://kratos:4433",
			adminURL:  "http://kratos:4434",
		},
		{
			name:      "empty public URL",
			publicURL: "",
			adminURL:  "http://kratos:4434",
			wantErr:   true,
			errorMsg:  "invalid Kratos public URL",
		},
		{
			name:      "public URL without scheme",
			publicURL: "kratos:4433",
			adminURL:  "http://kratos:4434",
			wantErr:   true,
			errorMsg:  "invalid Kratos public URL",
		},
		{
			name:      "empty admin URL",
			publicURL: "http://kratos:4433",
			adminURL:  "",
			wantErr:   true,
			errorMsg:  "invalid Kratos admin URL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				KratosPublicURL: tt.publicURL,
				KratosAdminURL:  tt.adminURL,
			}

			client, err := NewClient(cfg, testLogger)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errorMsg)
				assert.Nil(t, client)
			} else {
				require.NoError(t, err)
				assert.NotNil(t, client.PublicAPI())
				assert.NotNil(t, client.AdminAPI())
				assert.Equal(t, tt.publicURL, client.GetPublicURL())
				assert.Equal(t, tt.adminURL, client.GetAdminURL())
			}
		})
	}
}

func TestIsValidURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://localhost:4433", true},
		{"https://auth.example.com", true},
		{"", false},
		{"localhost:4433", false},
		{"/relative/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, isValidURL(tt.url))
		})
	}
}
