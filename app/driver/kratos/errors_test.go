package kratos

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"portal-service/app/domain"
)

func respWithStatus(code int) *http.Response {
	return &http.Response{StatusCode: code}
}

func TestClassifyFlowError(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		resp      *http.Response
		operation string
		want      error
		wantKind  domain.ErrorKind
	}{
		{
			name:      "no response is transport failure",
			err:       errors.New("dial tcp: connection refused"),
			resp:      nil,
			operation: opPasswordLogin,
			wantKind:  domain.ErrorKindTransport,
		},
		{
			name:      "bad password",
			err:       errors.New("the provided credentials are invalid"),
			resp:      respWithStatus(http.StatusBadRequest),
			operation: opPasswordLogin,
			want:      domain.ErrInvalidCredentials,
		},
		{
			name:      "wrong code",
			err:       errors.New("the login code is invalid or has already been used"),
			resp:      respWithStatus(http.StatusBadRequest),
			operation: opVerifyCode,
			want:      domain.ErrInvalidCode,
		},
		{
			name:      "expired code",
			err:       errors.New("the login code has expired"),
			resp:      respWithStatus(http.StatusBadRequest),
			operation: opVerifyCode,
			want:      domain.ErrExpiredCode,
		},
		{
			name:      "gone flow during code verify",
			err:       errors.New("the flow has expired"),
			resp:      respWithStatus(http.StatusGone),
			operation: opVerifyCode,
			want:      domain.ErrExpiredCode,
		},
		{
			name:      "unauthorized whoami",
			err:       errors.New("no valid session"),
			resp:      respWithStatus(http.StatusUnauthorized),
			operation: opWhoAmI,
			want:      domain.ErrSessionExpired,
		},
		{
			name:      "whoami session not found",
			err:       errors.New("not found"),
			resp:      respWithStatus(http.StatusNotFound),
			operation: opWhoAmI,
			want:      domain.ErrSessionNotFound,
		},
		{
			name:      "server error is transport failure",
			err:       errors.New("internal server error"),
			resp:      respWithStatus(http.StatusInternalServerError),
			operation: opPasswordLogin,
			wantKind:  domain.ErrorKindTransport,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyFlowError(tt.err, tt.resp, tt.operation)

			if tt.want != nil {
				assert.ErrorIs(t, got, tt.want)
			} else {
				assert.Equal(t, tt.wantKind, domain.KindOf(got))
			}
		})
	}
}
