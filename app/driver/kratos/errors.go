package kratos

import (
	"fmt"
	"net/http"
	"strings"

	"portal-service/app/domain"
)

// operation names used for error classification
const (
	opPasswordLogin = "password_login"
	opVerifyCode    = "verify_code"
	opWhoAmI        = "whoami"
	opRevoke        = "revoke_session"
)

// statusOf returns the HTTP status code for logging, 0 when no response
func statusOf(resp *http.Response) int {
	if resp == nil {
		return 0
	}
	return resp.StatusCode
}

// classifyFlowError maps a Kratos API failure to a domain error. A missing
// HTTP response means the request never completed: that is a transport
// failure, never an authentication verdict.
func classifyFlowError(err error, httpResp *http.Response, operation string) error {
	if httpResp == nil {
		return domain.NewBackendError(domain.ErrorKindTransport,
			fmt.Sprintf("kratos %s request failed", operation), err)
	}

	switch httpResp.StatusCode {
	case http.StatusBadRequest:
		return classifyRejection(err, operation)
	case http.StatusUnauthorized, http.StatusForbidden:
		if operation == opWhoAmI {
			return domain.ErrSessionExpired
		}
		return domain.ErrInvalidCredentials
	case http.StatusNotFound:
		if operation == opWhoAmI {
			return domain.ErrSessionNotFound
		}
		return classifyRejection(err, operation)
	case http.StatusGone:
		if operation == opVerifyCode {
			return domain.ErrExpiredCode
		}
		return domain.ErrSessionExpired
	default:
		if httpResp.StatusCode >= 500 {
			return domain.NewBackendError(domain.ErrorKindTransport,
				fmt.Sprintf("kratos %s returned status %d", operation, httpResp.StatusCode), err)
		}
		return domain.NewBackendError(domain.ErrorKindUnknown,
			fmt.Sprintf("kratos %s returned status %d", operation, httpResp.StatusCode), err)
	}
}

// classifyRejection distinguishes wrong-credential rejections from
// wrong-or-expired-code rejections on a 400-level flow response.
func classifyRejection(err error, operation string) error {
	message := strings.ToLower(err.Error())

	if operation == opVerifyCode {
		if strings.Contains(message, "expired") || strings.Contains(message, "no longer valid") {
			return domain.ErrExpiredCode
		}
		return domain.ErrInvalidCode
	}

	return domain.ErrInvalidCredentials
}
