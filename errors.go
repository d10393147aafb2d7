package autocortext

import "fmt"

// ConfigError reports missing or malformed credentials, detected either
// by [LoadCredentials] or at client construction. It is never retried;
// the caller must fix the configuration.
type ConfigError struct {
	Reason string
	Cause  error
}

func (e *ConfigError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("autocortext: configuration: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("autocortext: configuration: %s", e.Reason)
}

func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// ValidationError reports a malformed conversation passed to
// [Client.Troubleshoot]: an empty conversation, a message with an
// unknown role, or a message with empty content. It is detected before
// any network traffic happens.
type ValidationError struct {
	Reason string
	Cause  error
}

func (e *ValidationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("autocortext: invalid conversation: %s: %v", e.Reason, e.Cause)
	}
	return fmt.Sprintf("autocortext: invalid conversation: %s", e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// APIError reports a failure during the remote call: a network error, a
// non-2xx status, or an unparseable response body. Status is the HTTP
// status code when one was received, zero otherwise.
type APIError struct {
	Status  int
	Message string
	Cause   error
}

func (e *APIError) Error() string {
	switch {
	case e.Status != 0 && e.Cause != nil:
		return fmt.Sprintf("autocortext: api error (status %d): %s: %v", e.Status, e.Message, e.Cause)
	case e.Status != 0:
		return fmt.Sprintf("autocortext: api error (status %d): %s", e.Status, e.Message)
	case e.Cause != nil:
		return fmt.Sprintf("autocortext: api error: %s: %v", e.Message, e.Cause)
	default:
		return fmt.Sprintf("autocortext: api error: %s", e.Message)
	}
}

func (e *APIError) Unwrap() error {
	return e.Cause
}

// Sentinel errors.
var (
	ErrMissingAPIKey = &ConfigError{Reason: EnvAPIKey + " is not set"}
	ErrMissingOrgID  = &ConfigError{Reason: EnvOrgID + " is not set"}
)
