package autocortext

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-openapi/runtime"
)

// maxErrorBodySize limits how much of an error response body is read.
// 4KB is plenty for an error message while keeping a misbehaving server
// from exhausting memory.
const maxErrorBodySize = 4096

// TroubleshootEndpoint is the path of the troubleshooting endpoint,
// relative to the client's base URL.
const TroubleshootEndpoint = "/troubleshoot"

// Transport performs the network call to AutoCortext.
//
// The wire protocol is owned entirely by the transport: the [Client]
// hands it a serialized payload and credentials and expects the raw
// response body back. Substitute an implementation with [WithTransport]
// to test the client without a network, or to add caller-side retry or
// timeout behavior.
type Transport interface {
	// Send posts payload to the given endpoint, authenticating with
	// creds, and returns the raw response body. A non-success status
	// must be reported as an error.
	Send(ctx context.Context, endpoint string, payload []byte, creds Credentials) ([]byte, error)
}

// httpTransport is the default Transport, speaking the AutoCortext HTTP
// protocol: a POST with the organization ID and a bearer token in the
// headers and a JSON body.
type httpTransport struct {
	baseURL    string
	httpClient *http.Client
	userAgent  string
	logger     *slog.Logger
}

func (t *httpTransport) Send(ctx context.Context, endpoint string, payload []byte, creds Credentials) ([]byte, error) {
	url := t.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, &APIError{Message: "failed to create request", Cause: err}
	}

	req.Header.Set("Content-Type", runtime.JSONMime)
	req.Header.Set("Accept", runtime.JSONMime)
	req.Header.Set("Organization", creds.OrgID)
	req.Header.Set("Authorization", "Bearer "+creds.APIKey)
	req.Header.Set("User-Agent", t.userAgent)

	t.logger.Debug("sending request",
		"url", url,
		"org_id", creds.OrgID,
		"api_key", maskKey(creds.APIKey),
		"request_size", len(payload))

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &APIError{Message: "request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	t.logger.Debug("received response",
		"status_code", resp.StatusCode,
		"content_type", resp.Header.Get("Content-Type"))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("unexpected status %s: %s", resp.Status, bytes.TrimSpace(body)),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Message: "failed to read response body",
			Cause:   err,
		}
	}

	return body, nil
}

// maskKey shortens an API key for logging. Short keys are fully masked.
func maskKey(key string) string {
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
