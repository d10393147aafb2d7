package autocortext

import (
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	// DefaultBaseURL is a placeholder pending published AutoCortext API
	// documentation. Override with [WithBaseURL] or [WithTransport].
	DefaultBaseURL = "https://api.autocortext.com"

	defaultTimeout = 30 * time.Second
)

// Client is the AutoCortext API client.
//
// Construct it once with [NewClient] and reuse it; it is immutable and
// safe for concurrent use.
type Client struct {
	creds      Credentials
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	userAgent  string
	transport  Transport
	logger     *slog.Logger
}

// NewClient creates a new AutoCortext client.
//
// Returns a [ConfigError] when either credential field is empty. Use
// [LoadCredentials] to resolve credentials from the environment first.
func NewClient(creds Credentials, opts ...Option) (*Client, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		creds:     creds,
		baseURL:   DefaultBaseURL,
		timeout:   defaultTimeout,
		userAgent: "autocortext-go/" + Version,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.transport == nil {
		httpClient := c.httpClient
		if httpClient == nil {
			httpClient = &http.Client{Timeout: c.timeout}
		}
		c.transport = &httpTransport{
			baseURL:    c.baseURL,
			httpClient: httpClient,
			userAgent:  c.userAgent,
			logger:     c.logger,
		}
	}

	return c, nil
}
