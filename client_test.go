package autocortext_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autocortext/autocortext-go"
)

var testCreds = autocortext.Credentials{APIKey: "sk-test-key-0123456789", OrgID: "org-test"}

// TestNewClient_ValidCredentials verifies that a client is created from
// well-formed credentials.
func TestNewClient_ValidCredentials(t *testing.T) {
	client, err := autocortext.NewClient(testCreds)

	require.NoError(t, err)
	assert.NotNil(t, client)
}

// TestNewClient_InvalidCredentials verifies that empty credential
// fields are rejected with a ConfigError.
func TestNewClient_InvalidCredentials(t *testing.T) {
	tests := []struct {
		name  string
		creds autocortext.Credentials
		want  error
	}{
		{
			name:  "empty api key",
			creds: autocortext.Credentials{OrgID: "org-test"},
			want:  autocortext.ErrMissingAPIKey,
		},
		{
			name:  "empty org id",
			creds: autocortext.Credentials{APIKey: "sk-test"},
			want:  autocortext.ErrMissingOrgID,
		},
		{
			name: "zero value",
			want: autocortext.ErrMissingAPIKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := autocortext.NewClient(tt.creds)

			require.Error(t, err)
			assert.Nil(t, client)
			assert.ErrorIs(t, err, tt.want)

			var cfgErr *autocortext.ConfigError
			assert.ErrorAs(t, err, &cfgErr)
		})
	}
}

// TestNewClient_Options verifies options don't panic and the client is
// created.
func TestNewClient_Options(t *testing.T) {
	customHTTPClient := &http.Client{}

	client, err := autocortext.NewClient(testCreds,
		autocortext.WithBaseURL("http://localhost:8585"),
		autocortext.WithTimeout(time.Minute),
		autocortext.WithHTTPClient(customHTTPClient),
		autocortext.WithUserAgent("test-agent/1.0"),
	)

	require.NoError(t, err)
	assert.NotNil(t, client)
}
