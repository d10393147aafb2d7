package autocortext

import (
	"os"

	"github.com/joho/godotenv"
)

// Environment variables read by [LoadCredentials].
const (
	EnvAPIKey = "AUTOCORTEXT_API_KEY"
	EnvOrgID  = "AUTOCORTEXT_ORG_ID"
)

// DefaultEnvFile is the dotenv file sourced by [LoadCredentials] when no
// [WithEnvFile] override is given. A missing default file is not an error.
const DefaultEnvFile = ".env"

// Credentials authenticate a client to the AutoCortext API.
//
// Both fields are required. Credentials are copied into the [Client] at
// construction and never mutated afterwards.
type Credentials struct {
	// APIKey is the AutoCortext API key, sent as a bearer token.
	APIKey string

	// OrgID is the organization identifier the key belongs to.
	OrgID string
}

// Validate reports whether the credentials are well-formed.
func (c Credentials) Validate() error {
	if c.APIKey == "" {
		return ErrMissingAPIKey
	}
	if c.OrgID == "" {
		return ErrMissingOrgID
	}
	return nil
}

// CredentialsOption configures [LoadCredentials].
type CredentialsOption func(*credentialsLoader)

type credentialsLoader struct {
	apiKey      string
	orgID       string
	envFile     string
	explicitEnv bool
}

// WithAPIKey supplies the API key explicitly, taking precedence over the
// environment and any dotenv file.
func WithAPIKey(key string) CredentialsOption {
	return func(l *credentialsLoader) {
		l.apiKey = key
	}
}

// WithOrgID supplies the organization ID explicitly, taking precedence
// over the environment and any dotenv file.
func WithOrgID(id string) CredentialsOption {
	return func(l *credentialsLoader) {
		l.orgID = id
	}
}

// WithEnvFile sources the given dotenv file instead of [DefaultEnvFile].
// Unlike the default, a file named here must exist and be readable.
func WithEnvFile(path string) CredentialsOption {
	return func(l *credentialsLoader) {
		l.envFile = path
		l.explicitEnv = true
	}
}

// LoadCredentials resolves credentials from, in order of precedence,
// explicit options, the process environment, and a local dotenv file.
//
// The dotenv file is sourced into the process environment before lookup
// and never overrides variables that are already set, so the effective
// precedence is: explicit option > environment > dotenv file.
//
// Returns a [ConfigError] when either credential is missing or empty
// after all sources are checked.
func LoadCredentials(opts ...CredentialsOption) (Credentials, error) {
	l := credentialsLoader{envFile: DefaultEnvFile}
	for _, opt := range opts {
		opt(&l)
	}

	if err := godotenv.Load(l.envFile); err != nil {
		// The default .env is optional; an explicitly named file is not.
		if l.explicitEnv {
			return Credentials{}, &ConfigError{
				Reason: "cannot read env file " + l.envFile,
				Cause:  err,
			}
		}
	}

	creds := Credentials{APIKey: l.apiKey, OrgID: l.orgID}
	if creds.APIKey == "" {
		creds.APIKey = os.Getenv(EnvAPIKey)
	}
	if creds.OrgID == "" {
		creds.OrgID = os.Getenv(EnvOrgID)
	}

	if err := creds.Validate(); err != nil {
		return Credentials{}, err
	}
	return creds, nil
}
