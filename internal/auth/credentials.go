package auth

import (
	"context"
	"errors"
	"net/http"
	"os"
	"sync"

	"github.com/fivetwenty-io/treasury-client/internal/constants"
)

// Static errors for err113 compliance.
var (
	ErrNoCredentials = errors.New("no API credentials available")
)

// Credentials identify an organization to the API.
type Credentials struct {
	OrganizationID string
	APIKey         string
}

// Empty reports whether either part is missing.
func (c Credentials) Empty() bool {
	return c.OrganizationID == "" || c.APIKey == ""
}

// CredentialProvider supplies the credentials of each request.
type CredentialProvider interface {
	Credentials(ctx context.Context) (Credentials, error)
}

// Apply sets basic auth on req from provider. A nil provider leaves req unauthenticated.
func Apply(ctx context.Context, provider CredentialProvider, req *http.Request) error {
	if provider == nil {
		return nil
	}

	creds, err := provider.Credentials(ctx)
	if err != nil {
		return err
	}

	req.SetBasicAuth(creds.OrganizationID, creds.APIKey)

	return nil
}

// StaticCredentials always returns the same credentials.
type StaticCredentials Credentials

// Credentials implements CredentialProvider.
func (s StaticCredentials) Credentials(ctx context.Context) (Credentials, error) {
	return Credentials(s), nil
}

// EnvCredentials reads TREASURY_ORGANIZATION_ID and TREASURY_API_KEY on every call.
type EnvCredentials struct{}

// Credentials implements CredentialProvider.
func (EnvCredentials) Credentials(ctx context.Context) (Credentials, error) {
	creds := Credentials{
		OrganizationID: os.Getenv(constants.EnvOrganizationID),
		APIKey:         os.Getenv(constants.EnvAPIKey),
	}

	if creds.Empty() {
		return Credentials{}, ErrNoCredentials
	}

	return creds, nil
}

// CredentialStore holds rotatable credentials safe for concurrent use.
type CredentialStore struct {
	mutex sync.RWMutex
	creds *Credentials
}

// NewCredentialStore creates an empty store.
func NewCredentialStore() *CredentialStore {
	return &CredentialStore{}
}

// Set replaces the stored credentials.
func (s *CredentialStore) Set(creds Credentials) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.creds = &creds
}

// Get returns the stored credentials or nil.
func (s *CredentialStore) Get() *Credentials {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if s.creds == nil {
		return nil
	}

	creds := *s.creds

	return &creds
}

// Clear removes the stored credentials.
func (s *CredentialStore) Clear() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.creds = nil
}

// Credentials implements CredentialProvider.
func (s *CredentialStore) Credentials(ctx context.Context) (Credentials, error) {
	creds := s.Get()
	if creds == nil || creds.Empty() {
		return Credentials{}, ErrNoCredentials
	}

	return *creds, nil
}
