package cli

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"volunteer-hub/app/domain"
)

// IdentityRecord is what hubctl persists between invocations: the signed
// session token and the identity it belongs to, as one JSON document under a
// single well-known path.
type IdentityRecord struct {
	Token    string           `json:"token"`
	Identity *domain.Identity `json:"identity"`
}

// IdentityStore reads and writes the identity record file. Absence means
// logged out; a record that fails to parse also means logged out, never an
// error the caller must handle.
type IdentityStore struct {
	path   string
	logger *slog.Logger
}

// NewIdentityStore creates a store rooted at path.
func NewIdentityStore(path string, logger *slog.Logger) *IdentityStore {
	return &IdentityStore{path: path, logger: logger}
}

// Load returns the persisted record, or nil when logged out. Malformed
// content is reported via log and treated exactly like an absent file.
func (s *IdentityStore) Load() *IdentityRecord {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Warn("could not read identity file", "path", s.path, "error", err)
		}
		return nil
	}

	var record IdentityRecord
	if err := json.Unmarshal(data, &record); err != nil {
		s.logger.Warn("identity file is malformed, treating as logged out", "path", s.path, "error", err)
		return nil
	}
	if record.Token == "" || record.Identity == nil || record.Identity.Validate() != nil {
		s.logger.Warn("identity file is incomplete, treating as logged out", "path", s.path)
		return nil
	}
	return &record
}

// Save writes the record, creating parent directories as needed. Mode 0600:
// the token is a credential.
func (s *IdentityStore) Save(record *IdentityRecord) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("creating identity directory: %w", err)
	}

	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding identity record: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("writing identity file: %w", err)
	}
	return nil
}

// Clear removes the record. Clearing an absent record succeeds.
func (s *IdentityStore) Clear() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing identity file: %w", err)
	}
	return nil
}
