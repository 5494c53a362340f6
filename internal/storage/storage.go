// Package storage persists debate records. Records are append-only: saved
// once, then only read or deleted as a whole.
package storage

import (
	"errors"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

// ErrNotFound is returned when no record exists for a requested ID.
var ErrNotFound = errors.New("storage: debate not found")

// Backend is the interface for debate persistence.
type Backend interface {
	// Save writes the full record and then its index entry, returning the
	// record's ID.
	Save(record *models.DebateRecord) (string, error)

	// Get looks a record up directly by ID, without consulting the index.
	Get(id string) (*models.DebateRecord, error)

	// List returns up to limit records, most recently created first. Index
	// entries whose record is missing are skipped.
	List(limit int) ([]*models.DebateRecord, error)

	// Delete removes a record and its index entry, reporting whether the
	// record existed.
	Delete(id string) (bool, error)
}
