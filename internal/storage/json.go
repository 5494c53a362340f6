package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

const indexFileName = "_index.json"

// JSONBackend stores each debate as <dir>/<id>.json plus a shared
// <dir>/_index.json of {id, created_at, topic_title} entries for listing.
//
// The index read-modify-write is a critical section guarded by mu; record
// files themselves are written without the lock since each belongs to exactly
// one debate. The record is always written before its index entry, so a crash
// can leave an orphan record (tolerated, affects listing only) but never an
// index entry with no backing record.
type JSONBackend struct {
	dir       string
	indexPath string

	mu sync.Mutex
}

// NewJSONBackend creates the storage directory if needed.
func NewJSONBackend(dir string) (*JSONBackend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: creating %s: %w", dir, err)
	}
	return &JSONBackend{
		dir:       dir,
		indexPath: filepath.Join(dir, indexFileName),
	}, nil
}

func (b *JSONBackend) recordPath(id string) string {
	return filepath.Join(b.dir, id+".json")
}

// Save writes the record file, then inserts its index entry.
func (b *JSONBackend) Save(record *models.DebateRecord) (string, error) {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return "", fmt.Errorf("storage: encoding debate %s: %w", record.DebateID, err)
	}
	if err := os.WriteFile(b.recordPath(record.DebateID), data, 0o644); err != nil {
		return "", fmt.Errorf("storage: writing debate %s: %w", record.DebateID, err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	index := b.loadIndex()
	index = append(index, models.IndexEntry{
		ID:         record.DebateID,
		CreatedAt:  record.CreatedAt,
		TopicTitle: record.Topic.Title,
	})
	if err := b.writeIndex(index); err != nil {
		return "", err
	}
	return record.DebateID, nil
}

// Get reads a record file directly by ID.
func (b *JSONBackend) Get(id string) (*models.DebateRecord, error) {
	data, err := os.ReadFile(b.recordPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("storage: reading debate %s: %w", id, err)
	}
	var record models.DebateRecord
	if err := json.Unmarshal(data, &record); err != nil {
		return nil, fmt.Errorf("storage: decoding debate %s: %w", id, err)
	}
	return &record, nil
}

// List resolves the most recent index entries to full records. An entry whose
// record file has gone missing is skipped rather than failing the listing.
func (b *JSONBackend) List(limit int) ([]*models.DebateRecord, error) {
	b.mu.Lock()
	index := b.loadIndex()
	b.mu.Unlock()

	slices.SortFunc(index, func(a, b models.IndexEntry) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	if limit >= 0 && len(index) > limit {
		index = index[:limit]
	}

	records := make([]*models.DebateRecord, 0, len(index))
	for _, entry := range index {
		record, err := b.Get(entry.ID)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Delete removes the record and its index entry. Both are removed or the
// operation reports failure.
func (b *JSONBackend) Delete(id string) (bool, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	err := os.Remove(b.recordPath(id))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage: deleting debate %s: %w", id, err)
	}

	index := b.loadIndex()
	index = slices.DeleteFunc(index, func(e models.IndexEntry) bool {
		return e.ID == id
	})
	if err := b.writeIndex(index); err != nil {
		return true, err
	}
	return true, nil
}

// loadIndex reads the index, treating a missing or unreadable file as empty.
func (b *JSONBackend) loadIndex() []models.IndexEntry {
	data, err := os.ReadFile(b.indexPath)
	if err != nil {
		return nil
	}
	var index []models.IndexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		return nil
	}
	return index
}

func (b *JSONBackend) writeIndex(index []models.IndexEntry) error {
	if index == nil {
		index = []models.IndexEntry{}
	}
	data, err := json.MarshalIndent(index, "", "  ")
	if err != nil {
		return fmt.Errorf("storage: encoding index: %w", err)
	}
	if err := os.WriteFile(b.indexPath, data, 0o644); err != nil {
		return fmt.Errorf("storage: writing index: %w", err)
	}
	return nil
}
