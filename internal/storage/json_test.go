package storage

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lorenzotomasdiez/debate-cli/internal/models"
)

func newBackend(t *testing.T) *JSONBackend {
	t.Helper()
	backend, err := NewJSONBackend(filepath.Join(t.TempDir(), "debates"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return backend
}

func testRecord(t *testing.T, title string, createdAt time.Time) *models.DebateRecord {
	t.Helper()
	spec, err := models.NewAgentSpec("Claude FOR", models.RoleAdvocate, models.ProviderClaude, "haiku")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	record := models.NewDebateRecord(
		models.Topic{Title: title, Description: "a description"},
		[]models.AgentSpec{spec},
		[]models.AgentResult{models.SuccessResult(spec, "some text", 1200*time.Millisecond)},
		1200,
	)
	record.CreatedAt = createdAt
	return &record
}

func TestSaveGetRoundTrip(t *testing.T) {
	backend := newBackend(t)
	record := testRecord(t, "round trip", time.Now().UTC())

	id, err := backend.Save(record)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != record.DebateID {
		t.Errorf("Save returned %q, want %q", id, record.DebateID)
	}

	got, err := backend.Get(id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.DebateID != record.DebateID {
		t.Errorf("DebateID = %q, want %q", got.DebateID, record.DebateID)
	}
	if got.Topic != record.Topic {
		t.Errorf("Topic = %+v, want %+v", got.Topic, record.Topic)
	}
	if !got.CreatedAt.Equal(record.CreatedAt) {
		t.Errorf("CreatedAt = %v, want %v", got.CreatedAt, record.CreatedAt)
	}
	if got.TotalExecutionTimeMS != record.TotalExecutionTimeMS {
		t.Errorf("TotalExecutionTimeMS = %g, want %g", got.TotalExecutionTimeMS, record.TotalExecutionTimeMS)
	}
	if len(got.AgentsConfig) != 1 || got.AgentsConfig[0] != record.AgentsConfig[0] {
		t.Errorf("AgentsConfig did not round-trip: %+v", got.AgentsConfig)
	}
	if len(got.AgentResponses) != 1 || got.AgentResponses[0] != record.AgentResponses[0] {
		t.Errorf("AgentResponses did not round-trip: %+v", got.AgentResponses)
	}
}

func TestGetMissingRecord(t *testing.T) {
	backend := newBackend(t)
	_, err := backend.Get("no-such-id")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestSaveWritesIndexEntry(t *testing.T) {
	backend := newBackend(t)
	record := testRecord(t, "indexed", time.Now().UTC())
	if _, err := backend.Save(record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(backend.indexPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var index []models.IndexEntry
	if err := json.Unmarshal(data, &index); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(index) != 1 {
		t.Fatalf("expected 1 index entry, got %d", len(index))
	}
	if index[0].ID != record.DebateID || index[0].TopicTitle != "indexed" {
		t.Errorf("index entry = %+v", index[0])
	}
}

func TestListMostRecentFirstWithLimit(t *testing.T) {
	backend := newBackend(t)
	base := time.Now().UTC().Add(-time.Hour)

	oldest := testRecord(t, "oldest", base)
	middle := testRecord(t, "middle", base.Add(10*time.Minute))
	newest := testRecord(t, "newest", base.Add(20*time.Minute))
	// Save out of creation order; listing must sort by created_at.
	for _, record := range []*models.DebateRecord{middle, oldest, newest} {
		if _, err := backend.Save(record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := backend.List(2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	if records[0].Topic.Title != "newest" || records[1].Topic.Title != "middle" {
		t.Errorf("got order %q, %q", records[0].Topic.Title, records[1].Topic.Title)
	}
}

func TestListSkipsOrphanIndexEntries(t *testing.T) {
	backend := newBackend(t)
	kept := testRecord(t, "kept", time.Now().UTC())
	gone := testRecord(t, "gone", time.Now().UTC().Add(time.Minute))
	for _, record := range []*models.DebateRecord{kept, gone} {
		if _, err := backend.Save(record); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	// Remove a record file behind the index's back.
	if err := os.Remove(backend.recordPath(gone.DebateID)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	records, err := backend.List(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 1 || records[0].Topic.Title != "kept" {
		t.Errorf("expected only the surviving record, got %d", len(records))
	}
}

func TestDeleteRemovesRecordAndIndexEntry(t *testing.T) {
	backend := newBackend(t)
	record := testRecord(t, "doomed", time.Now().UTC())
	if _, err := backend.Save(record); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	existed, err := backend.Delete(record.DebateID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !existed {
		t.Error("Delete reported the record as missing")
	}

	if _, err := backend.Get(record.DebateID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	records, err := backend.List(10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("expected empty listing after delete, got %d", len(records))
	}
}

func TestDeleteNonexistent(t *testing.T) {
	backend := newBackend(t)
	existed, err := backend.Delete("no-such-id")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if existed {
		t.Error("Delete reported a nonexistent record as existing")
	}
}

func TestConcurrentSaves(t *testing.T) {
	backend := newBackend(t)
	const n = 8

	done := make(chan error, n)
	base := time.Now().UTC()
	for i := 0; i < n; i++ {
		record := testRecord(t, "concurrent", base.Add(time.Duration(i)*time.Second))
		go func() {
			_, err := backend.Save(record)
			done <- err
		}()
	}
	for i := 0; i < n; i++ {
		if err := <-done; err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	records, err := backend.List(n)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(records) != n {
		t.Errorf("expected %d index entries to survive concurrent saves, got %d", n, len(records))
	}
}
