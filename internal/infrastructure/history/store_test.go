package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/doeshing/devzap/internal/domain"
)

func sampleRecord(command string) domain.HistoryRecord {
	return domain.HistoryRecord{
		Timestamp: time.Now().UTC().Truncate(time.Second),
		Kind:      "analyze",
		Source:    "/tmp/build.log",
		Model:     "openai/gpt-4o",
		Command:   command,
		Decision:  "executed",
		Success:   true,
	}
}

func TestSQLiteStoreSaveAndRecords(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))

	if err := store.Save(sampleRecord("systemctl restart myapp")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := store.Save(sampleRecord("apt-get install -y jq")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("records = %d, want 2", len(records))
	}
}

func TestSQLiteStoreSearchAndLimit(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	_ = store.Save(sampleRecord("systemctl restart myapp"))
	_ = store.Save(sampleRecord("apt-get install -y jq"))

	records, err := store.Records(0, "systemctl")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Command != "systemctl restart myapp" {
		t.Fatalf("records = %+v", records)
	}

	limited, err := store.Records(1, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(limited) != 1 {
		t.Fatalf("limited = %d, want 1", len(limited))
	}
}

func TestSQLiteStoreClear(t *testing.T) {
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "history.db"))
	_ = store.Save(sampleRecord("echo hi"))

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %d after clear", len(records))
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))

	if err := store.Save(sampleRecord("brew install jq")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	records, err := store.Records(0, "")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Command != "brew install jq" {
		t.Fatalf("records = %+v", records)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	records, _ = store.Records(0, "")
	if len(records) != 0 {
		t.Fatal("expected empty store after clear")
	}
}

func TestFileStoreSearch(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "history.jsonl"))
	_ = store.Save(sampleRecord("systemctl restart myapp"))
	_ = store.Save(sampleRecord("apt-get install -y jq"))

	records, err := store.Records(0, "apt-get")
	if err != nil {
		t.Fatalf("Records() error = %v", err)
	}
	if len(records) != 1 || records[0].Command != "apt-get install -y jq" {
		t.Fatalf("records = %+v", records)
	}
}
