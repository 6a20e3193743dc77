package watch

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestWatcher_DetectsModification(t *testing.T) {
	dir := t.TempDir()

	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte(`{"bodies": []}`), 0644); err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}

	w, err := NewWatcher(catalogFile)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(catalogFile, []byte(`{"bodies": [{"id": 0, "name": "SSB"}]}`), 0644); err != nil {
		t.Fatalf("failed to update catalog file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Kind != ChangeModified {
			t.Errorf("expected ChangeModified, got %d", change.Kind)
		}
		if change.File != w.Path {
			t.Errorf("expected file %q, got %q", w.Path, change.File)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for change event")
	}
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()

	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte(`{"bodies": []}`), 0644); err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}

	w, err := NewWatcher(catalogFile)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("hello"), 0644); err != nil {
		t.Fatalf("failed to create file: %v", err)
	}

	select {
	case change := <-w.Changes:
		t.Errorf("unexpected change event: %+v", change)
	case <-time.After(300 * time.Millisecond):
		// Expected: no events for unrelated files.
	}
}

func TestWatcher_DetectsAtomicReplace(t *testing.T) {
	dir := t.TempDir()

	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte(`{"bodies": []}`), 0644); err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}

	w, err := NewWatcher(catalogFile)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	// Write-to-temp then rename, the way editors save.
	tmp := filepath.Join(dir, "catalog.json.tmp")
	if err := os.WriteFile(tmp, []byte(`{"bodies": [{"id": 0, "name": "SSB"}]}`), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	if err := os.Rename(tmp, catalogFile); err != nil {
		t.Fatalf("failed to rename: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.File != w.Path {
			t.Errorf("expected file %q, got %q", w.Path, change.File)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for rename event")
	}
}

func TestWatcher_DetectsRemoval(t *testing.T) {
	dir := t.TempDir()

	catalogFile := filepath.Join(dir, "catalog.json")
	if err := os.WriteFile(catalogFile, []byte(`{"bodies": []}`), 0644); err != nil {
		t.Fatalf("failed to create catalog file: %v", err)
	}

	w, err := NewWatcher(catalogFile)
	if err != nil {
		t.Fatalf("NewWatcher failed: %v", err)
	}
	if err := w.Start(); err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	defer w.Stop()

	if err := os.Remove(catalogFile); err != nil {
		t.Fatalf("failed to remove catalog file: %v", err)
	}

	select {
	case change := <-w.Changes:
		if change.Kind != ChangeRemoved {
			t.Errorf("expected ChangeRemoved, got %d", change.Kind)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for removal event")
	}
}
