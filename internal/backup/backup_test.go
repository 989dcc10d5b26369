package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func newJSONManager(t *testing.T) *Manager {
	t.Helper()
	dir := t.TempDir()
	storePath := filepath.Join(dir, "welltrack.json")
	if err := os.WriteFile(storePath, []byte(`{"version":1,"values":{}}`), 0600); err != nil {
		t.Fatal(err)
	}
	return NewManager(storePath)
}

func TestCreateAndListBackups(t *testing.T) {
	m := newJSONManager(t)

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("backup file missing: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Fatalf("expected 1 backup, got %d", len(backups))
	}
	if backups[0].Path != path {
		t.Errorf("expected path %s, got %s", path, backups[0].Path)
	}
	if backups[0].Size == 0 {
		t.Error("expected non-zero backup size")
	}
}

func TestCreateBackupMissingStore(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "missing.json"))
	if _, err := m.CreateBackup(); err == nil {
		t.Error("expected error for missing store")
	}
}

func TestBackupNameCollision(t *testing.T) {
	m := newJSONManager(t)
	fixed := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	first, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("first CreateBackup failed: %v", err)
	}
	second, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("second CreateBackup failed: %v", err)
	}
	if first == second {
		t.Error("expected distinct backup paths for same timestamp")
	}
}

func TestRotation(t *testing.T) {
	m := newJSONManager(t)
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	for i := 0; i < MaxBackups+3; i++ {
		ts := base.Add(time.Duration(i) * time.Minute)
		m.now = func() time.Time { return ts }
		if _, err := m.CreateBackup(); err != nil {
			t.Fatalf("CreateBackup %d failed: %v", i, err)
		}
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != MaxBackups {
		t.Fatalf("expected %d backups after rotation, got %d", MaxBackups, len(backups))
	}
	// Newest first; the oldest snapshots were the ones removed
	if !backups[0].Timestamp.After(backups[len(backups)-1].Timestamp) {
		t.Error("expected backups sorted newest first")
	}
}

func TestRestoreBackup(t *testing.T) {
	m := newJSONManager(t)

	original, err := os.ReadFile(m.storePath)
	if err != nil {
		t.Fatal(err)
	}

	path, err := m.CreateBackup()
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Mutate the store, then restore the snapshot
	if err := os.WriteFile(m.storePath, []byte(`{"version":1,"values":{"k":"v"}}`), 0600); err != nil {
		t.Fatal(err)
	}
	if err := m.RestoreBackup(path); err != nil {
		t.Fatalf("RestoreBackup failed: %v", err)
	}

	restored, err := os.ReadFile(m.storePath)
	if err != nil {
		t.Fatal(err)
	}
	if string(restored) != string(original) {
		t.Errorf("restored contents differ: %s", restored)
	}
}

func TestRestoreMissingBackup(t *testing.T) {
	m := newJSONManager(t)
	if err := m.RestoreBackup(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing backup file")
	}
}
