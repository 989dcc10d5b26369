package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestProviders(t *testing.T) map[string]Provider {
	t.Helper()
	dir := t.TempDir()

	jsonStore := NewJSONStore(filepath.Join(dir, "welltrack.json"))
	if err := jsonStore.Init(); err != nil {
		t.Fatalf("failed to init JSON store: %v", err)
	}

	sqliteStore := NewSQLiteStore(filepath.Join(dir, "welltrack.db"))
	if err := sqliteStore.Init(); err != nil {
		t.Fatalf("failed to init SQLite store: %v", err)
	}
	t.Cleanup(func() { _ = sqliteStore.Close() })

	return map[string]Provider{
		"json":   jsonStore,
		"sqlite": sqliteStore,
	}
}

func TestSetGetRemove(t *testing.T) {
	for name, store := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			if _, ok, err := store.Get("missing"); err != nil || ok {
				t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
			}

			if err := store.Set("greeting", "hello"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			v, ok, err := store.Get("greeting")
			if err != nil || !ok || v != "hello" {
				t.Fatalf("Get returned (%q, %v, %v), want (hello, true, nil)", v, ok, err)
			}

			if err := store.Remove("greeting"); err != nil {
				t.Fatalf("Remove failed: %v", err)
			}
			if _, ok, _ := store.Get("greeting"); ok {
				t.Error("key still present after Remove")
			}
		})
	}
}

func TestBatchIsAtomicFromCallerView(t *testing.T) {
	for name, store := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			if err := store.Set("keep", "1"); err != nil {
				t.Fatalf("Set failed: %v", err)
			}

			ops := []Op{
				SetOp("a", "1"),
				SetOp("b", "2"),
				RemoveOp("keep"),
			}
			if err := store.Batch(ops); err != nil {
				t.Fatalf("Batch failed: %v", err)
			}

			for _, key := range []string{"a", "b"} {
				if _, ok, _ := store.Get(key); !ok {
					t.Errorf("key %q missing after batch", key)
				}
			}
			if _, ok, _ := store.Get("keep"); ok {
				t.Error("removed key survived batch")
			}
		})
	}
}

func TestKeysPrefix(t *testing.T) {
	for name, store := range newTestProviders(t) {
		t.Run(name, func(t *testing.T) {
			pairs := map[string]string{
				"alice_habits": "[]",
				"alice_moods":  "[]",
				"bob_habits":   "[]",
				"dark_mode":    "true",
			}
			for k, v := range pairs {
				if err := store.Set(k, v); err != nil {
					t.Fatalf("Set %q failed: %v", k, err)
				}
			}

			keys, err := store.Keys("alice_")
			if err != nil {
				t.Fatalf("Keys failed: %v", err)
			}
			if len(keys) != 2 {
				t.Fatalf("expected 2 alice keys, got %v", keys)
			}
			if keys[0] != "alice_habits" || keys[1] != "alice_moods" {
				t.Errorf("unexpected key order: %v", keys)
			}
		})
	}
}

func TestSQLiteWritesSurviveReopen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "welltrack.db")

	store := NewSQLiteStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := store.Set("water_count", "3"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reopened := NewSQLiteStore(path)
	if err := reopened.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer reopened.Close()

	v, ok, err := reopened.Get("water_count")
	if err != nil || !ok || v != "3" {
		t.Fatalf("Get after reopen returned (%q, %v, %v), want (3, true, nil)", v, ok, err)
	}
}

func TestSQLiteFlushDrainsQueue(t *testing.T) {
	dir := t.TempDir()
	store := NewSQLiteStore(filepath.Join(dir, "welltrack.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer store.Close()

	for i := 0; i < 100; i++ {
		if err := store.Set("counter", "x"); err != nil {
			t.Fatalf("Set failed: %v", err)
		}
	}
	if err := store.Flush(); err != nil {
		t.Fatalf("Flush failed: %v", err)
	}

	// After Flush the row must be durable in the database itself
	var v string
	if err := store.db.QueryRow("SELECT value FROM kv WHERE key = ?", "counter").Scan(&v); err != nil {
		t.Fatalf("row not durable after Flush: %v", err)
	}
	if v != "x" {
		t.Errorf("unexpected durable value %q", v)
	}
}

func TestJSONStoreLoadMissingFile(t *testing.T) {
	store := NewJSONStore(filepath.Join(t.TempDir(), "nope.json"))
	if err := store.Load(); err == nil {
		t.Fatal("expected error loading uninitialized storage")
	}
}

func TestJSONStoreInitTwice(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltrack.json")
	store := NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("first Init failed: %v", err)
	}
	if err := NewJSONStore(path).Init(); err == nil {
		t.Fatal("expected error initializing twice")
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("storage file missing: %v", err)
	}
}
