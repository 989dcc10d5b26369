package storage

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/welltrack/internal/migration"
	"github.com/julianstephens/welltrack/migrations"
)

// SQLiteStore is the durable provider: a single kv table, fronted by an
// in-memory cache. Writes hit the cache immediately and are flushed to the
// database by a background goroutine, so callers never wait on disk
// (matching the fire-and-forget commit semantics of the preference store).
type SQLiteStore struct {
	path string
	db   *sql.DB

	mu       sync.Mutex
	cache    map[string]string
	pending  []Op
	flushing bool
	flushErr error
	kick     chan struct{}
	done     chan struct{}
	idle     *sync.Cond
}

func NewSQLiteStore(path string) *SQLiteStore {
	s := &SQLiteStore{
		path: path,
	}
	s.idle = sync.NewCond(&s.mu)
	return s
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.runMigrations(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return s.start()
}

func (s *SQLiteStore) Load() error {
	if s.db != nil {
		return nil
	}

	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'welltrack init' first")
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if err := s.validateSchemaVersion(); err != nil {
		return err
	}

	return s.start()
}

// start populates the cache and launches the flush goroutine.
func (s *SQLiteStore) start() error {
	rows, err := s.db.Query("SELECT key, value FROM kv")
	if err != nil {
		return fmt.Errorf("failed to read kv table: %w", err)
	}
	defer rows.Close()

	cache := make(map[string]string)
	for rows.Next() {
		var k, v string
		if err := rows.Scan(&k, &v); err != nil {
			return fmt.Errorf("failed to scan kv row: %w", err)
		}
		cache[k] = v
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to read kv table: %w", err)
	}

	s.mu.Lock()
	s.cache = cache
	s.pending = nil
	s.kick = make(chan struct{}, 1)
	s.done = make(chan struct{})
	s.mu.Unlock()

	go s.flushLoop()
	return nil
}

func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	if s.cache == nil {
		s.mu.Unlock()
		if s.db != nil {
			return s.db.Close()
		}
		return nil
	}
	s.mu.Unlock()

	if err := s.Flush(); err != nil {
		_ = s.db.Close()
		return err
	}

	close(s.kick)
	<-s.done

	s.mu.Lock()
	s.cache = nil
	s.mu.Unlock()

	return s.db.Close()
}

func (s *SQLiteStore) flushLoop() {
	defer close(s.done)
	for range s.kick {
		s.flushPending()
	}
	// Drain anything enqueued between the last flush and close
	s.flushPending()
}

func (s *SQLiteStore) flushPending() {
	s.mu.Lock()
	ops := s.pending
	s.pending = nil
	s.flushing = len(ops) > 0
	s.mu.Unlock()

	if len(ops) == 0 {
		return
	}

	err := s.writeOps(ops)

	s.mu.Lock()
	if err != nil && s.flushErr == nil {
		s.flushErr = err
	}
	s.flushing = false
	s.idle.Broadcast()
	s.mu.Unlock()
}

func (s *SQLiteStore) writeOps(ops []Op) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin flush transaction: %w", err)
	}

	for _, op := range ops {
		if op.Remove {
			_, err = tx.Exec("DELETE FROM kv WHERE key = ?", op.Key)
		} else {
			_, err = tx.Exec("INSERT INTO kv (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", op.Key, op.Value)
		}
		if err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to flush key %q: %w", op.Key, err)
		}
	}

	return tx.Commit()
}

// enqueue records ops in the cache and hands them to the flusher.
// The caller must not hold s.mu.
func (s *SQLiteStore) enqueue(ops []Op) error {
	s.mu.Lock()
	if s.cache == nil {
		s.mu.Unlock()
		return fmt.Errorf("storage not loaded")
	}
	if err := s.flushErr; err != nil {
		s.flushErr = nil
		s.mu.Unlock()
		return err
	}
	for _, op := range ops {
		if op.Remove {
			delete(s.cache, op.Key)
		} else {
			s.cache[op.Key] = op.Value
		}
	}
	s.pending = append(s.pending, ops...)
	s.mu.Unlock()

	select {
	case s.kick <- struct{}{}:
	default:
	}
	return nil
}

func (s *SQLiteStore) Get(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return "", false, fmt.Errorf("storage not loaded")
	}
	v, ok := s.cache[key]
	return v, ok, nil
}

func (s *SQLiteStore) Set(key, value string) error {
	return s.enqueue([]Op{SetOp(key, value)})
}

func (s *SQLiteStore) Remove(key string) error {
	return s.enqueue([]Op{RemoveOp(key)})
}

func (s *SQLiteStore) Batch(ops []Op) error {
	if len(ops) == 0 {
		return nil
	}
	return s.enqueue(ops)
}

func (s *SQLiteStore) Keys(prefix string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cache == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	keys := make([]string, 0, len(s.cache))
	for k := range s.cache {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

// Flush blocks until every enqueued write has been committed.
func (s *SQLiteStore) Flush() error {
	select {
	case s.kick <- struct{}{}:
	default:
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for len(s.pending) > 0 || s.flushing {
		s.idle.Wait()
	}
	err := s.flushErr
	s.flushErr = nil
	return err
}

func (s *SQLiteStore) runMigrations() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	_, err = runner.ApplyMigrations(func(msg string) {
		fmt.Println(msg)
	})
	return err
}

func (s *SQLiteStore) validateSchemaVersion() error {
	subFS, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		return fmt.Errorf("failed to access sqlite migrations: %w", err)
	}

	runner := migration.NewRunner(s.db, subFS)
	return runner.ValidateVersion()
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}
