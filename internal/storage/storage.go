// Package storage opens the task store and chat log selected by configuration.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"chat-task-manager/config"
	chatrepo "chat-task-manager/internal/conversation/repository"
	chatmemory "chat-task-manager/internal/conversation/repository/memory"
	chatsqlite "chat-task-manager/internal/conversation/repository/sqlite"
	taskrepo "chat-task-manager/internal/task/repository"
	taskmemory "chat-task-manager/internal/task/repository/memory"
	tasksqlite "chat-task-manager/internal/task/repository/sqlite"
	"chat-task-manager/pkg/log"
)

// MemoryPath opens SQLite without touching disk.
const MemoryPath = ":memory:"

// Stores bundles the repositories one process works against.
type Stores struct {
	Tasks taskrepo.Repository
	Chat  chatrepo.Repository

	db *sql.DB
}

// Open builds the stores for cfg.Driver and loads cfg.SeedFile into the task store when set.
// seedUser owns fixture tasks that name no user.
func Open(ctx context.Context, cfg config.StoreConfig, seedUser string, l log.Logger) (*Stores, error) {
	var s *Stores
	switch cfg.Driver {
	case config.StoreDriverMemory:
		s = &Stores{
			Tasks: taskmemory.New(l),
			Chat:  chatmemory.New(),
		}
	case config.StoreDriverSQLite, "":
		db, err := OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		s = &Stores{
			Tasks: tasksqlite.New(db, l),
			Chat:  chatsqlite.New(db, l),
			db:    db,
		}
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", cfg.Driver)
	}

	if cfg.SeedFile != "" {
		n, err := taskrepo.LoadSeedFile(ctx, s.Tasks, cfg.SeedFile, seedUser)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("storage: seed %s: %w", cfg.SeedFile, err)
		}
		l.Infof(ctx, "storage: seeded %d tasks from %s", n, cfg.SeedFile)
	}
	return s, nil
}

// Ping checks the database is reachable. The memory driver is always ready.
func (s *Stores) Ping(ctx context.Context) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.PingContext(ctx)
}

// Close releases the database handle, if any.
func (s *Stores) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// connPragmas are applied to every connection the pool opens.
var connPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"foreign_keys(1)",
}

// dsn appends connPragmas as modernc.org/sqlite _pragma parameters.
func dsn(path string) string {
	params := make([]string, 0, len(connPragmas))
	for _, p := range connPragmas {
		params = append(params, "_pragma="+p)
	}
	return path + "?" + strings.Join(params, "&")
}

// OpenSQLite opens the database at path, applies connection pragmas and
// creates the tasks and chat_messages tables.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		path = MemoryPath
	}
	if path != MemoryPath {
		if dir := filepath.Dir(path); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("creating db directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// Each :memory: connection is its own database.
	if path == MemoryPath {
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	if err := tasksqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	if err := chatsqlite.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
