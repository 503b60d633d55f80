package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/Apurva9997/planning-poker/internal/domain"
)

// SQLite persists rooms in a single-file database, one row per code.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite prepares the database at path and ensures the schema exists.
func OpenSQLite(path string) (*SQLite, error) {
	if path == "" {
		return nil, errors.New("sqlite path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("ensure db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec(`PRAGMA busy_timeout = 5000;`); err != nil {
		db.Close()
		return nil, fmt.Errorf("configure sqlite: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS rooms (
		code TEXT PRIMARY KEY,
		document TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLite{db: db}, nil
}

func (s *SQLite) Load(ctx context.Context, code string) (*domain.Room, error) {
	var doc string
	err := s.db.QueryRowContext(ctx, `SELECT document FROM rooms WHERE code = ?`, code).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: load room %s: %v", domain.ErrStorage, code, err)
	}
	var room domain.Room
	if err := json.Unmarshal([]byte(doc), &room); err != nil {
		return nil, fmt.Errorf("%w: decode room %s: %v", domain.ErrStorage, code, err)
	}
	return &room, nil
}

func (s *SQLite) Save(ctx context.Context, code string, room *domain.Room) error {
	doc, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("%w: encode room %s: %v", domain.ErrStorage, code, err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO rooms (code, document, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(code) DO UPDATE SET document = excluded.document, updated_at = excluded.updated_at`,
		code, string(doc), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("%w: save room %s: %v", domain.ErrStorage, code, err)
	}
	return nil
}

func (s *SQLite) Delete(ctx context.Context, code string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE code = ?`, code); err != nil {
		return fmt.Errorf("%w: delete room %s: %v", domain.ErrStorage, code, err)
	}
	return nil
}

func (s *SQLite) Codes(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT code FROM rooms`)
	if err != nil {
		return nil, fmt.Errorf("%w: list rooms: %v", domain.ErrStorage, err)
	}
	defer rows.Close()

	var codes []string
	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("%w: list rooms: %v", domain.ErrStorage, err)
		}
		codes = append(codes, code)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: list rooms: %v", domain.ErrStorage, err)
	}
	return codes, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}
