// Package storage provides SQLite-based persistence for scenes.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/sigep/internal/core"
	"github.com/vovakirdan/sigep/internal/geom"
	"github.com/vovakirdan/sigep/internal/scene"
)

// ErrNotFound is returned when a scene name is not stored.
var ErrNotFound = errors.New("storage: scene not found")

// Store manages the SQLite database connection for scene persistence.
type Store struct {
	db *sql.DB
}

// SceneEntry summarizes a stored scene.
type SceneEntry struct {
	Name      string
	Shapes    int
	Probes    int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		PRAGMA foreign_keys = ON;

		CREATE TABLE IF NOT EXISTS scenes (
			name TEXT PRIMARY KEY,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS shapes (
			scene TEXT NOT NULL REFERENCES scenes(name) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			name TEXT NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			w REAL NOT NULL,
			h REAL NOT NULL,
			rotation REAL NOT NULL DEFAULT 0,
			color TEXT NOT NULL DEFAULT '',
			PRIMARY KEY (scene, idx)
		);

		CREATE TABLE IF NOT EXISTS probes (
			scene TEXT NOT NULL REFERENCES scenes(name) ON DELETE CASCADE,
			idx INTEGER NOT NULL,
			x REAL NOT NULL,
			y REAL NOT NULL,
			PRIMARY KEY (scene, idx)
		);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveScene stores sc under its name, replacing any previous version.
func (s *Store) SaveScene(sc scene.Scene) error {
	if sc.Name == "" {
		return fmt.Errorf("storage: %w: scene has no name", geom.ErrInvalidArgument)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	// foreign_keys is per connection, so children are deleted explicitly.
	for _, q := range []string{
		"DELETE FROM shapes WHERE scene = ?",
		"DELETE FROM probes WHERE scene = ?",
		"DELETE FROM scenes WHERE name = ?",
	} {
		if _, err := tx.Exec(q, sc.Name); err != nil {
			return fmt.Errorf("storage: cannot replace scene: %w", err)
		}
	}

	if _, err := tx.Exec("INSERT INTO scenes (name) VALUES (?)", sc.Name); err != nil {
		return fmt.Errorf("storage: cannot save scene: %w", err)
	}

	for i, it := range sc.Items {
		x, y, w, h := it.Shape.AsTuple()
		_, err := tx.Exec(
			`INSERT INTO shapes (scene, idx, name, x, y, w, h, rotation, color)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sc.Name, i, it.Name, x, y, w, h, it.Shape.Rotation(), it.Color.String(),
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save shape %q: %w", it.Name, err)
		}
	}

	for i, p := range sc.Probes {
		_, err := tx.Exec(
			"INSERT INTO probes (scene, idx, x, y) VALUES (?, ?, ?, ?)",
			sc.Name, i, p.X, p.Y,
		)
		if err != nil {
			return fmt.Errorf("storage: cannot save probe %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit scene: %w", err)
	}
	return nil
}

// LoadScene reads the named scene. Returns ErrNotFound if it is not stored.
func (s *Store) LoadScene(name string) (scene.Scene, error) {
	var exists int
	err := s.db.QueryRow("SELECT COUNT(*) FROM scenes WHERE name = ?", name).Scan(&exists)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("storage: cannot query scene: %w", err)
	}
	if exists == 0 {
		return scene.Scene{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	items, err := s.loadShapes(name)
	if err != nil {
		return scene.Scene{}, err
	}
	probes, err := s.loadProbes(name)
	if err != nil {
		return scene.Scene{}, err
	}

	sc, err := scene.New(name, items, probes)
	if err != nil {
		return scene.Scene{}, fmt.Errorf("storage: stored scene %q is invalid: %w", name, err)
	}
	return sc, nil
}

func (s *Store) loadShapes(name string) ([]scene.Item, error) {
	rows, err := s.db.Query(
		`SELECT name, x, y, w, h, rotation, color
		 FROM shapes
		 WHERE scene = ?
		 ORDER BY idx`,
		name,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query shapes: %w", err)
	}
	defer rows.Close()

	var items []scene.Item
	for rows.Next() {
		var (
			it         scene.Item
			x, y, w, h float64
			rotation   float64
			color      string
		)
		if err := rows.Scan(&it.Name, &x, &y, &w, &h, &rotation, &color); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// an unrotated shape is always loaded as a plain Rect
		if rotation == 0 {
			it.Shape = geom.NewRect(x, y, w, h)
		} else {
			it.Shape = geom.NewRotatedRect(x, y, w, h, rotation)
		}
		if c, ok := core.ParseColor(color); ok {
			it.Color = c
		}
		items = append(items, it)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return items, nil
}

func (s *Store) loadProbes(name string) ([]geom.Vector, error) {
	rows, err := s.db.Query("SELECT x, y FROM probes WHERE scene = ? ORDER BY idx", name)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query probes: %w", err)
	}
	defer rows.Close()

	var probes []geom.Vector
	for rows.Next() {
		var p geom.Vector
		if err := rows.Scan(&p.X, &p.Y); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		probes = append(probes, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return probes, nil
}

// ListScenes returns a summary of every stored scene, sorted by name.
func (s *Store) ListScenes() ([]SceneEntry, error) {
	rows, err := s.db.Query(
		`SELECT sc.name,
		        (SELECT COUNT(*) FROM shapes WHERE scene = sc.name),
		        (SELECT COUNT(*) FROM probes WHERE scene = sc.name),
		        sc.updated_at
		 FROM scenes sc
		 ORDER BY sc.name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scenes: %w", err)
	}
	defer rows.Close()

	var entries []SceneEntry
	for rows.Next() {
		var e SceneEntry
		var updatedAt any
		if err := rows.Scan(&e.Name, &e.Shapes, &e.Probes, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}

// DeleteScene removes the named scene. Returns ErrNotFound if it is not stored.
func (s *Store) DeleteScene(name string) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if _, err := tx.Exec("DELETE FROM shapes WHERE scene = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete shapes: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM probes WHERE scene = ?", name); err != nil {
		return fmt.Errorf("storage: cannot delete probes: %w", err)
	}
	res, err := tx.Exec("DELETE FROM scenes WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete scene: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot count deleted rows: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit delete: %w", err)
	}
	return nil
}
