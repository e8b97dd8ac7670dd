// SPDX-License-Identifier: MIT

// Package store persists named bitmatrix graphs in SQLite.
//
// Each graph is one row: its packed payload as a BLOB, the size, both
// policies and the node labels as JSON. Loading rebuilds the Graph through
// bitmatrix.NewGraph, so stored policies are re-enforced on the way out.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fortio.org/safecast"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/katalvlaran/bitgraph/bitmatrix"
)

// ErrNotFound is returned when no graph has the requested name.
var ErrNotFound = errors.New("store: graph not found")

// ErrEmptyName is returned for a blank graph name.
var ErrEmptyName = errors.New("store: empty graph name")

// Entry describes a stored graph without loading its payload.
type Entry struct {
	ID        string
	Name      string
	Size      int
	Edges     int
	UpdatedAt time.Time
}

// Store implements graph persistence on a SQLite database.
type Store struct {
	db  *sql.DB
	log *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a zap logger (default: no-op).
func WithLogger(l *zap.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.log = l
		}
	}
}

// Open opens (creating if needed) the database at path and migrates it.
func Open(path string, opts ...Option) (*Store, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)

	s := &Store{db: db, log: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	s.log.Debug("store opened", zap.String("path", path))

	return s, nil
}

func (s *Store) migrate(ctx context.Context) error {
	schema := `
	CREATE TABLE IF NOT EXISTS graphs (
		name TEXT PRIMARY KEY,
		id TEXT NOT NULL UNIQUE,
		size INTEGER NOT NULL CHECK (size > 0),
		force_symmetry INTEGER NOT NULL DEFAULT 0,
		self_linking INTEGER NOT NULL DEFAULT 1,
		edges INTEGER NOT NULL DEFAULT 0,
		bits BLOB NOT NULL,
		names JSON,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := s.db.ExecContext(ctx, schema)

	return err
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts or replaces the graph stored under name. A graph keeps the
// ID it was first saved with.
func (s *Store) Save(ctx context.Context, name string, g *bitmatrix.Graph) (err error) {
	defer observe(opSave, time.Now(), &err)
	if name == "" {
		return ErrEmptyName
	}
	if g == nil {
		return fmt.Errorf("save %q: %w", name, bitmatrix.ErrNilMatrix)
	}

	var names []byte
	if labels := g.Names(); len(labels) > 0 {
		if names, err = json.Marshal(labels); err != nil {
			return fmt.Errorf("failed to marshal names: %w", err)
		}
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO graphs (name, id, size, force_symmetry, self_linking, edges, bits, names, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			size = excluded.size,
			force_symmetry = excluded.force_symmetry,
			self_linking = excluded.self_linking,
			edges = excluded.edges,
			bits = excluded.bits,
			names = excluded.names,
			updated_at = excluded.updated_at
	`, name, uuid.NewString(), g.Size(), g.ForceSymmetry(), g.SelfLinking(), g.Count(), g.Bytes(), nullableJSON(names), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("failed to save graph %q: %w", name, err)
	}
	s.log.Debug("graph saved", zap.String("name", name), zap.Int("size", g.Size()), zap.Int("edges", g.Count()))

	return nil
}

// Load rebuilds the graph stored under name.
func (s *Store) Load(ctx context.Context, name string) (_ *bitmatrix.Graph, err error) {
	defer observe(opLoad, time.Now(), &err)
	var (
		size64        int64
		forceSymmetry bool
		selfLinking   bool
		bits          []byte
		names         sql.NullString
	)
	err = s.db.QueryRowContext(ctx,
		`SELECT size, force_symmetry, self_linking, bits, names FROM graphs WHERE name = ?`, name,
	).Scan(&size64, &forceSymmetry, &selfLinking, &bits, &names)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load %q: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load graph %q: %w", name, err)
	}

	size, err := safecast.Conv[int](size64)
	if err != nil {
		return nil, fmt.Errorf("graph %q size %d: %w", name, size64, err)
	}

	opts := []bitmatrix.Option{
		bitmatrix.WithBuffer(bits),
		bitmatrix.WithForceSymmetry(forceSymmetry),
		bitmatrix.WithSelfLinking(selfLinking),
	}
	if names.Valid && names.String != "" {
		labels := make(map[int]string)
		if err = json.Unmarshal([]byte(names.String), &labels); err != nil {
			return nil, fmt.Errorf("graph %q names: %w", name, err)
		}
		opts = append(opts, bitmatrix.WithNames(labels))
	}

	g, err := bitmatrix.NewGraph(size, opts...)
	if err != nil {
		return nil, fmt.Errorf("graph %q: %w", name, err)
	}
	s.log.Debug("graph loaded", zap.String("name", name), zap.Int("size", size))

	return g, nil
}

// List returns every stored graph ordered by name.
func (s *Store) List(ctx context.Context) (_ []Entry, err error) {
	defer observe(opList, time.Now(), &err)
	rows, err := s.db.QueryContext(ctx, `SELECT id, name, size, edges, updated_at FROM graphs ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list graphs: %w", err)
	}
	defer rows.Close()

	var out []Entry
	for rows.Next() {
		var (
			e              Entry
			size64, edge64 int64
		)
		if err = rows.Scan(&e.ID, &e.Name, &size64, &edge64, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan graph row: %w", err)
		}
		if e.Size, err = safecast.Conv[int](size64); err != nil {
			return nil, fmt.Errorf("graph %q size: %w", e.Name, err)
		}
		if e.Edges, err = safecast.Conv[int](edge64); err != nil {
			return nil, fmt.Errorf("graph %q edges: %w", e.Name, err)
		}
		out = append(out, e)
	}

	return out, rows.Err()
}

// Delete removes the graph stored under name.
func (s *Store) Delete(ctx context.Context, name string) (err error) {
	defer observe(opDelete, time.Now(), &err)
	res, err := s.db.ExecContext(ctx, `DELETE FROM graphs WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("failed to delete graph %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete graph %q: %w", name, err)
	}
	if n == 0 {
		return fmt.Errorf("delete %q: %w", name, ErrNotFound)
	}
	s.log.Debug("graph deleted", zap.String("name", name))

	return nil
}

func nullableJSON(b []byte) any {
	if len(b) == 0 {
		return nil
	}

	return string(b)
}
