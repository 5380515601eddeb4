/*
Package cache persists the glycan builder's IsomerStore, SubsetStore
and GlycanMassStore to a SQLite database, keyed by a fingerprint of the
envelope and candidate sugar set that produced them.

This is a read-through cache in front of the builder (§4.4): a miss, an
open error, or a write error is never a correctness problem, only a
performance one — the caller always has the fallback of running the
builder fresh. Failures are logged and treated as a miss rather than
propagated, the same posture the teacher's synthesis package takes
with its in-memory SQLite scratch database.
*/
package cache

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // CGO-less sqlite driver

	"github.com/ruizhang84/multiglycan-go/glycan"
	"github.com/ruizhang84/multiglycan-go/logging"
)

const schema = `
CREATE TABLE IF NOT EXISTS isomer (
	fingerprint TEXT NOT NULL,
	name        TEXT NOT NULL,
	id          TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS subset (
	fingerprint TEXT NOT NULL,
	id          TEXT NOT NULL,
	ancestor_id TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS mass (
	fingerprint TEXT NOT NULL,
	id          TEXT NOT NULL,
	mass        REAL NOT NULL
);
CREATE INDEX IF NOT EXISTS isomer_fp ON isomer(fingerprint);
CREATE INDEX IF NOT EXISTS subset_fp ON subset(fingerprint);
CREATE INDEX IF NOT EXISTS mass_fp ON mass(fingerprint);
`

type isomerRow struct {
	Name string `db:"name"`
	ID   string `db:"id"`
}

type subsetRow struct {
	ID         string `db:"id"`
	AncestorID string `db:"ancestor_id"`
}

type massRow struct {
	ID   string  `db:"id"`
	Mass float64 `db:"mass"`
}

// Store wraps a SQLite database holding one or more cached builds.
type Store struct {
	db *sqlx.DB
}

// Open connects to (and creates, if absent) the SQLite database at path.
func Open(path string) (*Store, error) {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("cache: open %s: %w", path, err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Load returns the cached stores for fingerprint, or ok=false on a
// miss (including any query error, which is folded into a miss since
// the caller always has the builder fallback).
func (s *Store) Load(fingerprint string) (isomer, subset *glycan.Store, massStore *glycan.MassStore, ok bool) {
	var isomerRows []isomerRow
	if err := s.db.Select(&isomerRows, `SELECT name, id FROM isomer WHERE fingerprint = ?`, fingerprint); err != nil {
		logging.CacheMiss(fingerprint, err)
		return nil, nil, nil, false
	}
	if len(isomerRows) == 0 {
		logging.CacheMiss(fingerprint, nil)
		return nil, nil, nil, false
	}
	var subsetRows []subsetRow
	if err := s.db.Select(&subsetRows, `SELECT id, ancestor_id FROM subset WHERE fingerprint = ?`, fingerprint); err != nil {
		logging.CacheMiss(fingerprint, err)
		return nil, nil, nil, false
	}
	var massRows []massRow
	if err := s.db.Select(&massRows, `SELECT id, mass FROM mass WHERE fingerprint = ?`, fingerprint); err != nil {
		logging.CacheMiss(fingerprint, err)
		return nil, nil, nil, false
	}
	logging.CacheHit(fingerprint)

	isomerStore := glycan.NewStore()
	for _, r := range isomerRows {
		isomerStore.Add(r.Name, r.ID)
	}
	subsetStore := glycan.NewStore()
	for _, r := range subsetRows {
		subsetStore.Add(r.ID, r.AncestorID)
	}
	ms := glycan.NewMassStore()
	for _, r := range massRows {
		ms.Add(r.ID, r.Mass)
	}
	return isomerStore, subsetStore, ms, true
}

// Save persists a freshly-built set of stores under fingerprint,
// replacing any entry already cached for it.
func (s *Store) Save(fingerprint string, isomer, subset *glycan.Store, massStore *glycan.MassStore) error {
	tx, err := s.db.Beginx()
	if err != nil {
		return fmt.Errorf("cache: begin: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM isomer WHERE fingerprint = ?`, fingerprint); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM subset WHERE fingerprint = ?`, fingerprint); err != nil {
		return err
	}
	if _, err := tx.Exec(`DELETE FROM mass WHERE fingerprint = ?`, fingerprint); err != nil {
		return err
	}

	for _, name := range isomer.Keys() {
		for id := range isomer.Query(name) {
			if _, err := tx.Exec(`INSERT INTO isomer(fingerprint, name, id) VALUES (?, ?, ?)`, fingerprint, name, id); err != nil {
				return err
			}
		}
	}
	for _, id := range subset.Keys() {
		for ancestorID := range subset.Query(id) {
			if _, err := tx.Exec(`INSERT INTO subset(fingerprint, id, ancestor_id) VALUES (?, ?, ?)`, fingerprint, id, ancestorID); err != nil {
				return err
			}
		}
	}
	for _, id := range massStore.Keys() {
		for _, m := range massStore.Query(id) {
			if _, err := tx.Exec(`INSERT INTO mass(fingerprint, id, mass) VALUES (?, ?, ?)`, fingerprint, id, m); err != nil {
				return err
			}
		}
	}

	return tx.Commit()
}
