package batch

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/FocuswithJustin/hebrewutils/core/errors"
	"github.com/FocuswithJustin/hebrewutils/core/sqlite"
	"github.com/FocuswithJustin/hebrewutils/internal/logging"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		source     TEXT NOT NULL,
		created_at INTEGER NOT NULL, -- unix nanoseconds
		pairs      INTEGER NOT NULL,
		failed     INTEGER NOT NULL,
		gaps       INTEGER NOT NULL,
		blake3     TEXT NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS entries (
		run_id    TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
		idx       INTEGER NOT NULL,
		label     TEXT NOT NULL,
		reference TEXT NOT NULL,
		billet    TEXT NOT NULL,
		result    TEXT NOT NULL,
		reasons   TEXT NOT NULL,
		gaps      TEXT NOT NULL,
		report    TEXT NOT NULL,
		error     TEXT NOT NULL,
		blake3    TEXT NOT NULL,
		PRIMARY KEY (run_id, idx)
	)`,
}

// Store keeps batch reports in a SQLite database.
type Store struct {
	db *sql.DB
}

// OpenStore opens or creates the database at path.
func OpenStore(path string) (*Store, error) {
	db, err := sqlite.Open(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	if err := sqlite.Migrate(db, schema...); err != nil {
		db.Close()
		return nil, err
	}
	return &Store{db: db}, nil
}

// OpenStoreReadOnly opens an existing database for listing and loading runs.
// Save fails on the returned store.
func OpenStoreReadOnly(path string) (*Store, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return nil, errors.NewIO("open", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts r and its entries in one transaction.
func (s *Store) Save(ctx context.Context, r *Report) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, source, created_at, pairs, failed, gaps, blake3) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.RunID, r.Source, r.CreatedAt.UnixNano(), r.Pairs, r.Failed, r.Gaps, r.Digest)
	if err != nil {
		return errors.Wrapf(err, "save run %s", r.RunID)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (run_id, idx, label, reference, billet, result, reasons, gaps, report, error, blake3)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, e := range r.Entries {
		reasons, err := json.Marshal(e.Reasons)
		if err != nil {
			return err
		}
		gaps, err := json.Marshal(e.Gaps)
		if err != nil {
			return err
		}
		_, err = stmt.ExecContext(ctx, r.RunID, e.Index, e.Label, e.Reference, e.Billet,
			e.Result, string(reasons), string(gaps), e.Report, e.Error, e.Digest)
		if err != nil {
			return errors.Wrapf(err, "save entry %d of run %s", e.Index, r.RunID)
		}
	}
	if err := tx.Commit(); err != nil {
		return err
	}
	logging.DebugContext(logging.WithRunID(ctx, r.RunID), "run saved", "entries", len(r.Entries))
	return nil
}

// Load reads the run with the given id, entries in order.
func (s *Store) Load(ctx context.Context, id string) (*Report, error) {
	var (
		r       Report
		created int64
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, source, created_at, pairs, failed, gaps, blake3 FROM runs WHERE id = ?`, id).
		Scan(&r.RunID, &r.Source, &created, &r.Pairs, &r.Failed, &r.Gaps, &r.Digest)
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFound("run", id)
	}
	if err != nil {
		return nil, err
	}
	r.CreatedAt = time.Unix(0, created).UTC()

	rows, err := s.db.QueryContext(ctx,
		`SELECT idx, label, reference, billet, result, reasons, gaps, report, error, blake3
		 FROM entries WHERE run_id = ? ORDER BY idx`, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			e             Entry
			reasons, gaps string
		)
		if err := rows.Scan(&e.Index, &e.Label, &e.Reference, &e.Billet, &e.Result,
			&reasons, &gaps, &e.Report, &e.Error, &e.Digest); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(reasons), &e.Reasons); err != nil {
			return nil, errors.NewParse("run", id, e.Index, err.Error())
		}
		if err := json.Unmarshal([]byte(gaps), &e.Gaps); err != nil {
			return nil, errors.NewParse("run", id, e.Index, err.Error())
		}
		r.Entries = append(r.Entries, e)
	}
	return &r, rows.Err()
}

// RunSummary is one row of the runs table.
type RunSummary struct {
	ID        string
	Source    string
	CreatedAt time.Time
	Pairs     int
	Failed    int
	Gaps      int
	Digest    string
}

// List returns every stored run, newest first.
func (s *Store) List(ctx context.Context) ([]RunSummary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source, created_at, pairs, failed, gaps, blake3 FROM runs ORDER BY created_at DESC, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []RunSummary
	for rows.Next() {
		var (
			rs      RunSummary
			created int64
		)
		if err := rows.Scan(&rs.ID, &rs.Source, &created, &rs.Pairs, &rs.Failed, &rs.Gaps, &rs.Digest); err != nil {
			return nil, err
		}
		rs.CreatedAt = time.Unix(0, created).UTC()
		out = append(out, rs)
	}
	return out, rows.Err()
}
