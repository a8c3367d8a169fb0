package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"

	"benefits-engine/internal/model"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

var _ Store = (*SQLiteStore)(nil)

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

// createdAtLayout is fixed width so created_at sorts as text.
const createdAtLayout = "2006-01-02T15:04:05.000000000Z"

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS evaluations (
	id         TEXT PRIMARY KEY,
	request_id TEXT NOT NULL DEFAULT '',
	outcome    TEXT NOT NULL,
	eligible   INTEGER NOT NULL DEFAULT 0,
	response   TEXT NOT NULL,
	created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_evaluations_created_at ON evaluations(created_at);
CREATE INDEX IF NOT EXISTS idx_evaluations_request_id ON evaluations(request_id);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func countEligible(results []model.Result) int {
	n := 0
	for _, r := range results {
		if r.Eligible.IsYes() {
			n++
		}
	}
	return n
}

func (s *SQLiteStore) SaveEvaluation(ctx context.Context, resp *model.EvaluationResponse) error {
	meta := resp.EvaluationMetadata
	if meta.EvaluationID == "" {
		return eris.New("sqlite: evaluation id is required")
	}
	body, err := json.Marshal(resp)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal evaluation")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO evaluations (id, request_id, outcome, eligible, response, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		meta.EvaluationID, meta.RequestID, meta.EvaluationOutcome,
		countEligible(resp.EvaluationResult.Results), string(body),
		time.Now().UTC().Format(createdAtLayout),
	)
	return eris.Wrapf(err, "sqlite: insert evaluation %s", meta.EvaluationID)
}

func (s *SQLiteStore) GetEvaluation(ctx context.Context, id string) (*model.EvaluationResponse, error) {
	var body string
	err := s.db.QueryRowContext(ctx, `SELECT response FROM evaluations WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, eris.Wrapf(ErrNotFound, "sqlite: get evaluation %s", id)
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get evaluation %s", id)
	}

	var resp model.EvaluationResponse
	if err := json.Unmarshal([]byte(body), &resp); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal evaluation %s", id)
	}
	return &resp, nil
}

// ListEvaluations returns the most recent evaluations first.
func (s *SQLiteStore) ListEvaluations(ctx context.Context, limit int) ([]model.EvaluationSummary, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, request_id, outcome, eligible, created_at FROM evaluations
		 ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list evaluations")
	}
	defer rows.Close()

	out := []model.EvaluationSummary{}
	for rows.Next() {
		var e model.EvaluationSummary
		if err := rows.Scan(&e.EvaluationID, &e.RequestID, &e.Outcome, &e.Eligible, &e.CreatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan evaluation")
		}
		out = append(out, e)
	}
	return out, eris.Wrap(rows.Err(), "sqlite: list evaluations iterate")
}
