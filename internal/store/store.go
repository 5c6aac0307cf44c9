// Package store persists plan runs, assessment attempts, and progress
// snapshots in a local SQLite database.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/athiq-ahmed/certprep/internal/assessment"
	"github.com/athiq-ahmed/certprep/internal/progress"
	"github.com/athiq-ahmed/certprep/internal/studyplan"
)

const schema = `
CREATE TABLE IF NOT EXISTS plan_runs (
    id            INTEGER PRIMARY KEY AUTOINCREMENT,
    exam          TEXT    NOT NULL,
    total_periods INTEGER NOT NULL,
    period_length INTEGER NOT NULL,
    total_units   INTEGER NOT NULL,
    tasks         TEXT    NOT NULL,
    created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_plan_runs_exam ON plan_runs(exam, created_at);

CREATE TABLE IF NOT EXISTS assessment_attempts (
    id            TEXT    PRIMARY KEY,
    exam          TEXT    NOT NULL,
    score_pct     REAL    NOT NULL,
    passed        INTEGER NOT NULL,
    correct       INTEGER NOT NULL,
    total         INTEGER NOT NULL,
    domain_scores TEXT    NOT NULL,
    weak_domains  TEXT    NOT NULL,
    created_at    INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_attempts_exam ON assessment_attempts(exam, created_at);

CREATE TABLE IF NOT EXISTS progress_snapshots (
    id              INTEGER PRIMARY KEY AUTOINCREMENT,
    exam            TEXT    NOT NULL,
    periods_elapsed INTEGER NOT NULL,
    total_periods   INTEGER NOT NULL,
    units_completed INTEGER NOT NULL,
    units_planned   INTEGER NOT NULL,
    domains         TEXT    NOT NULL,
    created_at      INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_snapshots_exam ON progress_snapshots(exam, created_at);
`

// Store is a SQLite-backed history store.
type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and bootstraps
// the schema.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	dsn := filepath.Clean(path) + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("bootstrap schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// PlanRecord is a persisted study plan run.
type PlanRecord struct {
	ID           int64
	Exam         string
	TotalPeriods int
	PeriodLength int
	TotalUnits   int
	Tasks        []studyplan.Task
	CreatedAt    time.Time
}

// AttemptRecord is a persisted assessment attempt with its result.
type AttemptRecord struct {
	ID           string
	Exam         string
	ScorePct     float64
	Passed       bool
	Correct      int
	Total        int
	DomainScores map[string]float64
	WeakDomains  []string
	CreatedAt    time.Time
}

// SnapshotRecord is a persisted progress snapshot.
type SnapshotRecord struct {
	ID               int64
	Exam             string
	PeriodsElapsed   int
	TotalPeriods     int
	UnitsCompleted   int
	UnitsPlanned     int
	DomainCompletion map[string]float64
	CreatedAt        time.Time
}

// RecordPlan persists a generated plan and returns its row id.
func (s *Store) RecordPlan(ctx context.Context, p *studyplan.Plan) (int64, error) {
	if p == nil {
		return 0, fmt.Errorf("plan is required")
	}
	tasks, err := json.Marshal(p.Tasks)
	if err != nil {
		return 0, fmt.Errorf("encode tasks: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO plan_runs (exam, total_periods, period_length, total_units, tasks, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.Exam, p.TotalPeriods, p.PeriodLength, p.TotalUnits, string(tasks), toMillis(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("insert plan run: %w", err)
	}
	return res.LastInsertId()
}

// RecordAttempt persists an assessment and its evaluated result.
func (s *Store) RecordAttempt(ctx context.Context, a *assessment.Assessment, r *assessment.Result) error {
	if a == nil || r == nil {
		return fmt.Errorf("assessment and result are required")
	}
	scores, err := json.Marshal(r.DomainScores)
	if err != nil {
		return fmt.Errorf("encode domain scores: %w", err)
	}
	weak, err := json.Marshal(r.WeakDomains)
	if err != nil {
		return fmt.Errorf("encode weak domains: %w", err)
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO assessment_attempts (id, exam, score_pct, passed, correct, total, domain_scores, weak_domains, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID, a.Exam, r.ScorePct, boolToInt(r.Passed), r.Correct, r.Total,
		string(scores), string(weak), toMillis(time.Now()))
	if err != nil {
		return fmt.Errorf("insert attempt: %w", err)
	}
	return nil
}

// RecordSnapshot persists a progress snapshot and returns its row id.
func (s *Store) RecordSnapshot(ctx context.Context, snap *progress.Snapshot) (int64, error) {
	if snap == nil {
		return 0, fmt.Errorf("snapshot is required")
	}
	domains, err := json.Marshal(snap.DomainCompletion)
	if err != nil {
		return 0, fmt.Errorf("encode domain completion: %w", err)
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO progress_snapshots (exam, periods_elapsed, total_periods, units_completed, units_planned, domains, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		snap.Exam, snap.PeriodsElapsed, snap.TotalPeriods, snap.UnitsCompleted,
		snap.UnitsPlanned, string(domains), toMillis(time.Now()))
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	return res.LastInsertId()
}

// PlanHistory returns the most recent plan runs for an exam, newest first.
func (s *Store) PlanHistory(ctx context.Context, exam string, limit int) ([]PlanRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exam, total_periods, period_length, total_units, tasks, created_at
		 FROM plan_runs WHERE exam = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		exam, limit)
	if err != nil {
		return nil, fmt.Errorf("query plan runs: %w", err)
	}
	defer rows.Close()

	var out []PlanRecord
	for rows.Next() {
		var rec PlanRecord
		var tasks string
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Exam, &rec.TotalPeriods, &rec.PeriodLength,
			&rec.TotalUnits, &tasks, &created); err != nil {
			return nil, fmt.Errorf("scan plan run: %w", err)
		}
		if err := json.Unmarshal([]byte(tasks), &rec.Tasks); err != nil {
			return nil, fmt.Errorf("decode tasks: %w", err)
		}
		rec.CreatedAt = fromMillis(created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// AttemptHistory returns the most recent assessment attempts for an exam,
// newest first.
func (s *Store) AttemptHistory(ctx context.Context, exam string, limit int) ([]AttemptRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exam, score_pct, passed, correct, total, domain_scores, weak_domains, created_at
		 FROM assessment_attempts WHERE exam = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		exam, limit)
	if err != nil {
		return nil, fmt.Errorf("query attempts: %w", err)
	}
	defer rows.Close()

	var out []AttemptRecord
	for rows.Next() {
		var rec AttemptRecord
		var passed int
		var scores, weak string
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Exam, &rec.ScorePct, &passed, &rec.Correct,
			&rec.Total, &scores, &weak, &created); err != nil {
			return nil, fmt.Errorf("scan attempt: %w", err)
		}
		if err := json.Unmarshal([]byte(scores), &rec.DomainScores); err != nil {
			return nil, fmt.Errorf("decode domain scores: %w", err)
		}
		if err := json.Unmarshal([]byte(weak), &rec.WeakDomains); err != nil {
			return nil, fmt.Errorf("decode weak domains: %w", err)
		}
		rec.Passed = passed != 0
		rec.CreatedAt = fromMillis(created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SnapshotHistory returns the most recent progress snapshots for an exam,
// newest first.
func (s *Store) SnapshotHistory(ctx context.Context, exam string, limit int) ([]SnapshotRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, exam, periods_elapsed, total_periods, units_completed, units_planned, domains, created_at
		 FROM progress_snapshots WHERE exam = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		exam, limit)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var out []SnapshotRecord
	for rows.Next() {
		var rec SnapshotRecord
		var domains string
		var created int64
		if err := rows.Scan(&rec.ID, &rec.Exam, &rec.PeriodsElapsed, &rec.TotalPeriods,
			&rec.UnitsCompleted, &rec.UnitsPlanned, &domains, &created); err != nil {
			return nil, fmt.Errorf("scan snapshot: %w", err)
		}
		if err := json.Unmarshal([]byte(domains), &rec.DomainCompletion); err != nil {
			return nil, fmt.Errorf("decode domain completion: %w", err)
		}
		rec.CreatedAt = fromMillis(created)
		out = append(out, rec)
	}
	return out, rows.Err()
}

// DefaultDBPath resolves the database file path in priority order:
// 1. CERTPREP_DB environment variable
// 2. $XDG_DATA_HOME/certprep/certprep.db
// 3. ~/.local/share/certprep/certprep.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("CERTPREP_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "certprep", "certprep.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
