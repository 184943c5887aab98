package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/telos/internal/domain"
)

// SQLiteAnalysisLogRepo implements AnalysisLogRepo using a SQLite database.
type SQLiteAnalysisLogRepo struct {
	db *sql.DB
}

// NewSQLiteAnalysisLogRepo creates a new SQLiteAnalysisLogRepo.
func NewSQLiteAnalysisLogRepo(db *sql.DB) *SQLiteAnalysisLogRepo {
	return &SQLiteAnalysisLogRepo{db: db}
}

func (r *SQLiteAnalysisLogRepo) Create(ctx context.Context, log *AnalysisLog) error {
	query := `INSERT INTO analysis_logs (id, text, confidence, matches, suggestions, latency_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.Text,
		log.Confidence,
		log.Matches,
		joinCategories(log.Suggestions),
		log.LatencyMs,
		log.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting analysis log: %w", err)
	}
	return nil
}

func (r *SQLiteAnalysisLogRepo) GetByID(ctx context.Context, id string) (*AnalysisLog, error) {
	query := `SELECT id, text, confidence, matches, suggestions, latency_ms, created_at
		FROM analysis_logs WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return scanLog(row)
}

func (r *SQLiteAnalysisLogRepo) ListRecent(ctx context.Context, limit int) ([]*AnalysisLog, error) {
	query := `SELECT id, text, confidence, matches, suggestions, latency_ms, created_at
		FROM analysis_logs ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent analyses: %w", err)
	}
	defer rows.Close()

	var logs []*AnalysisLog
	for rows.Next() {
		log, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, log)
	}
	return logs, rows.Err()
}

// Prune deletes all but the newest keep rows.
func (r *SQLiteAnalysisLogRepo) Prune(ctx context.Context, keep int) error {
	query := `DELETE FROM analysis_logs WHERE id NOT IN (
		SELECT id FROM analysis_logs ORDER BY created_at DESC, id LIMIT ?)`
	if _, err := r.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("pruning analysis logs: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLog(row rowScanner) (*AnalysisLog, error) {
	var log AnalysisLog
	var suggestions, createdAt string
	if err := row.Scan(&log.ID, &log.Text, &log.Confidence, &log.Matches, &suggestions, &log.LatencyMs, &createdAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("analysis log not found")
		}
		return nil, fmt.Errorf("scanning analysis log: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	log.CreatedAt = ts
	log.Suggestions = splitCategories(suggestions)
	return &log, nil
}

func joinCategories(cats []domain.Category) string {
	parts := make([]string, len(cats))
	for i, c := range cats {
		parts[i] = string(c)
	}
	return strings.Join(parts, ",")
}

func splitCategories(s string) []domain.Category {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	cats := make([]domain.Category, len(parts))
	for i, p := range parts {
		cats[i] = domain.Category(p)
	}
	return cats
}
