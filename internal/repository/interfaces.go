package repository

import (
	"context"
	"time"

	"github.com/alexanderramin/telos/internal/domain"
)

// AnalysisLog is one stored analysis summary. The engine itself persists
// nothing; this is host-side bookkeeping for the history command.
type AnalysisLog struct {
	ID          string
	Text        string
	Confidence  float64
	Matches     int
	Suggestions []domain.Category
	LatencyMs   int64
	CreatedAt   time.Time
}

// AnalysisLogRepo stores completed analysis summaries.
type AnalysisLogRepo interface {
	Create(ctx context.Context, log *AnalysisLog) error
	GetByID(ctx context.Context, id string) (*AnalysisLog, error)
	ListRecent(ctx context.Context, limit int) ([]*AnalysisLog, error)
	Prune(ctx context.Context, keep int) error
}
