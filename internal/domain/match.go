package domain

import (
	"context"
	"time"

	"go-culturematch-backend/internal/matching"
)

// MatchRecord is a persisted scoring outcome for one (candidate, job)
// pair. JobID is nil for profile-only assessments.
type MatchRecord struct {
	ID              string               `json:"id"`
	CandidateUserID string               `json:"candidate_user_id"`
	JobID           *int64               `json:"job_id,omitempty"`
	JobTitle        *string              `json:"job_title,omitempty"`
	Locale          string               `json:"locale"`
	Result          matching.MatchResult `json:"result"`
	CreatedAt       time.Time            `json:"created_at"`
}

// MatchFilter narrows match history queries and exports.
type MatchFilter struct {
	CandidateUserID string
	JobID           *int64
	MinOverallScore *float64
	Page            int
	PageSize        int
}

// MatchExportRequest selects format and filter for a match report.
type MatchExportRequest struct {
	Filter  MatchFilter `json:"filter"`
	Format  string      `json:"format"`  // "xlsx" (default) or "csv"
	Columns []string    `json:"columns"` // subset of MatchExportColumns, all when empty
}

// MatchExportColumns is the full set of exportable report columns.
var MatchExportColumns = []string{
	"candidate_user_id",
	"job_title",
	"overall_score",
	"harmony",
	"improvement",
	"service",
	"dedication",
	"consensus",
	"skills_match",
	"experience_match",
	"integration_timeline_days",
	"confidence",
	"created_at",
}

type MatchRepository interface {
	Create(ctx context.Context, record *MatchRecord) error
	GetByID(ctx context.Context, id string) (*MatchRecord, error)
	Fetch(ctx context.Context, filter MatchFilter) ([]MatchRecord, int64, error)
}

type MatchUsecase interface {
	// ScoreCandidate scores one candidate, optionally against one job,
	// persists the outcome and returns it.
	ScoreCandidate(ctx context.Context, userID string, jobID *int64, locale string) (*MatchRecord, error)

	// ScoreAgainstActiveJobs scores a candidate against every active
	// job with bounded parallelism and returns records ordered by
	// descending overall score.
	ScoreAgainstActiveJobs(ctx context.Context, userID string, locale string) ([]MatchRecord, error)

	// GetMatchHistory lists persisted results for the candidate.
	GetMatchHistory(ctx context.Context, userID string, page, pageSize int) ([]MatchRecord, int64, error)
}

type ReportUsecase interface {
	// ExportMatches renders persisted match results as a spreadsheet
	// and returns content plus a suggested filename.
	ExportMatches(ctx context.Context, req MatchExportRequest) ([]byte, string, error)
}
