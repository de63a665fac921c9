package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go-culturematch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type matchRepo struct {
	db *pgxpool.Pool
}

func NewMatchRepository(db *pgxpool.Pool) domain.MatchRepository {
	return &matchRepo{db: db}
}

func (r *matchRepo) Create(ctx context.Context, record *domain.MatchRecord) error {
	query := `
		INSERT INTO match_results (
			id, candidate_user_id, job_id, job_title, locale,
			overall_score, harmony, improvement, service, dedication, consensus,
			skills_match, experience_match, integration_timeline_days,
			recommendations, confidence, prior_table_version, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)`

	res := record.Result
	_, err := r.db.Exec(ctx, query,
		record.ID, record.CandidateUserID, record.JobID, record.JobTitle, record.Locale,
		res.OverallScore,
		res.DimensionScores.Harmony, res.DimensionScores.Improvement,
		res.DimensionScores.Service, res.DimensionScores.Dedication, res.DimensionScores.Consensus,
		res.SkillsMatch, res.ExperienceMatch, res.IntegrationTimelineDays,
		pq.Array(res.Recommendations), res.Confidence, res.PriorTableVersion,
		record.CreatedAt,
	)
	return err
}

const matchColumns = `id, candidate_user_id, job_id, job_title, locale,
	overall_score, harmony, improvement, service, dedication, consensus,
	skills_match, experience_match, integration_timeline_days,
	recommendations, confidence, prior_table_version, created_at`

func (r *matchRepo) GetByID(ctx context.Context, id string) (*domain.MatchRecord, error) {
	query := `SELECT ` + matchColumns + ` FROM match_results WHERE id = $1`
	record, err := scanMatch(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return record, nil
}

func (r *matchRepo) Fetch(ctx context.Context, filter domain.MatchFilter) ([]domain.MatchRecord, int64, error) {
	where, args := buildMatchFilter(filter)

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	listQuery := fmt.Sprintf(`SELECT %s FROM match_results %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		matchColumns, where, len(args)+1, len(args)+2)
	listArgs := append(append([]interface{}{}, args...), pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(ctx, listQuery, listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var records []domain.MatchRecord
	for rows.Next() {
		record, err := scanMatch(rows)
		if err != nil {
			return nil, 0, err
		}
		records = append(records, *record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	countQuery := `SELECT COUNT(*) FROM match_results ` + where
	if err := r.db.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

func buildMatchFilter(filter domain.MatchFilter) (string, []interface{}) {
	var conditions []string
	var args []interface{}

	if filter.CandidateUserID != "" {
		args = append(args, filter.CandidateUserID)
		conditions = append(conditions, fmt.Sprintf("candidate_user_id = $%d", len(args)))
	}
	if filter.JobID != nil {
		args = append(args, *filter.JobID)
		conditions = append(conditions, fmt.Sprintf("job_id = $%d", len(args)))
	}
	if filter.MinOverallScore != nil {
		args = append(args, *filter.MinOverallScore)
		conditions = append(conditions, fmt.Sprintf("overall_score >= $%d", len(args)))
	}

	if len(conditions) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conditions, " AND "), args
}

func scanMatch(row pgx.Row) (*domain.MatchRecord, error) {
	var record domain.MatchRecord
	var recommendations []string

	err := row.Scan(
		&record.ID, &record.CandidateUserID, &record.JobID, &record.JobTitle, &record.Locale,
		&record.Result.OverallScore,
		&record.Result.DimensionScores.Harmony, &record.Result.DimensionScores.Improvement,
		&record.Result.DimensionScores.Service, &record.Result.DimensionScores.Dedication,
		&record.Result.DimensionScores.Consensus,
		&record.Result.SkillsMatch, &record.Result.ExperienceMatch,
		&record.Result.IntegrationTimelineDays,
		pq.Array(&recommendations), &record.Result.Confidence,
		&record.Result.PriorTableVersion,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	record.Result.Recommendations = recommendations
	return &record, nil
}
