package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go-culturematch-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

const jobColumns = `id, company_name, title, description, location, required_skills,
	COALESCE(cultural_requirements, '{}'::jsonb), min_experience_years, max_experience_years,
	status, created_at, updated_at`

type jobRepo struct {
	db *pgxpool.Pool
}

func NewJobRepository(db *pgxpool.Pool) domain.JobRepository {
	return &jobRepo{db: db}
}

func (r *jobRepo) Create(ctx context.Context, job *domain.JobProfile) error {
	reqJSON, err := json.Marshal(job.CulturalRequirements)
	if err != nil {
		return fmt.Errorf("failed to encode cultural requirements: %w", err)
	}

	query := `INSERT INTO jobs (company_name, title, description, location, required_skills, cultural_requirements, min_experience_years, max_experience_years, status, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11) RETURNING id`
	return r.db.QueryRow(ctx, query,
		job.CompanyName, job.Title, job.Description, job.Location,
		pq.Array(job.RequiredSkills), reqJSON,
		job.MinExperienceYears, job.MaxExperienceYears, job.Status,
		job.CreatedAt, job.UpdatedAt,
	).Scan(&job.ID)
}

func (r *jobRepo) GetByID(ctx context.Context, id int64) (*domain.JobProfile, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`
	job, err := scanJob(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return job, nil
}

func (r *jobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobProfile, int64, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		`SELECT COUNT(*) FROM jobs`, limit, offset)
}

func (r *jobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobProfile, int64, error) {
	return r.fetch(ctx, `SELECT `+jobColumns+` FROM jobs WHERE status = 'active' ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		`SELECT COUNT(*) FROM jobs WHERE status = 'active'`, limit, offset)
}

func (r *jobRepo) FetchActiveIDs(ctx context.Context) ([]int64, error) {
	rows, err := r.db.Query(ctx, `SELECT id FROM jobs WHERE status = 'active' ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *jobRepo) Update(ctx context.Context, job *domain.JobProfile) error {
	reqJSON, err := json.Marshal(job.CulturalRequirements)
	if err != nil {
		return fmt.Errorf("failed to encode cultural requirements: %w", err)
	}

	query := `UPDATE jobs SET company_name=$1, title=$2, description=$3, location=$4, required_skills=$5, cultural_requirements=$6, min_experience_years=$7, max_experience_years=$8, status=$9, updated_at=NOW() WHERE id=$10`
	_, err = r.db.Exec(ctx, query,
		job.CompanyName, job.Title, job.Description, job.Location,
		pq.Array(job.RequiredSkills), reqJSON,
		job.MinExperienceYears, job.MaxExperienceYears, job.Status, job.ID,
	)
	return err
}

func (r *jobRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmdTag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *jobRepo) fetch(ctx context.Context, listQuery, countQuery string, limit, offset int) ([]domain.JobProfile, int64, error) {
	rows, err := r.db.Query(ctx, listQuery, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var jobs []domain.JobProfile
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, 0, err
		}
		jobs = append(jobs, *job)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := r.db.QueryRow(ctx, countQuery).Scan(&total); err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

func scanJob(row pgx.Row) (*domain.JobProfile, error) {
	var job domain.JobProfile
	var skills []string
	var reqJSON []byte

	err := row.Scan(
		&job.ID, &job.CompanyName, &job.Title, &job.Description, &job.Location,
		pq.Array(&skills), &reqJSON,
		&job.MinExperienceYears, &job.MaxExperienceYears,
		&job.Status, &job.CreatedAt, &job.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	job.RequiredSkills = skills
	if err := json.Unmarshal(reqJSON, &job.CulturalRequirements); err != nil {
		return nil, fmt.Errorf("failed to decode cultural requirements: %w", err)
	}
	return &job, nil
}
