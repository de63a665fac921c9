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

type candidateRepository struct {
	db *pgxpool.Pool
}

func NewCandidateRepository(db *pgxpool.Pool) domain.CandidateRepository {
	return &candidateRepository{db: db}
}

func (r *candidateRepository) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	query := `
		SELECT
			id, user_id, full_name, nationality,
			technical_skills,
			COALESCE(language_proficiency, '{}'::jsonb),
			experience_years,
			COALESCE(cultural_answers, '{}'::jsonb),
			created_at, updated_at
		FROM candidate_profiles WHERE user_id = $1`

	var p domain.CandidateProfile
	var skills []string
	var langJSON, answersJSON []byte

	err := r.db.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.FullName, &p.Nationality,
		pq.Array(&skills), &langJSON,
		&p.ExperienceYears, &answersJSON,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	p.TechnicalSkills = skills
	if err := json.Unmarshal(langJSON, &p.LanguageProficiency); err != nil {
		return nil, fmt.Errorf("failed to decode language proficiency: %w", err)
	}
	if err := json.Unmarshal(answersJSON, &p.CulturalAnswers); err != nil {
		return nil, fmt.Errorf("failed to decode cultural answers: %w", err)
	}
	return &p, nil
}

func (r *candidateRepository) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	langJSON, err := json.Marshal(profile.LanguageProficiency)
	if err != nil {
		return fmt.Errorf("failed to encode language proficiency: %w", err)
	}
	answersJSON, err := json.Marshal(profile.CulturalAnswers)
	if err != nil {
		return fmt.Errorf("failed to encode cultural answers: %w", err)
	}

	query := `
		INSERT INTO candidate_profiles (
			user_id, full_name, nationality, technical_skills,
			language_proficiency, experience_years, cultural_answers,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		ON CONFLICT (user_id) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			nationality = EXCLUDED.nationality,
			technical_skills = EXCLUDED.technical_skills,
			language_proficiency = EXCLUDED.language_proficiency,
			experience_years = EXCLUDED.experience_years,
			cultural_answers = EXCLUDED.cultural_answers,
			updated_at = NOW()
		RETURNING id`

	return r.db.QueryRow(ctx, query,
		profile.UserID, profile.FullName, profile.Nationality,
		pq.Array(profile.TechnicalSkills), langJSON,
		profile.ExperienceYears, answersJSON,
	).Scan(&profile.ID)
}
