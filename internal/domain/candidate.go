package domain

import (
	"context"
	"time"
)

type CandidateProfile struct {
	ID                  int64             `json:"id"`
	UserID              string            `json:"user_id" validate:"required"`
	FullName            string            `json:"full_name" validate:"required,min=2,max=100"`
	Nationality         string            `json:"nationality" validate:"required,iso_nationality"`
	TechnicalSkills     []string          `json:"technical_skills" validate:"required,min=1"`
	LanguageProficiency map[string]string `json:"language_proficiency"`
	ExperienceYears     int               `json:"experience_years" validate:"gte=0"`
	// Free-text answers from the cultural questionnaire. Stored for
	// recruiters; the scorer does not consume them.
	CulturalAnswers map[string]string `json:"cultural_answers,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}

type CandidateRepository interface {
	GetByUserID(ctx context.Context, userID string) (*CandidateProfile, error)
	Upsert(ctx context.Context, profile *CandidateProfile) error
}

type CandidateUsecase interface {
	GetProfile(ctx context.Context, userID string) (*CandidateProfile, error)
	UpdateProfile(ctx context.Context, profile *CandidateProfile) error
}
