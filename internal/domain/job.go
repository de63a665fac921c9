package domain

import (
	"context"
	"errors"
	"time"
)

// Common domain errors
var ErrNotFound = errors.New("resource not found")

// Job status constants
const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
	JobStatusDraft  = "draft"
)

type JobProfile struct {
	ID                   int64              `json:"id"`
	CompanyName          string             `json:"company_name"`
	Title                string             `json:"title"`
	Description          string             `json:"description"`
	Location             string             `json:"location"`
	RequiredSkills       []string           `json:"required_skills"`
	CulturalRequirements map[string]float64 `json:"cultural_requirements,omitempty"`
	MinExperienceYears   int                `json:"min_experience_years"`
	MaxExperienceYears   int                `json:"max_experience_years"`
	Status               string             `json:"status"`
	CreatedAt            time.Time          `json:"created_at"`
	UpdatedAt            time.Time          `json:"updated_at"`
}

type JobRepository interface {
	Create(ctx context.Context, job *JobProfile) error
	GetByID(ctx context.Context, id int64) (*JobProfile, error)
	Fetch(ctx context.Context, limit, offset int) ([]JobProfile, int64, error)
	FetchActive(ctx context.Context, limit, offset int) ([]JobProfile, int64, error)
	FetchActiveIDs(ctx context.Context) ([]int64, error)
	Update(ctx context.Context, job *JobProfile) error
	Delete(ctx context.Context, id int64) error
}

type JobUsecase interface {
	CreateJob(ctx context.Context, job *JobProfile) error
	GetJobDetails(ctx context.Context, id int64) (*JobProfile, error)
	ListJobs(ctx context.Context, page, pageSize int) ([]JobProfile, int64, error)
	ListActiveJobs(ctx context.Context, page, pageSize int) ([]JobProfile, int64, error)
	UpdateJob(ctx context.Context, job *JobProfile) error
	DeleteJob(ctx context.Context, id int64) error
}
