package usecase

import (
	"context"
	"errors"
	"time"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/pkg/apperror"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) CreateJob(ctx context.Context, job *domain.JobProfile) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "recruiter" && role != "admin" {
		return apperror.Forbidden("Only recruiters can create jobs")
	}

	// A job that cannot be normalized can never be scored against, so
	// reject it at creation time rather than at first match.
	if _, err := matching.NormalizeJob(matching.JobRecord{
		RequiredSkills:       job.RequiredSkills,
		CulturalRequirements: job.CulturalRequirements,
		Location:             job.Location,
		MinExperienceYears:   job.MinExperienceYears,
		MaxExperienceYears:   job.MaxExperienceYears,
	}); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if job.Status == "" {
		job.Status = domain.JobStatusDraft
	}
	job.CreatedAt = time.Now()
	job.UpdatedAt = job.CreatedAt
	return u.jobRepo.Create(ctx, job)
}

func (u *jobUsecase) GetJobDetails(ctx context.Context, id int64) (*domain.JobProfile, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if job == nil {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) ListJobs(ctx context.Context, page, pageSize int) ([]domain.JobProfile, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.Fetch(ctx, limit, offset)
}

func (u *jobUsecase) ListActiveJobs(ctx context.Context, page, pageSize int) ([]domain.JobProfile, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.jobRepo.FetchActive(ctx, limit, offset)
}

func (u *jobUsecase) UpdateJob(ctx context.Context, job *domain.JobProfile) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "recruiter" && role != "admin" {
		return apperror.Forbidden("Only recruiters can update jobs")
	}

	existing, err := u.jobRepo.GetByID(ctx, job.ID)
	if err != nil {
		return err
	}
	if existing == nil {
		return apperror.NotFound("Job not found")
	}

	if _, err := matching.NormalizeJob(matching.JobRecord{
		RequiredSkills:       job.RequiredSkills,
		CulturalRequirements: job.CulturalRequirements,
		Location:             job.Location,
		MinExperienceYears:   job.MinExperienceYears,
		MaxExperienceYears:   job.MaxExperienceYears,
	}); err != nil {
		return apperror.BadRequest(err.Error())
	}

	job.UpdatedAt = time.Now()
	return u.jobRepo.Update(ctx, job)
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id int64) error {
	role, _ := ctx.Value(domain.KeyUserRole).(string)
	if role != "admin" {
		return apperror.Forbidden("Only admins can delete jobs")
	}
	if err := u.jobRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Job not found")
		}
		return err
	}
	return nil
}

func paginate(page, pageSize int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return pageSize, (page - 1) * pageSize
}
