package usecase

import (
	"context"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) GetProfile(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	// Ownership check: a candidate can only read their own profile.
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		role, _ := ctx.Value(domain.KeyUserRole).(string)
		if role != "recruiter" && role != "admin" {
			return nil, apperror.Forbidden("You can only view your own profile")
		}
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}
	return profile, nil
}

func (u *candidateUsecase) UpdateProfile(ctx context.Context, profile *domain.CandidateProfile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the UserID to the context user so nobody updates a foreign profile.
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	// Run the scorer's own normalization up front so a profile that
	// would later fail scoring is rejected at registration time.
	if _, err := matching.NormalizeCandidate(matching.CandidateRecord{
		Nationality:         profile.Nationality,
		TechnicalSkills:     profile.TechnicalSkills,
		LanguageProficiency: profile.LanguageProficiency,
		ExperienceYears:     profile.ExperienceYears,
	}); err != nil {
		return apperror.BadRequest(err.Error())
	}

	return u.repo.Upsert(ctx, profile)
}
