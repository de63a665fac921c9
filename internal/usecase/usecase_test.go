package usecase_test

import (
	"context"
	"testing"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/internal/usecase"
	"go-culturematch-backend/pkg/logger"
	"go-culturematch-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	logger.Init()
}

// Mock Repositories
type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetByUserID(ctx context.Context, userID string) (*domain.CandidateProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CandidateProfile), args.Error(1)
}

func (m *MockCandidateRepo) Upsert(ctx context.Context, profile *domain.CandidateProfile) error {
	return m.Called(ctx, profile).Error(0)
}

type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Create(ctx context.Context, job *domain.JobProfile) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.JobProfile, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JobProfile), args.Error(1)
}

func (m *MockJobRepo) Fetch(ctx context.Context, limit, offset int) ([]domain.JobProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchActive(ctx context.Context, limit, offset int) ([]domain.JobProfile, int64, error) {
	args := m.Called(ctx, limit, offset)
	return args.Get(0).([]domain.JobProfile), args.Get(1).(int64), args.Error(2)
}

func (m *MockJobRepo) FetchActiveIDs(ctx context.Context) ([]int64, error) {
	args := m.Called(ctx)
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockJobRepo) Update(ctx context.Context, job *domain.JobProfile) error {
	return m.Called(ctx, job).Error(0)
}

func (m *MockJobRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockMatchRepo struct {
	mock.Mock
}

func (m *MockMatchRepo) Create(ctx context.Context, record *domain.MatchRecord) error {
	return m.Called(ctx, record).Error(0)
}

func (m *MockMatchRepo) GetByID(ctx context.Context, id string) (*domain.MatchRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MatchRecord), args.Error(1)
}

func (m *MockMatchRepo) Fetch(ctx context.Context, filter domain.MatchFilter) ([]domain.MatchRecord, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]domain.MatchRecord), args.Get(1).(int64), args.Error(2)
}

func newValidator() *validator.Validate {
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func newEngine(t *testing.T) *matching.Engine {
	t.Helper()
	engine, err := matching.NewEngine(matching.DefaultConfig())
	require.NoError(t, err)
	return engine
}

func candidateCtx(userID string) context.Context {
	return context.WithValue(context.Background(), domain.KeyUserID, userID)
}

func testCandidate(userID string) *domain.CandidateProfile {
	return &domain.CandidateProfile{
		UserID:          userID,
		FullName:        "Dewi Lestari",
		Nationality:     "ID",
		TechnicalSkills: []string{"Go", "PostgreSQL"},
		LanguageProficiency: map[string]string{
			"indonesian": "native",
			"japanese":   "business",
		},
		ExperienceYears: 5,
	}
}

func TestCandidateOwnership(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidator())

	t.Run("Should fail when context user does not own the profile", func(t *testing.T) {
		_, err := uc.GetProfile(candidateCtx("user1"), "user2")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "only view your own profile")
	})

	t.Run("Should fail safely when context user is missing", func(t *testing.T) {
		_, err := uc.GetProfile(context.Background(), "user1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "User not authenticated")
	})

	t.Run("Should allow recruiters to read any profile", func(t *testing.T) {
		ctx := context.WithValue(candidateCtx("recruiter1"), domain.KeyUserRole, "recruiter")
		mockRepo.On("GetByUserID", mock.Anything, "user2").Return(testCandidate("user2"), nil).Once()

		profile, err := uc.GetProfile(ctx, "user2")
		require.NoError(t, err)
		assert.Equal(t, "user2", profile.UserID)
	})
}

func TestCandidateUpdateValidation(t *testing.T) {
	mockRepo := new(MockCandidateRepo)
	uc := usecase.NewCandidateUsecase(mockRepo, newValidator())

	t.Run("Should reject a profile the scorer could not normalize", func(t *testing.T) {
		profile := testCandidate("user1")
		profile.Nationality = "Indonesian" // must be alpha-2 or OTHER
		err := uc.UpdateProfile(candidateCtx("user1"), profile)
		assert.Error(t, err)
	})

	t.Run("Should force UserID from context", func(t *testing.T) {
		profile := testCandidate("hacker_try")
		mockRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.CandidateProfile")).Return(nil).Run(func(args mock.Arguments) {
			p := args.Get(1).(*domain.CandidateProfile)
			assert.Equal(t, "user1", p.UserID)
		}).Once()

		err := uc.UpdateProfile(candidateCtx("user1"), profile)
		assert.NoError(t, err)
	})
}

func TestJobUsecaseRoles(t *testing.T) {
	mockRepo := new(MockJobRepo)
	uc := usecase.NewJobUsecase(mockRepo)

	t.Run("Should refuse job creation without recruiter role", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, "candidate")
		err := uc.CreateJob(ctx, &domain.JobProfile{Title: "Backend Engineer"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "Only recruiters")
	})

	t.Run("Should reject a job with unknown cultural requirements", func(t *testing.T) {
		ctx := context.WithValue(context.Background(), domain.KeyUserRole, "recruiter")
		err := uc.CreateJob(ctx, &domain.JobProfile{
			Title:                "Backend Engineer",
			CulturalRequirements: map[string]float64{"synergy": 1},
		})
		assert.Error(t, err)
	})
}

func TestScoreCandidate(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)
	uc := usecase.NewMatchUsecase(newEngine(t), candidateRepo, jobRepo, matchRepo, nil, usecase.MatchUsecaseConfig{})

	t.Run("Should fail when context user is missing", func(t *testing.T) {
		_, err := uc.ScoreCandidate(context.Background(), "user1", nil, "en")
		assert.Error(t, err)
	})

	t.Run("Should persist a profile-only result", func(t *testing.T) {
		candidateRepo.On("GetByUserID", mock.Anything, "user1").Return(testCandidate("user1"), nil).Once()
		matchRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatchRecord")).Return(nil).Once()

		record, err := uc.ScoreCandidate(candidateCtx("user1"), "user1", nil, "en")
		require.NoError(t, err)
		assert.Nil(t, record.JobID)
		assert.Zero(t, record.Result.SkillsMatch)
		assert.NotEmpty(t, record.Result.Recommendations)
		matchRepo.AssertExpectations(t)
	})

	t.Run("Should score against a specific job", func(t *testing.T) {
		jobID := int64(7)
		candidateRepo.On("GetByUserID", mock.Anything, "user1").Return(testCandidate("user1"), nil).Once()
		jobRepo.On("GetByID", mock.Anything, jobID).Return(&domain.JobProfile{
			ID:             jobID,
			Title:          "Go Engineer",
			RequiredSkills: []string{"Go", "Kubernetes"},
			Status:         domain.JobStatusActive,
		}, nil).Once()
		matchRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatchRecord")).Return(nil).Once()

		record, err := uc.ScoreCandidate(candidateCtx("user1"), "user1", &jobID, "en")
		require.NoError(t, err)
		require.NotNil(t, record.JobID)
		assert.Equal(t, jobID, *record.JobID)
		assert.Equal(t, 50.0, record.Result.SkillsMatch)
	})

	t.Run("Should surface candidate not found instead of fabricating", func(t *testing.T) {
		candidateRepo.On("GetByUserID", mock.Anything, "ghost").Return(nil, nil).Once()
		record, err := uc.ScoreCandidate(candidateCtx("ghost"), "ghost", nil, "en")
		assert.Nil(t, record)
		assert.Error(t, err)
	})
}

func TestScoreAgainstActiveJobs(t *testing.T) {
	candidateRepo := new(MockCandidateRepo)
	jobRepo := new(MockJobRepo)
	matchRepo := new(MockMatchRepo)
	uc := usecase.NewMatchUsecase(newEngine(t), candidateRepo, jobRepo, matchRepo, nil, usecase.MatchUsecaseConfig{BatchConcurrency: 2})

	candidateRepo.On("GetByUserID", mock.Anything, "user1").Return(testCandidate("user1"), nil)
	jobRepo.On("FetchActiveIDs", mock.Anything).Return([]int64{1, 2, 3}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(1)).Return(&domain.JobProfile{
		ID: 1, Title: "Perfect Fit", RequiredSkills: []string{"Go", "PostgreSQL"},
	}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(2)).Return(&domain.JobProfile{
		ID: 2, Title: "Partial Fit", RequiredSkills: []string{"Go", "Rust"},
	}, nil)
	jobRepo.On("GetByID", mock.Anything, int64(3)).Return(&domain.JobProfile{
		ID: 3, Title: "No Fit", RequiredSkills: []string{"COBOL", "Fortran"}, MinExperienceYears: 20,
	}, nil)
	matchRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.MatchRecord")).Return(nil)

	records, err := uc.ScoreAgainstActiveJobs(candidateCtx("user1"), "user1", "en")
	require.NoError(t, err)
	require.Len(t, records, 3)

	for i := 1; i < len(records); i++ {
		assert.GreaterOrEqual(t, records[i-1].Result.OverallScore, records[i].Result.OverallScore,
			"batch results must be ordered by descending overall score")
	}
	assert.Equal(t, "Perfect Fit", *records[0].JobTitle)
}
