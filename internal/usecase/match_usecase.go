package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/pkg/apperror"
	"go-culturematch-backend/pkg/logger"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

// MatchUsecaseConfig tunes batch scoring and result caching.
type MatchUsecaseConfig struct {
	// BatchConcurrency bounds the parallel fan-out when scoring one
	// candidate against many jobs.
	BatchConcurrency int
	// CacheTTL is how long a scored result stays in Redis. Zero
	// disables caching.
	CacheTTL time.Duration
}

type matchUsecase struct {
	engine        *matching.Engine
	candidateRepo domain.CandidateRepository
	jobRepo       domain.JobRepository
	matchRepo     domain.MatchRepository
	cache         *goredis.Client // nil when Redis is not configured
	cfg           MatchUsecaseConfig
}

func NewMatchUsecase(
	engine *matching.Engine,
	candidateRepo domain.CandidateRepository,
	jobRepo domain.JobRepository,
	matchRepo domain.MatchRepository,
	cache *goredis.Client,
	cfg MatchUsecaseConfig,
) domain.MatchUsecase {
	if cfg.BatchConcurrency < 1 {
		cfg.BatchConcurrency = 4
	}
	return &matchUsecase{
		engine:        engine,
		candidateRepo: candidateRepo,
		jobRepo:       jobRepo,
		matchRepo:     matchRepo,
		cache:         cache,
		cfg:           cfg,
	}
}

func (u *matchUsecase) ScoreCandidate(ctx context.Context, userID string, jobID *int64, locale string) (*domain.MatchRecord, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		role, _ := ctx.Value(domain.KeyUserRole).(string)
		if role != "recruiter" && role != "admin" {
			return nil, apperror.Forbidden("You can only score your own profile")
		}
	}

	if cached := u.cachedRecord(ctx, userID, jobID, locale); cached != nil {
		return cached, nil
	}

	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	var job *domain.JobProfile
	if jobID != nil {
		job, err = u.jobRepo.GetByID(ctx, *jobID)
		if err != nil {
			return nil, err
		}
		if job == nil {
			return nil, apperror.NotFound("Job not found")
		}
	}

	record, err := u.score(candidate, job, locale)
	if err != nil {
		return nil, err
	}

	if err := u.matchRepo.Create(ctx, record); err != nil {
		return nil, apperror.Internal(err)
	}
	u.cacheRecord(ctx, record)
	return record, nil
}

func (u *matchUsecase) ScoreAgainstActiveJobs(ctx context.Context, userID string, locale string) ([]domain.MatchRecord, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		role, _ := ctx.Value(domain.KeyUserRole).(string)
		if role != "recruiter" && role != "admin" {
			return nil, apperror.Forbidden("You can only score your own profile")
		}
	}

	candidate, err := u.candidateRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if candidate == nil {
		return nil, apperror.NotFound("Candidate profile not found")
	}

	jobIDs, err := u.jobRepo.FetchActiveIDs(ctx)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	var mu sync.Mutex
	records := make([]domain.MatchRecord, 0, len(jobIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(u.cfg.BatchConcurrency)
	for _, id := range jobIDs {
		g.Go(func() error {
			job, err := u.jobRepo.GetByID(gctx, id)
			if err != nil {
				return err
			}
			if job == nil {
				return nil // job was deleted mid-batch
			}
			record, err := u.score(candidate, job, locale)
			if err != nil {
				return err
			}
			if err := u.matchRepo.Create(gctx, record); err != nil {
				return err
			}
			mu.Lock()
			records = append(records, *record)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			return nil, appErr
		}
		return nil, apperror.Internal(err)
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Result.OverallScore > records[j].Result.OverallScore
	})
	return records, nil
}

func (u *matchUsecase) GetMatchHistory(ctx context.Context, userID string, page, pageSize int) ([]domain.MatchRecord, int64, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, 0, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		role, _ := ctx.Value(domain.KeyUserRole).(string)
		if role != "recruiter" && role != "admin" {
			return nil, 0, apperror.Forbidden("You can only view your own match history")
		}
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return u.matchRepo.Fetch(ctx, domain.MatchFilter{
		CandidateUserID: userID,
		Page:            page,
		PageSize:        pageSize,
	})
}

// score runs the engine for one pair and wraps the outcome in a
// persistable record. Engine failures surface as typed API errors:
// bad input is the caller's fault, table/configuration faults are ours.
func (u *matchUsecase) score(candidate *domain.CandidateProfile, job *domain.JobProfile, locale string) (*domain.MatchRecord, error) {
	candidateRec := matching.CandidateRecord{
		Nationality:         candidate.Nationality,
		TechnicalSkills:     candidate.TechnicalSkills,
		LanguageProficiency: candidate.LanguageProficiency,
		ExperienceYears:     candidate.ExperienceYears,
	}

	var jobRec *matching.JobRecord
	if job != nil {
		jobRec = &matching.JobRecord{
			RequiredSkills:       job.RequiredSkills,
			CulturalRequirements: job.CulturalRequirements,
			Location:             job.Location,
			MinExperienceYears:   job.MinExperienceYears,
			MaxExperienceYears:   job.MaxExperienceYears,
		}
	}

	result, err := u.engine.Score(candidateRec, jobRec, locale)
	if err != nil {
		var vErr *matching.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperror.BadRequest(vErr.Error())
		}
		return nil, apperror.Internal(err)
	}

	record := &domain.MatchRecord{
		ID:              uuid.NewString(),
		CandidateUserID: candidate.UserID,
		Locale:          locale,
		Result:          *result,
		CreatedAt:       time.Now().UTC(),
	}
	if job != nil {
		record.JobID = &job.ID
		record.JobTitle = &job.Title
	}
	return record, nil
}

func matchCacheKey(userID string, jobID *int64, locale string) string {
	if jobID == nil {
		return fmt.Sprintf("match:%s:profile:%s", userID, locale)
	}
	return fmt.Sprintf("match:%s:job:%d:%s", userID, *jobID, locale)
}

func (u *matchUsecase) cachedRecord(ctx context.Context, userID string, jobID *int64, locale string) *domain.MatchRecord {
	if u.cache == nil || u.cfg.CacheTTL <= 0 {
		return nil
	}
	payload, err := u.cache.Get(ctx, matchCacheKey(userID, jobID, locale)).Bytes()
	if err != nil {
		return nil // miss or Redis unavailable; recompute
	}
	var record domain.MatchRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return nil
	}
	return &record
}

func (u *matchUsecase) cacheRecord(ctx context.Context, record *domain.MatchRecord) {
	if u.cache == nil || u.cfg.CacheTTL <= 0 {
		return
	}
	payload, err := json.Marshal(record)
	if err != nil {
		return
	}
	key := matchCacheKey(record.CandidateUserID, record.JobID, record.Locale)
	if err := u.cache.Set(ctx, key, payload, u.cfg.CacheTTL).Err(); err != nil {
		logger.Log.Warn("Failed to cache match result", "key", key, "error", err)
	}
}
