package usecase_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/internal/matching"
	"go-culturematch-backend/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestExportMatches(t *testing.T) {
	jobTitle := "Go Engineer"
	sample := []domain.MatchRecord{{
		ID:              "m1",
		CandidateUserID: "user1",
		JobTitle:        &jobTitle,
		Locale:          "en",
		Result: matching.MatchResult{
			OverallScore:            81.5,
			SkillsMatch:             50,
			ExperienceMatch:         100,
			IntegrationTimelineDays: 69,
			Recommendations:         []string{"ok"},
			Confidence:              90,
		},
		CreatedAt: time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC),
	}}

	recruiterCtx := context.WithValue(context.Background(), domain.KeyUserRole, "recruiter")

	t.Run("Should refuse export without recruiter role", func(t *testing.T) {
		uc := usecase.NewReportUsecase(new(MockMatchRepo))
		_, _, err := uc.ExportMatches(context.Background(), domain.MatchExportRequest{})
		assert.Error(t, err)
	})

	t.Run("Should reject an unknown column", func(t *testing.T) {
		uc := usecase.NewReportUsecase(new(MockMatchRepo))
		_, _, err := uc.ExportMatches(recruiterCtx, domain.MatchExportRequest{
			Columns: []string{"salary"},
		})
		assert.Error(t, err)
	})

	t.Run("Should render CSV with the selected columns", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		matchRepo.On("Fetch", mock.Anything, mock.AnythingOfType("domain.MatchFilter")).Return(sample, int64(1), nil).Once()

		uc := usecase.NewReportUsecase(matchRepo)
		data, filename, err := uc.ExportMatches(recruiterCtx, domain.MatchExportRequest{
			Format:  "csv",
			Columns: []string{"candidate_user_id", "job_title", "overall_score"},
		})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, ".csv"))

		lines := strings.Split(strings.TrimSpace(string(data)), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "candidate_user_id,job_title,overall_score", lines[0])
		assert.Equal(t, "user1,Go Engineer,81.5", lines[1])
	})

	t.Run("Should render a non-empty xlsx by default", func(t *testing.T) {
		matchRepo := new(MockMatchRepo)
		matchRepo.On("Fetch", mock.Anything, mock.AnythingOfType("domain.MatchFilter")).Return(sample, int64(1), nil).Once()

		uc := usecase.NewReportUsecase(matchRepo)
		data, filename, err := uc.ExportMatches(recruiterCtx, domain.MatchExportRequest{})
		require.NoError(t, err)
		assert.True(t, strings.HasSuffix(filename, ".xlsx"))
		assert.NotEmpty(t, data)
	})
}
