package v1

import (
	"net/http"

	"go-culturematch-backend/internal/delivery/http/response"
	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("/me", handler.GetProfile)
		candidates.PUT("/me", handler.UpdateProfile)
	}
}

// GetProfile godoc
// @Summary      Get candidate profile
// @Description  Get the profile of the currently identified candidate
// @Tags         candidates
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      401  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /candidates/me [get]
func (h *CandidateHandler) GetProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))

	profile, err := h.candidateUC.GetProfile(c.Request.Context(), userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Candidate profile", profile)
}

type UpdateCandidateRequest struct {
	FullName            string            `json:"full_name" binding:"required"`
	Nationality         string            `json:"nationality" binding:"required"`
	TechnicalSkills     []string          `json:"technical_skills" binding:"required,min=1"`
	LanguageProficiency map[string]string `json:"language_proficiency"`
	ExperienceYears     int               `json:"experience_years"`
	CulturalAnswers     map[string]string `json:"cultural_answers"`
}

// UpdateProfile godoc
// @Summary      Create or update candidate profile
// @Description  Upsert the profile of the currently identified candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        profile  body      UpdateCandidateRequest  true  "Profile JSON"
// @Success      200  {object}  response.Response{data=domain.CandidateProfile}
// @Failure      400  {object}  response.Response
// @Failure      401  {object}  response.Response
// @Router       /candidates/me [put]
func (h *CandidateHandler) UpdateProfile(c *gin.Context) {
	var req UpdateCandidateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	profile := &domain.CandidateProfile{
		UserID:              c.GetString(string(domain.KeyUserID)),
		FullName:            req.FullName,
		Nationality:         req.Nationality,
		TechnicalSkills:     req.TechnicalSkills,
		LanguageProficiency: req.LanguageProficiency,
		ExperienceYears:     req.ExperienceYears,
		CulturalAnswers:     req.CulturalAnswers,
	}

	if err := h.candidateUC.UpdateProfile(c.Request.Context(), profile); err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile updated", profile)
}
