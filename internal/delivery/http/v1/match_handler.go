package v1

import (
	"net/http"
	"strconv"

	"go-culturematch-backend/internal/delivery/http/response"
	"go-culturematch-backend/internal/domain"
	"go-culturematch-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type MatchHandler struct {
	matchUC domain.MatchUsecase
}

func NewMatchHandler(r *gin.RouterGroup, matchUC domain.MatchUsecase, scoringLimiter gin.HandlerFunc) {
	handler := &MatchHandler{matchUC: matchUC}

	matches := r.Group("/matches")
	{
		matches.POST("/me", scoringLimiter, handler.ScoreProfile)
		matches.POST("/me/jobs/:id", scoringLimiter, handler.ScoreAgainstJob)
		matches.POST("/me/jobs", scoringLimiter, handler.ScoreAgainstActiveJobs)
		matches.GET("/me", handler.History)
	}
}

// ScoreProfile godoc
// @Summary      Score own profile
// @Description  Run the cultural-fit assessment on the identified candidate's profile, without a job
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.MatchRecord}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches/me [post]
func (h *MatchHandler) ScoreProfile(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	locale := c.GetString(string(domain.KeyLocale))

	record, err := h.matchUC.ScoreCandidate(c.Request.Context(), userID, nil, locale)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Profile assessment", record)
}

// ScoreAgainstJob godoc
// @Summary      Score own profile against one job
// @Tags         matches
// @Produce      json
// @Param        id   path      int  true  "Job ID"
// @Success      200  {object}  response.Response{data=domain.MatchRecord}
// @Failure      400  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches/me/jobs/{id} [post]
func (h *MatchHandler) ScoreAgainstJob(c *gin.Context) {
	jobID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.BadRequest("Invalid job ID"))
		return
	}

	userID := c.GetString(string(domain.KeyUserID))
	locale := c.GetString(string(domain.KeyLocale))

	record, err := h.matchUC.ScoreCandidate(c.Request.Context(), userID, &jobID, locale)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job match", record)
}

// ScoreAgainstActiveJobs godoc
// @Summary      Score own profile against all active jobs
// @Description  Batch-score the candidate against every active job, best match first
// @Tags         matches
// @Produce      json
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /matches/me/jobs [post]
func (h *MatchHandler) ScoreAgainstActiveJobs(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	locale := c.GetString(string(domain.KeyLocale))

	records, err := h.matchUC.ScoreAgainstActiveJobs(c.Request.Context(), userID, locale)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Job matches", gin.H{
		"matches": records,
		"total":   len(records),
	})
}

// History godoc
// @Summary      List own match history
// @Tags         matches
// @Produce      json
// @Param        page       query     int  false  "Page"
// @Param        page_size  query     int  false  "Page size"
// @Success      200  {object}  response.Response
// @Router       /matches/me [get]
func (h *MatchHandler) History(c *gin.Context) {
	userID := c.GetString(string(domain.KeyUserID))
	page, pageSize := pagination(c)

	records, total, err := h.matchUC.GetMatchHistory(c.Request.Context(), userID, page, pageSize)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Match history", gin.H{
		"matches": records,
		"total":   total,
		"page":    page,
	})
}
