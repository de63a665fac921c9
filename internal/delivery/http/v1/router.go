package v1

import (
	"net/http"
	"time"

	"go-culturematch-backend/config"
	"go-culturematch-backend/internal/delivery/http/middleware"
	"go-culturematch-backend/internal/delivery/http/response"
	"go-culturematch-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	CandidateUC domain.CandidateUsecase
	JobUC       domain.JobUsecase
	MatchUC     domain.MatchUsecase
	ReportUC    domain.ReportUsecase
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.FrontendURL)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimitMiddleware(middleware.DefaultRateLimitConfig(
		deps.Config.RateLimitGlobalThreshold,
		time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
	)))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Identified routes: the gateway asserts who the caller is.
	identified := v1.Group("")
	identified.Use(middleware.Identity())
	{
		// Batch scoring is the expensive path; give it its own budget.
		scoringLimiter := middleware.RateLimitMiddleware(middleware.ScoringRateLimitConfig(
			deps.Config.RateLimitScoringThreshold,
			time.Duration(deps.Config.RateLimitWindowSeconds)*time.Second,
		))

		NewJobHandler(v1, identified, deps.JobUC)
		NewCandidateHandler(identified, deps.CandidateUC)
		NewMatchHandler(identified, deps.MatchUC, scoringLimiter)
		NewReportHandler(identified, deps.ReportUC)
	}

	return r
}
