package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DBUrl       string
	FrontendURL string
	// Redis Configuration
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitGlobalThreshold  int
	RateLimitScoringThreshold int
	// Scoring Configuration
	DimensionWeightHarmony     float64
	DimensionWeightImprovement float64
	DimensionWeightService     float64
	DimensionWeightDedication  float64
	DimensionWeightConsensus   float64
	DimensionShare             float64
	SkillsWeight               float64
	ExperienceWeight           float64
	RecommendationThreshold    float64
	// Match pipeline
	MatchBatchConcurrency int
	MatchCacheTTLSeconds  int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when no .env exists
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		DBUrl:       getEnv("DATABASE_URL", ""),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// Redis Configuration
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),
		RateLimitScoringThreshold: getEnvInt("RATE_LIMIT_SCORING_THRESHOLD", 10),
		// Scoring weights. The engine validates the sum-to-one
		// invariants at startup and refuses to boot on a violation.
		DimensionWeightHarmony:     getEnvFloat("SCORE_WEIGHT_HARMONY", 0.2),
		DimensionWeightImprovement: getEnvFloat("SCORE_WEIGHT_IMPROVEMENT", 0.2),
		DimensionWeightService:     getEnvFloat("SCORE_WEIGHT_SERVICE", 0.2),
		DimensionWeightDedication:  getEnvFloat("SCORE_WEIGHT_DEDICATION", 0.2),
		DimensionWeightConsensus:   getEnvFloat("SCORE_WEIGHT_CONSENSUS", 0.2),
		DimensionShare:             getEnvFloat("SCORE_DIMENSION_SHARE", 0.60),
		SkillsWeight:               getEnvFloat("SCORE_SKILLS_WEIGHT", 0.25),
		ExperienceWeight:           getEnvFloat("SCORE_EXPERIENCE_WEIGHT", 0.15),
		RecommendationThreshold:    getEnvFloat("RECOMMENDATION_THRESHOLD", 75),
		// Match pipeline
		MatchBatchConcurrency: getEnvInt("MATCH_BATCH_CONCURRENCY", 4),
		MatchCacheTTLSeconds:  getEnvInt("MATCH_CACHE_TTL_SECONDS", 300),
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Application may fail to connect.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback and match results will not be cached.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvFloat returns a float environment variable or fallback if not set/invalid
func getEnvFloat(key string, fallback float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return fallback
}
