package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-tailor/internal/resumes"
	"resume-tailor/internal/services/health"
	"resume-tailor/internal/shared/config"
	"resume-tailor/internal/shared/metrics"
	"resume-tailor/internal/shared/server/middleware"
	"resume-tailor/internal/shared/server/respond"
)

// RouterDeps wires handlers into the router.
type RouterDeps struct {
	Config        config.Config
	ResumeHandler *resumes.Handler
	Health        *health.Service
	// Limiter is shared across AI routes; a nil value gets a fresh limiter.
	Limiter *middleware.RateLimiter
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
	)

	r.GET("/", func(c *gin.Context) {
		respond.OK(c, gin.H{"message": "Welcome to the resume tailoring API"})
	})
	r.GET("/health", func(c *gin.Context) {
		payload, ok := deps.Health.Status(c.Request.Context())
		status := http.StatusOK
		if !ok {
			status = http.StatusServiceUnavailable
		}
		respond.JSON(c, status, payload)
	})
	r.GET("/metrics", metrics.Handler())

	if deps.ResumeHandler != nil {
		deps.ResumeHandler.RegisterRoutes(r, aiRateLimit(deps))
	}

	return r
}

func aiRateLimit(deps RouterDeps) gin.HandlerFunc {
	if deps.Config.AIRequestsPerMin <= 0 {
		return nil
	}
	return middleware.RateLimit(middleware.RateLimitConfig{
		DefaultGroup: middleware.AIGroup,
		Limiter:      deps.Limiter,
		Rules: map[string]middleware.RateLimitRule{
			middleware.AIGroup: middleware.PerMinute(deps.Config.AIRequestsPerMin),
		},
	})
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
