package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-vault/internal/applicants"
	"resume-vault/internal/auth"
	sharedauth "resume-vault/internal/shared/auth"
	"resume-vault/internal/shared/config"
	"resume-vault/internal/shared/metrics"
	"resume-vault/internal/shared/server/middleware"
	"resume-vault/internal/shared/server/respond"
)

// RouterDeps carries the wired handlers the router mounts.
type RouterDeps struct {
	Config        config.Config
	Tokens        *sharedauth.TokenService
	AuthHandler   *auth.Handler
	ResumeHandler *applicants.Handler
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

	r.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	r.GET("/metrics", metrics.Handler())

	authGroup := r.Group("/auth")
	deps.AuthHandler.RegisterRoutes(authGroup)

	resume := r.Group("/resume")
	resume.Use(middleware.Auth(deps.Tokens))
	deps.ResumeHandler.RegisterRoutes(resume)

	return r
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":5000"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
