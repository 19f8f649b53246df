package v1

import (
	"net/http"

	"go-jobboard-backend/config"
	"go-jobboard-backend/internal/delivery/http/middleware"
	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/auth"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ApplicantUC domain.ApplicantUsecase
	CompanyUC   domain.CompanyUsecase
	JobUC       domain.JobUsecase
	AuthUC      domain.AuthUsecase
	Tokens      *auth.TokenManager
	Config      *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.ErrorHandler())

	api := r.Group("/api")

	// Health Check
	api.GET("/health", func(c *gin.Context) {
		response.JSON(c, http.StatusOK, "System operational", nil)
	})

	// Authentication endpoints live outside the versioned prefix.
	NewAuthHandler(api, deps.AuthUC)

	v1 := api.Group("/v1")

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(deps.Tokens))

	NewApplicantHandler(v1, protected, deps.ApplicantUC)
	NewCompanyHandler(v1, protected, deps.CompanyUC)
	NewJobHandler(v1, deps.JobUC)

	return r
}
