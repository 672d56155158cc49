package v1

import (
	"net/http"

	"go-creators-backend/config"
	"go-creators-backend/internal/delivery/http/middleware"
	"go-creators-backend/internal/delivery/http/response"
	"go-creators-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	AuthUC    domain.AuthUsecase
	CreatorUC domain.CreatorUsecase
	SkillUC   domain.SkillUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global middlewares
	r.Use(middleware.CORS(deps.Config.FrontendURL))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// All routes are public: no token is issued at login, so there is
	// nothing to gate on.
	root := r.Group("")
	{
		NewAuthHandler(root, deps.AuthUC)
		NewProfileHandler(root, deps.CreatorUC)
		NewSkillHandler(root, deps.SkillUC)
	}

	return r
}
