package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/leocth/labrinth/internal/config"
	"github.com/leocth/labrinth/internal/handler"
	"github.com/leocth/labrinth/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	cfg *config.Config,
	logger *zap.Logger,
	fileH *handler.VersionFileHandler,
	gameVersionH *handler.GameVersionHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Multipart parts above this size spill to temp files instead of memory.
	r.MaxMultipartMemory = 32 << 20

	// Global middleware
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Version files
	versions := v1.Group("/version/:id")
	versions.POST("/files", fileH.Upload)
	versions.GET("/files", fileH.ListByVersion)

	files := v1.Group("/file/:id")
	files.GET("", fileH.GetByID)
	files.GET("/download", fileH.Download)
	files.DELETE("", fileH.Delete)

	v1.POST("/validate", fileH.Validate)

	// Tags
	v1.GET("/tag/game_version", gameVersionH.List)

	return r
}
