package restapi

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// RouterOptions configures the optional parts of the router.
type RouterOptions struct {
	// SwaggerFile is served at /docs/swagger.yaml and shown at /swagger/index.html.
	// Empty disables Swagger UI.
	SwaggerFile  string
	AllowOrigins []string
	Logger       *zap.Logger
}

// SetupRouter builds the gin engine serving the catalog API.
func SetupRouter(projectHandler *ProjectHandler, opts RouterOptions) *gin.Engine {
	router := gin.New()

	corsConfig := cors.DefaultConfig()
	if len(opts.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = opts.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept"}
	router.Use(cors.New(corsConfig))

	if opts.Logger != nil {
		router.Use(ZapLoggerMiddleware(opts.Logger))
	}
	router.Use(MetricsMiddleware())
	router.Use(gin.Recovery())

	v1 := router.Group("/api/v1")
	{
		v1.GET("/projects", projectHandler.ListProjectsHandler)
		v1.GET("/projects/:id", projectHandler.GetProjectHandler)
		v1.GET("/projects/:id/stage", projectHandler.GetProjectStageHandler)
	}

	router.GET("/healthz", projectHandler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if opts.SwaggerFile != "" {
		router.StaticFile("/docs/swagger.yaml", opts.SwaggerFile)
		swaggerURL := ginSwagger.URL("/docs/swagger.yaml")
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, swaggerURL))
	}

	return router
}
