package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statstory-backend-go/internal/config"
	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/middleware"
)

// Services groups the domain services the routes depend on.
type Services struct {
	Auth   core.AuthService
	Users  core.UserService
	Saves  core.SaveService
	Events core.EventService
	Posts  core.PostService
	Images core.ImageGenerator
	Vision core.TraitAnalyzer
}

// NewRouter builds the gin engine with the global middleware chain and all routes.
func NewRouter(appConfig *config.Config, logger *zap.Logger, verifier middleware.TokenVerifier, services Services, startedAt time.Time) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware(logger, !appConfig.IsProduction()))
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(appConfig.ClientURL))
	router.Use(middleware.BodyLimit(appConfig.MaxBodyBytes))

	SetupRoutes(router, appConfig, logger, verifier, services, startedAt)
	return router
}

// SetupRoutes registers every endpoint on router. Global middleware is
// expected to be installed already.
func SetupRoutes(
	router *gin.Engine,
	appConfig *config.Config,
	logger *zap.Logger,
	verifier middleware.TokenVerifier,
	services Services,
	startedAt time.Time,
) {
	errs := errorResponder{logger: logger, exposeDetails: !appConfig.IsProduction()}
	authMW := middleware.NewAuthMiddleware(verifier, !appConfig.IsProduction(), logger)

	authHandler := NewAuthHandler(services.Auth, errs)
	userHandler := NewUserHandler(services.Users, errs)
	saveHandler := NewSaveHandler(services.Saves, errs)
	eventHandler := NewEventHandler(services.Events, errs)
	postHandler := NewPostHandler(services.Posts, errs)
	imageHandler := NewImageHandler(services.Images, services.Vision, errs, logger)
	systemHandler := NewSystemHandler(appConfig, startedAt, time.Now)

	router.GET("/", systemHandler.Root)

	apiGroup := router.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/anonymous", authHandler.CreateAnonymousUser)
			authGroup.POST("/token", authHandler.SignInWithToken)
		}

		apiGroup.GET("/users/me", authMW.Required(), userHandler.GetCurrentUser)

		saves := apiGroup.Group("/saves", authMW.Required())
		{
			saves.GET("", saveHandler.ListSaves)
			saves.POST("", saveHandler.CreateSave)
			saves.GET("/:saveId", saveHandler.GetSave)
			saves.PUT("/:saveId", saveHandler.UpdateSave)
			saves.DELETE("/:saveId", saveHandler.DeleteSave)

			saves.GET("/:saveId/events", eventHandler.ListEvents)
			saves.POST("/:saveId/events", eventHandler.CreateEvent)
			saves.GET("/:saveId/events/:eventId", eventHandler.GetEvent)
			saves.PUT("/:saveId/events/:eventId", eventHandler.UpdateEvent)
			saves.DELETE("/:saveId/events/:eventId", eventHandler.DeleteEvent)

			saves.GET("/:saveId/posts", postHandler.ListPosts)
			saves.POST("/:saveId/posts", postHandler.CreatePost)
			saves.GET("/:saveId/posts/:postId", postHandler.GetPost)
			saves.PUT("/:saveId/posts/:postId", postHandler.UpdatePost)
			saves.DELETE("/:saveId/posts/:postId", postHandler.DeletePost)
		}

		images := apiGroup.Group("/images", authMW.Required())
		{
			images.POST("/generate", imageHandler.GenerateImage)
			images.POST("/analyze", imageHandler.AnalyzeImage)
		}

		apiGroup.GET("/health", systemHandler.Health)
		apiGroup.GET("/test/ping", authMW.Optional(), systemHandler.Ping)
	}

	router.NoRoute(systemHandler.NotFound)

	logger.Info("API routes configured", zap.Int("routes", len(router.Routes())))
}
