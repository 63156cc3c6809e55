package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"statstory-backend-go/internal/aiclient"
	"statstory-backend-go/internal/api"
	"statstory-backend-go/internal/config"
	"statstory-backend-go/internal/core"
	"statstory-backend-go/internal/db"
	"statstory-backend-go/internal/firebase"
	"statstory-backend-go/internal/imagegen"
	"statstory-backend-go/internal/vision"
)

func newLogger(appConfig *config.Config) (*zap.Logger, error) {
	if appConfig.IsProduction() {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}

func main() {
	startedAt := time.Now()

	// --- 1. Configuration and logger ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to load application configuration: %v", err)
	}

	zapLogger, err := newLogger(appConfig)
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()
	zapLogger.Info("Application configuration loaded",
		zap.String("environment", appConfig.AppEnv),
		zap.String("version", appConfig.AppVersion),
	)

	// --- 2. Firebase Admin SDK (Firestore + Auth) ---
	initCtx, cancelInit := context.WithTimeout(context.Background(), 15*time.Second)
	clients, err := firebase.InitFirebase(initCtx, appConfig, zapLogger)
	cancelInit()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firebase Admin SDK", zap.Error(err))
	}

	// --- 3. Repositories ---
	userRepo := db.NewFirestoreUserRepository(clients.Firestore)
	saveRepo := db.NewFirestoreSaveRepository(clients.Firestore)
	eventRepo := db.NewFirestoreEventRepository(clients.Firestore)
	postRepo := db.NewFirestorePostRepository(clients.Firestore)

	// --- 4. Providers and services ---
	openaiClient := aiclient.NewClient(appConfig, &http.Client{})

	pipeline := imagegen.NewPipeline(
		openaiClient,
		imagegen.DefaultStyleCatalog(),
		&http.Client{Timeout: appConfig.ProviderTimeout},
		imagegen.Config{
			Model:       appConfig.ImageModel,
			Size:        appConfig.ImageSize,
			Quality:     appConfig.ImageQuality,
			EditTimeout: appConfig.ImageEditTimeout,
		},
		zapLogger.Named("imagegen"),
	)
	analyzer := vision.NewAnalyzer(openaiClient, appConfig.VisionModel, zapLogger.Named("vision"))

	services := api.Services{
		Auth:   core.NewAuthService(clients.Auth, userRepo, time.Now, zapLogger.Named("auth")),
		Users:  core.NewUserService(userRepo),
		Saves:  core.NewSaveService(saveRepo, time.Now),
		Events: core.NewEventService(eventRepo, saveRepo, time.Now),
		Posts:  core.NewPostService(postRepo, saveRepo, time.Now),
		Images: pipeline,
		Vision: analyzer,
	}

	// --- 5. HTTP engine ---
	if appConfig.IsRelease() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := api.NewRouter(appConfig, zapLogger, clients.Auth, services, startedAt)

	httpServer := &http.Server{
		Addr:              net.JoinHostPort("", appConfig.Port),
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
	}

	go func() {
		zapLogger.Info("Starting HTTP server", zap.String("address", httpServer.Addr), zap.String("ginMode", gin.Mode()))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 6. Graceful shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), appConfig.ShutdownTimeout)
	defer cancelShutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Graceful shutdown did not complete", zap.Error(err))
	}
	if err := clients.Close(); err != nil {
		zapLogger.Warn("Failed to close Firestore client", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
