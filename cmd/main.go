package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/ryan-the-brodsky/tastemaker/internal/clients/openai"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/redis"
	"github.com/ryan-the-brodsky/tastemaker/internal/clients/vision"
	"github.com/ryan-the-brodsky/tastemaker/internal/db"
	"github.com/ryan-the-brodsky/tastemaker/internal/handlers"
	"github.com/ryan-the-brodsky/tastemaker/internal/logger"
	"github.com/ryan-the-brodsky/tastemaker/internal/middleware"
	"github.com/ryan-the-brodsky/tastemaker/internal/observability"
	"github.com/ryan-the-brodsky/tastemaker/internal/repos"
	"github.com/ryan-the-brodsky/tastemaker/internal/server"
	"github.com/ryan-the-brodsky/tastemaker/internal/services"
	"github.com/ryan-the-brodsky/tastemaker/internal/utils"
)

func main() {
	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Tracing
	shutdownTracing := observability.InitOTel(context.Background(), log, observability.OtelConfig{
		ServiceName: "tastemaker",
		Environment: os.Getenv("APP_ENV"),
		Version:     os.Getenv("APP_VERSION"),
	})
	if shutdownTracing != nil {
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdownTracing(ctx)
		}()
	}

	// Env
	log.Info("Loading environment variables from main...")
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTL := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	refreshTokenTTL := utils.GetEnvAsInt("REFRESH_TOKEN_TTL", 86400, log)

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Repos
	log.Info("Setting up Repos from main...")
	userRepo := repos.NewUserRepo(thePG, log)
	userTokenRepo := repos.NewUserTokenRepo(thePG, log)
	sessionRepo := repos.NewSessionRepo(thePG, log)
	comparisonRepo := repos.NewComparisonResultRepo(thePG, log)
	styleRuleRepo := repos.NewStyleRuleRepo(thePG, log)
	studioChoiceRepo := repos.NewStudioChoiceRepo(thePG, log)
	recordingRepo := repos.NewRecordingRepo(thePG, log)

	// Clients
	log.Info("Setting up Clients from main...")
	aiClient, err := openai.NewClient(log)
	if err != nil {
		log.Warn("OpenAI client unavailable, AI features run in fallback mode", "error", err)
		aiClient = nil
	}
	var extractor vision.Extractor
	if aiClient != nil {
		extractor = vision.NewExtractor(log, aiClient)
	}
	eventBus, err := redis.NewEventBus(log)
	if err != nil {
		log.Warn("Redis event bus unavailable, events disabled", "error", err)
		eventBus = nil
	}
	if eventBus != nil {
		if err := eventBus.StartForwarder(context.Background(), func(e redis.Event) {
			log.Info("recording event", "type", e.Type, "session_id", e.SessionID, "recording_id", e.RecordingID, "status", e.Status)
		}); err != nil {
			log.Warn("Event forwarder failed to start", "error", err)
		}
	}

	// Services
	log.Info("Setting up Services from main...")
	authService := services.NewAuthService(thePG, log, userRepo, userTokenRepo, jwtSecretKey, time.Duration(accessTokenTTL)*time.Second, time.Duration(refreshTokenTTL)*time.Second)
	sessionService := services.NewSessionService(thePG, log, sessionRepo, comparisonRepo, styleRuleRepo)
	comparisonService := services.NewComparisonService(thePG, log, sessionRepo, comparisonRepo)
	explorationService := services.NewExplorationService(thePG, log, sessionRepo, aiClient)
	studioService := services.NewStudioService(thePG, log, sessionRepo, studioChoiceRepo, styleRuleRepo)
	ruleService := services.NewRuleService(thePG, log, sessionRepo, comparisonRepo, styleRuleRepo)
	auditService := services.NewAuditService(log, sessionRepo, styleRuleRepo, extractor)
	recordingService := services.NewRecordingService(thePG, log, sessionRepo, recordingRepo, extractor, eventBus)

	// Handlers
	log.Info("Setting up handlers from main...")
	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	comparisonHandler := handlers.NewComparisonHandler(comparisonService)
	explorationHandler := handlers.NewExplorationHandler(explorationService)
	studioHandler := handlers.NewStudioHandler(studioService)
	ruleHandler := handlers.NewRuleHandler(ruleService)
	auditHandler := handlers.NewAuditHandler(auditService)
	recordingHandler := handlers.NewRecordingHandler(recordingService)

	// Middleware
	log.Info("Setting up middleware from main...")
	authMiddleware := middleware.NewAuthMiddleware(log, authService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		AuthHandler:        authHandler,
		AuthMiddleware:     authMiddleware,
		SessionHandler:     sessionHandler,
		ComparisonHandler:  comparisonHandler,
		ExplorationHandler: explorationHandler,
		StudioHandler:      studioHandler,
		RuleHandler:        ruleHandler,
		AuditHandler:       auditHandler,
		RecordingHandler:   recordingHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	fmt.Printf("Server listening on :%s\n", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
