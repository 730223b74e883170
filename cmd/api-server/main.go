package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"novelhub/database"
	"novelhub/internal/cache"
	"novelhub/internal/config"
	"novelhub/internal/http-api/handler"
	"novelhub/internal/http-api/middleware"
	"novelhub/internal/http-api/repository"
	"novelhub/internal/http-api/service"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "could not load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	db, err := database.ConnectDB(cfg, logger)
	if err != nil {
		logger.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	// Redis is optional. Without it progress reads go straight to
	// postgres.
	hotProgress, err := cache.NewProgressCache(cfg.RedisAddr, cfg.RedisPassword)
	if err != nil {
		logger.Warn("redis unavailable, progress cache disabled", "error", err)
		hotProgress = nil
	} else {
		defer hotProgress.Close()
	}

	// Repositories
	novelRepo := repository.NewNovelRepo(db)
	genreRepo := repository.NewGenreRepo(db)
	chapterRepo := repository.NewChapterRepo(db)
	userRepo := repository.NewUserRepository(db)
	refreshTokenRepo := repository.NewRefreshTokenRepository(db)
	libraryRepo := repository.NewLibraryRepository(db)
	progressRepo := repository.NewProgressRepository(db)
	ratingRepo := repository.NewRatingRepository(db)
	prefsRepo := repository.NewNotificationPrefsRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, refreshTokenRepo, cfg)
	novelService := service.NewNovelService(novelRepo)
	genreService := service.NewGenreService(genreRepo)
	chapterService := service.NewChapterService(chapterRepo, novelRepo)
	searchService := service.NewSearchService(novelRepo, genreRepo)
	libraryService := service.NewLibraryService(libraryRepo, novelRepo)
	progressService := service.NewProgressService(progressRepo, novelRepo, hotProgress)
	ratingService := service.NewRatingService(ratingRepo, novelRepo)
	prefsService := service.NewNotificationPrefsService(prefsRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	novelHandler := handler.NewNovelHandler(novelService)
	genreHandler := handler.NewGenreHandler(genreService)
	chapterHandler := handler.NewChapterHandler(chapterService)
	searchHandler := handler.NewSearchHandler(searchService)
	libraryHandler := handler.NewLibraryHandler(libraryService)
	progressHandler := handler.NewProgressHandler(progressService)
	ratingHandler := handler.NewRatingHandler(ratingService)
	prefsHandler := handler.NewNotificationPrefsHandler(prefsService)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Public search endpoints with rate limiting
	searchGroup := r.Group("/")
	searchGroup.Use(middleware.RateLimit(cfg.SearchRateLimit, cfg.SearchRateBurst))
	searchHandler.RegisterRoutes(searchGroup)

	api := r.Group("/api")
	authHandler.RegisterRoutes(api.Group("/auth"))

	// Authenticated routes
	authed := api.Group("/")
	authed.Use(middleware.AuthMiddleware(authService))
	authed.GET("/auth/me", authHandler.Me)
	novelGroup := authed.Group("/novels")
	novelHandler.RegisterRoutes(novelGroup)
	chapterHandler.RegisterRoutes(novelGroup)
	ratingHandler.RegisterRoutes(novelGroup)
	genreHandler.RegisterRoutes(authed.Group("/genres"))
	libraryHandler.RegisterRoutes(authed.Group("/library"))
	progressHandler.RegisterRoutes(authed.Group("/progress"))
	prefsHandler.RegisterRoutes(authed.Group("/preferences"))

	addr := fmt.Sprintf(":%d", cfg.HTTPPort)
	logger.Info("starting http server", "addr", addr)
	if err := r.Run(addr); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newLogger(cfg *config.Config) *slog.Logger {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
