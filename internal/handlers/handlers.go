package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/james-ralph8555/tarot-daily/internal/config"
	"github.com/james-ralph8555/tarot-daily/internal/generation"
	"github.com/james-ralph8555/tarot-daily/internal/middleware"
	"github.com/james-ralph8555/tarot-daily/internal/repository"
	"github.com/james-ralph8555/tarot-daily/internal/service"
)

type HandlerSet struct {
	log            zerolog.Logger
	cfg            *config.AppConfig
	authService    *service.AuthService
	readingService *service.ReadingService
	db             *pgxpool.Pool
	cache          *redis.Client
	feedback       *repository.FeedbackRepository
	push           *repository.PushRepository
}

func NewHandlerSet(log zerolog.Logger, db *pgxpool.Pool, cache *redis.Client, cfg *config.AppConfig) HandlerSet {
	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	readingRepo := repository.NewReadingRepository(db)
	feedbackRepo := repository.NewFeedbackRepository(db)
	pushRepo := repository.NewPushRepository(db)

	completer := generation.NewClient(cfg.Generation, cfg.GenerationModel())
	auth := service.NewAuthService(userRepo, sessionRepo, cfg, log)
	reading := service.NewReadingService(readingRepo, completer, cache, cfg, log)

	return HandlerSet{
		log:            log,
		cfg:            cfg,
		authService:    auth,
		readingService: reading,
		db:             db,
		cache:          cache,
		feedback:       feedbackRepo,
		push:           pushRepo,
	}
}

func (h HandlerSet) Register(router *gin.RouterGroup) {
	router.GET("/healthz", h.Health)

	auth := router.Group("/auth")
	auth.POST("/register", h.RegisterUser)
	auth.POST("/login", h.Login)
	auth.POST("/logout", h.Logout)
	auth.GET("/session", h.SessionInfo)
	auth.POST("/csrf", middleware.Auth(h.authService), h.RotateCsrf)

	authed := router.Group("")
	authed.Use(middleware.Auth(h.authService))

	authed.GET("/reading", h.GetReading)
	authed.POST("/reading", middleware.Csrf(), h.CreateReading)
	authed.GET("/history", h.History)

	authed.GET("/feedback", h.GetFeedback)
	authed.POST("/feedback", middleware.Csrf(), h.SubmitFeedback)

	authed.POST("/push/subscribe", middleware.Csrf(), h.SubscribePush)
}
