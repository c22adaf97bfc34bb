package server

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"supercopa.app/backend/internal/cache"
	"supercopa.app/backend/internal/config"
	"supercopa.app/backend/internal/handler"
	"supercopa.app/backend/internal/middleware"
	"supercopa.app/backend/internal/push"
	"supercopa.app/backend/internal/repository"
	"supercopa.app/backend/internal/service"
	"supercopa.app/backend/internal/vision"
	"supercopa.app/backend/pkg/storage"
)

type Server struct {
	engine      *gin.Engine
	db          *gorm.DB
	redisClient *redis.Client
	auth        service.AuthService
	visits      service.VisitService
	shell       *cache.Manager
	analyzer    vision.Analyzer
	cfg         *config.Config
}

func NewServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *Server {
	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Printf("banner upload disabled: %v", err)
		imageStorage = nil
	}

	meiliHost := cfg.MeiliSearchHost
	if !strings.HasPrefix(meiliHost, "http") {
		meiliHost = "http://" + meiliHost + ":7700"
	}
	meiliClient := meilisearch.New(meiliHost, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	searchSvc := service.NewSearchService(meiliClient)

	var analyzer vision.Analyzer
	if cfg.GeminiAPIKey != "" {
		analyzer, err = vision.NewGeminiAnalyzer(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
		if err != nil {
			log.Printf("scoreboard import disabled: %v", err)
		}
	} else {
		log.Println("GEMINI_API_KEY is not set, scoreboard import disabled")
	}

	adminRepo := repository.NewAdminRepository(db)
	rankingRepo := repository.NewRankingRepository(db)
	ruleRepo := repository.NewRuleRepository(db)
	awardRepo := repository.NewAwardRepository(db)
	configRepo := repository.NewConfigRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	authSvc := service.NewAuthService(adminRepo, cfg.JWTSecret, cfg.JWTTTL)
	authHandler := handler.NewAuthHandler(authSvc)

	rankingSvc := service.NewRankingService(rankingRepo, searchSvc)
	configSvc := service.NewConfigService(configRepo, imageStorage, cfg.CloudinaryUploadFolder)
	scoreboardSvc := service.NewScoreboardService(analyzer, rankingSvc, configSvc)
	rankingHandler := handler.NewRankingHandler(rankingSvc, scoreboardSvc, searchSvc)

	rulesSvc := service.NewRulesService(ruleRepo)
	rulesHandler := handler.NewRulesHandler(rulesSvc)

	awardsSvc := service.NewAwardsService(awardRepo)
	awardsHandler := handler.NewAwardsHandler(awardsSvc)

	visitSvc := service.NewVisitService(redisClient, configRepo)
	visitHandler := handler.NewVisitHandler(visitSvc)

	configHandler := handler.NewConfigHandler(configSvc, visitSvc)

	gateway := push.NewGateway(redisClient)
	notificationSvc := service.NewNotificationService(notificationRepo, gateway)
	notificationHandler := handler.NewNotificationHandler(notificationSvc, gateway)

	shellManager := cache.NewManager(
		cache.NewRedisStore(redisClient),
		cache.NewDirOrigin(cfg.ShellDir),
		cfg.ShellVersion,
	)
	shellHandler := handler.NewShellHandler(shellManager)

	router := gin.New()
	setupCORS(router, cfg.AllowedOrigins)
	router.Use(gin.Recovery())
	router.Use(gin.Logger())

	authMiddleware := middleware.NewAuthMiddleware(adminRepo, cfg.JWTSecret)

	// App shell, served cache-first.
	router.GET("/", shellHandler.Serve)
	router.GET("/index.html", shellHandler.Serve)
	router.GET("/manifest.json", shellHandler.Serve)

	api := router.Group("/api")

	// Public routes (no auth required)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/ranking", rankingHandler.GetRanking)
	api.GET("/ranking/search", rankingHandler.SearchTeams)
	api.GET("/rules", rulesHandler.GetRules)
	api.GET("/awards", awardsHandler.GetAwards)
	api.GET("/config", configHandler.GetConfig)
	api.GET("/notifications", notificationHandler.History)
	api.GET("/notifications/ws", notificationHandler.Stream)
	api.GET("/cache/status", shellHandler.Status)
	api.POST("/visits", visitHandler.RecordVisit)

	// Admin routes
	admin := api.Group("/admin")
	admin.Use(authMiddleware.RequireAdmin())
	{
		admin.PUT("/ranking", rankingHandler.SaveRanking)
		admin.POST("/ranking/import", rankingHandler.ImportScoreboards)
		admin.PUT("/rules", rulesHandler.SaveRules)
		admin.PUT("/awards", awardsHandler.SaveAwards)
		admin.PUT("/config", configHandler.UpdateConfig)
		admin.PUT("/scoring", configHandler.UpdateScoring)
		admin.POST("/banner", configHandler.UploadBanner)
		admin.POST("/notifications", notificationHandler.Send)
		admin.POST("/notifications/test", notificationHandler.SendTest)
		admin.DELETE("/notifications/:id", notificationHandler.Delete)
		admin.POST("/cache/refresh", shellHandler.Refresh)
	}

	return &Server{
		engine:      router,
		db:          db,
		redisClient: redisClient,
		auth:        authSvc,
		visits:      visitSvc,
		shell:       shellManager,
		analyzer:    analyzer,
		cfg:         cfg,
	}
}

// Bootstrap runs the startup work that needs live backends: first-boot
// admin seeding, shell cache install/activate and the visit flush worker.
func (s *Server) Bootstrap(ctx context.Context) error {
	if err := s.auth.EnsureAdmin(ctx, s.cfg.AdminUsername, s.cfg.AdminPassword); err != nil {
		return err
	}

	if s.redisClient != nil {
		if err := s.shell.Install(ctx); err != nil {
			log.Printf("shell cache install failed, serving from origin: %v", err)
		} else if err := s.shell.Activate(ctx); err != nil {
			log.Printf("shell cache activate failed: %v", err)
		}

		go s.visits.Run(context.Background(), s.cfg.VisitSyncInterval)
	}

	return nil
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

func (s *Server) Close() {
	if s.analyzer != nil {
		s.analyzer.Close()
	}
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	if allowedOrigins != "" {
		origins = strings.Split(allowedOrigins, ",")
	} else {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
