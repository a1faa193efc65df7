package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"truth_buddy_backend/internal/config"
	"truth_buddy_backend/internal/controller"
	"truth_buddy_backend/internal/middleware"
	"truth_buddy_backend/internal/repository"
	"truth_buddy_backend/internal/service"
	"truth_buddy_backend/internal/session"
	"truth_buddy_backend/pkg/database"
	"truth_buddy_backend/pkg/localstore"
	"truth_buddy_backend/pkg/logger"
	"truth_buddy_backend/pkg/monitoring"
	"truth_buddy_backend/pkg/security"
	"truth_buddy_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config   *config.Config
	Router   *gin.Engine
	DB       *gorm.DB
	Redis    *redis.Client
	Store    *localstore.Store
	Selector *repository.Selector
	services *services
}

type repositories struct {
	user         *repository.UserRepository
	question     *repository.QuestionRepository
	answer       *repository.UserAnswerRepository
	verification *repository.VerificationRequestRepository
}

type services struct {
	storage      *service.StorageService
	user         *service.UserService
	question     *service.QuestionService
	answer       *service.AnswerService
	leaderboard  *service.LeaderboardService
	verification *service.VerificationService
}

type controllers struct {
	auth         *controller.AuthController
	user         *controller.UserController
	question     *controller.QuestionController
	answer       *controller.AnswerController
	leaderboard  *controller.LeaderboardController
	verification *controller.VerificationController
	health       *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB, store *localstore.Store, selector *repository.Selector, cache *session.Cache) *repositories {
	return &repositories{
		user:         repository.NewUserRepository(db, store, selector, cache),
		question:     repository.NewQuestionRepository(db, store, selector),
		answer:       repository.NewUserAnswerRepository(db, store, selector),
		verification: repository.NewVerificationRequestRepository(db, store, selector),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.user = service.NewUserService(repos.user, repos.answer)
	s.question = service.NewQuestionService(repos.question)
	s.answer = service.NewAnswerService(repos.user, repos.question, repos.answer)
	s.leaderboard = service.NewLeaderboardService(repos.user)
	s.verification = service.NewVerificationService(repos.verification, repos.user, s.storage)

	return s
}

func (a *App) initControllers(s *services) *controllers {
	return &controllers{
		auth:         controller.NewAuthController(s.user),
		user:         controller.NewUserController(s.user),
		question:     controller.NewQuestionController(s.question),
		answer:       controller.NewAnswerController(s.answer),
		leaderboard:  controller.NewLeaderboardController(s.leaderboard),
		verification: controller.NewVerificationController(s.verification),
		health:       controller.NewHealthController(a.Selector),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(middleware.RequestLogger())
	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	// Both backing services are optional. A missing database sends the
	// repositories to the local fallback store; missing redis leaves the
	// session cache in-memory only.
	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Warn("database unavailable, continuing with fallback store", zap.Error(err))
		db = nil
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Warn("redis unavailable, session cache is in-memory only", zap.Error(err))
		rdb = nil
	}

	store, err := localstore.New(cfg.Fallback.DataDir)
	if err != nil {
		logger.Log.Fatal("failed to open fallback store", zap.Error(err))
	}

	selector := repository.NewSelector(&repository.DatabaseProber{DB: db})

	app := &App{
		Config:   cfg,
		DB:       db,
		Redis:    rdb,
		Store:    store,
		Selector: selector,
	}

	cache := session.NewCache(rdb)
	repos := app.initRepositories(db, store, selector, cache)
	services := app.initServices(repos, cfg)
	app.services = services
	controllers := app.initControllers(services)

	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("truth-buddy", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Error("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	services.question.EnsureSeeded(context.Background())

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("server exiting")
}
