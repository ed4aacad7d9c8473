package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruiter_hub_backend/internal/config"
	"recruiter_hub_backend/internal/controller"
	"recruiter_hub_backend/internal/repository"
	"recruiter_hub_backend/internal/service"
	"recruiter_hub_backend/pkg/database"
	"recruiter_hub_backend/pkg/logger"
	"recruiter_hub_backend/pkg/monitoring"
	"recruiter_hub_backend/pkg/security"
	"recruiter_hub_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user           *repository.UserRepository
	content        *repository.ContentRepository
	progress       *repository.ProgressRepository
	question       *repository.QuestionRepository
	answer         *repository.AnswerRepository
	kudos          *repository.KudosRepository
	point          *repository.PointRepository
	learningPath   *repository.LearningPathRepository
	contentRequest *repository.ContentRequestRepository
}

type services struct {
	auth           *service.AuthService
	points         *service.PointsService
	content        *service.ContentService
	progress       *service.ProgressService
	qa             *service.QAService
	learningPath   *service.LearningPathService
	kudos          *service.KudosService
	leaderboard    *service.LeaderboardService
	user           *service.UserService
	ai             *service.AIService
	storage        *service.StorageService
	contentRequest *service.ContentRequestService
}

type controllers struct {
	auth           *controller.AuthController
	content        *controller.ContentController
	qa             *controller.QAController
	learningPath   *controller.LearningPathController
	kudos          *controller.KudosController
	leaderboard    *controller.LeaderboardController
	user           *controller.UserController
	ai             *controller.AIController
	contentRequest *controller.ContentRequestController
	upload         *controller.UploadController
	health         *controller.HealthController
}

// RegisterConfigCallback hooks a listener into config hot reloads.
func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig fans a reloaded config out to registered listeners.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:           repository.NewUserRepository(db),
		content:        repository.NewContentRepository(db),
		progress:       repository.NewProgressRepository(db),
		question:       repository.NewQuestionRepository(db),
		answer:         repository.NewAnswerRepository(db),
		kudos:          repository.NewKudosRepository(db),
		point:          repository.NewPointRepository(db),
		learningPath:   repository.NewLearningPathRepository(db),
		contentRequest: repository.NewContentRequestRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.points = service.NewPointsService(db)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.content = service.NewContentService(repos.content, repos.progress)
	s.progress = service.NewProgressService(db, repos.content, s.points)
	s.qa = service.NewQAService(db, repos.question, repos.answer, s.points)
	s.learningPath = service.NewLearningPathService(repos.learningPath, repos.content, repos.progress)
	s.kudos = service.NewKudosService(db, repos.kudos, repos.user, s.points)
	s.leaderboard = service.NewLeaderboardService(repos.user, repos.content, repos.progress, repos.answer, repos.question, rdb)
	s.user = service.NewUserService(repos.user, repos.content, repos.progress, repos.question, repos.answer, repos.point, repos.kudos)
	s.contentRequest = service.NewContentRequestService(repos.contentRequest)

	s.ai = service.NewAIService(cfg.AI, repos.content)
	a.RegisterConfigCallback(func(newCfg *config.Config) {
		s.ai.SetConfig(newCfg.AI)
	})

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:           controller.NewAuthController(s.auth),
		content:        controller.NewContentController(s.content, s.progress),
		qa:             controller.NewQAController(s.qa),
		learningPath:   controller.NewLearningPathController(s.learningPath),
		kudos:          controller.NewKudosController(s.kudos),
		leaderboard:    controller.NewLeaderboardController(s.leaderboard),
		user:           controller.NewUserController(s.user),
		ai:             controller.NewAIController(s.ai),
		contentRequest: controller.NewContentRequestController(s.contentRequest),
		upload:         controller.NewUploadController(s.storage),
		health:         controller.NewHealthController(db),
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

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	// AutoMigrate runs in debug mode or when forced from the command line.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		logger.Log.Info("Database migration completed")
	}

	if cfg.Server.Mode == "debug" {
		if err := database.SeedDemoData(db); err != nil {
			logger.Log.Warn("Failed to seed demo data", zap.Error(err))
		}
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, db, rdb)
	app.services = services
	controllers := app.initControllers(services, db)

	monitoring.Init()

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("recruiter-hub", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Sync()
	log.Println("Server exiting")
}
