package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"resto_ops_backend/internal/config"
	"resto_ops_backend/internal/controller"
	"resto_ops_backend/internal/repository"
	"resto_ops_backend/internal/service"
	"resto_ops_backend/pkg/database"
	"resto_ops_backend/pkg/logger"
	"resto_ops_backend/pkg/monitoring"
	"resto_ops_backend/pkg/security"
	"resto_ops_backend/pkg/tracing"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
	Redis  *redis.Client

	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	course     *repository.CourseRepository
	progress   *repository.ProgressRepository
	reflection *repository.ReflectionRepository
	cert       *repository.CertificateRepository
	journey    *repository.JourneyRepository
	value      *repository.ValueRepository
	inventory  *repository.InventoryRepository
	menu       *repository.MenuRepository
	shift      *repository.ShiftRepository
	compliance *repository.ComplianceRepository
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	course     *service.CourseService
	tier       *service.TierService
	cert       *service.CertificateService
	journey    *service.JourneyService
	progress   *service.ProgressService
	reflection *service.ReflectionService
	values     *service.ValuesService
	inventory  *service.InventoryService
	menu       *service.MenuService
	shift      *service.ShiftService
	compliance *service.ComplianceService
}

type controllers struct {
	auth       *controller.AuthController
	academy    *controller.AcademyController
	course     *controller.CourseController
	manager    *controller.ManagerController
	values     *controller.ValuesController
	inventory  *controller.InventoryController
	menu       *controller.MenuController
	shift      *controller.ShiftController
	compliance *controller.ComplianceController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ReloadConfig 配置热更新入口，仅分发给已注册的回调，
// 数据库连接等重资源不做热切换
func (a *App) ReloadConfig(cfg interface{}) {
	newCfg, ok := cfg.(*config.Config)
	if !ok {
		return
	}
	a.Config = newCfg
	for _, cb := range a.configCallbacks {
		cb(newCfg)
	}
	logger.Log.Info("Config reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		course:     repository.NewCourseRepository(db),
		progress:   repository.NewProgressRepository(db),
		reflection: repository.NewReflectionRepository(db),
		cert:       repository.NewCertificateRepository(db),
		journey:    repository.NewJourneyRepository(db),
		value:      repository.NewValueRepository(db),
		inventory:  repository.NewInventoryRepository(db),
		menu:       repository.NewMenuRepository(db),
		shift:      repository.NewShiftRepository(db),
		compliance: repository.NewComplianceRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, db *gorm.DB, rdb *redis.Client) (*services, error) {
	s := &services{}

	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}
	s.storage = storage

	s.auth = service.NewAuthService(repos.user, cfg)
	s.course = service.NewCourseService(repos.course, rdb)
	s.tier = service.NewTierService(repos.course, repos.progress)
	s.cert = service.NewCertificateService(repos.cert, repos.course, repos.progress, s.tier)
	s.journey = service.NewJourneyService(repos.journey)
	s.progress = service.NewProgressService(repos.course, repos.progress, s.tier, s.cert, s.journey)
	s.reflection = service.NewReflectionService(repos.reflection, repos.course, repos.value, s.progress)
	s.values = service.NewValuesService(repos.value, s.journey)
	s.inventory = service.NewInventoryService(repos.inventory, db)
	s.menu = service.NewMenuService(repos.menu, repos.inventory)
	s.shift = service.NewShiftService(repos.shift, repos.user)
	s.compliance = service.NewComplianceService(repos.compliance)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth, s.storage),
		academy:    controller.NewAcademyController(s.course, s.progress, s.tier, s.reflection, s.cert, s.journey),
		course:     controller.NewCourseController(s.course),
		manager:    controller.NewManagerController(s.cert, s.reflection, s.tier, s.auth),
		values:     controller.NewValuesController(s.values),
		inventory:  controller.NewInventoryController(s.inventory),
		menu:       controller.NewMenuController(s.menu),
		shift:      controller.NewShiftController(s.shift),
		compliance: controller.NewComplianceController(s.compliance, s.storage),
		health:     controller.NewHealthController(db, rdb),
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

	gin.SetMode(cfg.Server.Mode)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	if cfg.ForceMigrate || cfg.MigrateOnly {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
		database.Seed(db)
		if cfg.MigrateOnly {
			logger.Log.Info("Migration completed, exiting")
			os.Exit(0)
		}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services, err := app.initServices(repos, cfg, db, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	router := gin.New()
	router.Use(gin.Recovery())
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("resto-ops", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

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
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	logger.Log.Info("Server exiting")
	logger.Log.Sync()
}
