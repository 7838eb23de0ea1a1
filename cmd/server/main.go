package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sosfido/sosfido-api/internal/config"
	"github.com/sosfido/sosfido-api/internal/handler"
	"github.com/sosfido/sosfido-api/internal/middleware"
	"github.com/sosfido/sosfido-api/internal/model"
	"github.com/sosfido/sosfido-api/internal/repository"
	"github.com/sosfido/sosfido-api/internal/service"
	"github.com/sosfido/sosfido-api/migrations"
	"github.com/sosfido/sosfido-api/pkg/auth"
	"github.com/sosfido/sosfido-api/pkg/notification"
	"github.com/sosfido/sosfido-api/pkg/storage"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// @title           SOSFIDO API
// @version         1.0
// @description     Lost-and-found and adoption platform for pets: animal reports, adoption proposals and push notifications.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.email  support@sosfido.local

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      api.localhost
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting SOSFIDO API Server [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger: gormLogger,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Run Migrations ====================
	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("⚠️  Migration warning: %v", err)
		log.Println("📦 Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(
			&model.Account{},
			&model.Place{},
			&model.Person{},
			&model.AnimalReport{},
			&model.AdoptionProposal{},
			&model.AdoptionRequest{},
			&model.PersonImage{},
			&model.ReportImage{},
			&model.AdoptionImage{},
			&model.PersonDevice{},
			&model.AccessToken{},
		); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}
	log.Println("✅ Database migrated successfully")

	// ==================== Redis ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	ctx := context.Background()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== MinIO Storage ====================
	minioStorage, err := storage.NewMinIO(storage.Config{
		Endpoint:  cfg.MinIO.Endpoint,
		PublicURL: cfg.MinIO.PublicURL,
		AccessKey: cfg.MinIO.AccessKey,
		SecretKey: cfg.MinIO.SecretKey,
		Bucket:    cfg.MinIO.Bucket,
		UseSSL:    cfg.MinIO.UseSSL,
	})
	if err != nil {
		log.Fatalf("❌ MinIO not available: %v", err)
	}
	log.Println("✅ Connected to MinIO")

	// ==================== Initialize Layers ====================
	revocation := auth.NewRedisRevocationList(rdb)
	sessions := auth.NewSessionManager(cfg.App.SessionSecret, cfg.OAuth.TokenTTL)
	dispatcher := notification.NewDispatcher(notification.Config{
		Endpoint: cfg.Push.Endpoint,
		AppID:    cfg.Push.AppID,
		APIKey:   cfg.Push.APIKey,
	})

	// Repositories
	accountRepo := repository.NewAccountRepository(db)
	personRepo := repository.NewPersonRepository(db)
	placeRepo := repository.NewPlaceRepository(db)
	reportRepo := repository.NewReportRepository(db)
	proposalRepo := repository.NewProposalRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	imageRepo := repository.NewImageRepository(db)
	deviceRepo := repository.NewDeviceRepository(db)
	tokenRepo := repository.NewTokenRepository(db)

	// Services
	authService := service.NewAuthService(
		accountRepo, personRepo, placeRepo, tokenRepo, revocation,
		cfg.OAuth.ClientID, cfg.OAuth.Scope, cfg.OAuth.TokenTTL,
	)
	personService := service.NewPersonService(personRepo, imageRepo)
	reportService := service.NewReportService(reportRepo, placeRepo, imageRepo)
	adoptionService := service.NewAdoptionService(proposalRepo, requestRepo, imageRepo, deviceRepo, dispatcher)
	imageService := service.NewImageService(imageRepo, minioStorage)
	deviceService := service.NewDeviceService(deviceRepo)

	// Handlers
	authHandler := handler.NewAuthHandler(authService, sessions)
	personHandler := handler.NewPersonHandler(personService, placeRepo)
	reportHandler := handler.NewReportHandler(reportService)
	adoptionHandler := handler.NewAdoptionHandler(adoptionService)
	imageHandler := handler.NewImageHandler(imageService)
	deviceHandler := handler.NewDeviceHandler(deviceService)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Swagger configuration
	// Serve swagger.json at /docs/swagger.json to avoid conflict with /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")

	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Home / health check
	home := func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "sosfido-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	}
	router.GET("/", home)
	router.GET("/health", home)

	// ==================== API Routes ====================
	// Credential endpoints (public)
	router.POST("/register-api", authHandler.Register)
	router.POST("/login-api", authHandler.Login)
	router.GET("/login", authHandler.ValidateLogin)
	router.POST("/update-password-api", authHandler.UpdatePassword)
	router.POST("/find-user-api", authHandler.FindUser)

	// Resource endpoints (bearer token)
	protected := router.Group("")
	protected.Use(middleware.AuthMiddleware(tokenRepo, revocation))
	{
		protected.POST("/logout-api", authHandler.Logout)

		// Persons and places
		protected.GET("/person-api", personHandler.ListPersons)
		protected.GET("/person-api/:id", personHandler.GetPerson)
		protected.PATCH("/person-api/:id", personHandler.UpdatePerson)
		protected.GET("/location-api", personHandler.ListPlaces)

		// Animal reports
		protected.GET("/animal-report-api", reportHandler.ListReports)
		protected.POST("/animal-report-api", reportHandler.CreateReport)
		protected.GET("/animal-report-api/:id", reportHandler.GetReport)
		protected.PATCH("/animal-report-api/:id", reportHandler.UpdateReport)
		protected.DELETE("/animal-report-api/:id", reportHandler.DeleteReport)

		// Adoption proposals
		protected.GET("/adoption-proposal-api", adoptionHandler.ListProposals)
		protected.POST("/adoption-proposal-api", adoptionHandler.CreateProposal)
		protected.GET("/adoption-proposal-api/:id", adoptionHandler.GetProposal)
		protected.PATCH("/adoption-proposal-api/:id", adoptionHandler.UpdateProposal)
		protected.DELETE("/adoption-proposal-api/:id", adoptionHandler.DeleteProposal)

		// Adoption requests
		protected.GET("/adoption-request-api", adoptionHandler.ListRequests)
		protected.POST("/adoption-request-api", adoptionHandler.CreateRequest)
		protected.GET("/adoption-request-api/:id", adoptionHandler.GetRequest)
		protected.PATCH("/adoption-request-api/:id", adoptionHandler.UpdateRequest)
		protected.DELETE("/adoption-request-api/:id", adoptionHandler.DeleteRequest)

		// Images
		protected.POST("/person-image-api", imageHandler.CreatePersonImage)
		protected.GET("/person-image-api/:person_id", imageHandler.GetPersonImage)
		protected.PATCH("/person-image-api/:person_id", imageHandler.UpdatePersonImage)
		protected.POST("/report-image-api", imageHandler.CreateReportImage)
		protected.GET("/report-image-api/:report_id", imageHandler.GetReportImage)
		protected.PATCH("/report-image-api/:report_id", imageHandler.UpdateReportImage)
		protected.POST("/adoption-image-api", imageHandler.CreateAdoptionImage)
		protected.GET("/adoption-image-api/:adoption_id", imageHandler.GetAdoptionImage)
		protected.PATCH("/adoption-image-api/:adoption_id", imageHandler.UpdateAdoptionImage)

		// Devices
		protected.GET("/person-device-api", deviceHandler.ListDevices)
		protected.POST("/person-device-api", deviceHandler.CreateDevice)
		protected.GET("/person-device-api/:id", deviceHandler.GetDevice)
		protected.PATCH("/person-device-api/:id", deviceHandler.UpdateDevice)
	}

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 SOSFIDO API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)
	log.Printf("📄 Swagger JSON: http://0.0.0.0:%s/docs/swagger.json", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server exited gracefully")
}
