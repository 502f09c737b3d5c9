package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/disaster_dashboard/internal/config"
	v1 "github.com/shenikar/disaster_dashboard/internal/handler/http/v1"
	"github.com/shenikar/disaster_dashboard/internal/mapview"
	"github.com/shenikar/disaster_dashboard/internal/modal"
	"github.com/shenikar/disaster_dashboard/internal/models"
	"github.com/shenikar/disaster_dashboard/internal/repository"
	"github.com/shenikar/disaster_dashboard/internal/seed"
	"github.com/shenikar/disaster_dashboard/internal/service"
	"github.com/shenikar/disaster_dashboard/internal/webhook"
	"github.com/shenikar/disaster_dashboard/pkg/logger"
	"github.com/shenikar/disaster_dashboard/pkg/postgres"
	redisclient "github.com/shenikar/disaster_dashboard/pkg/redis"

	_ "github.com/shenikar/disaster_dashboard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Disaster Dashboard API
// @version 1.0
// @description Coordination dashboard for disaster response: incidents, tasks, volunteers, reports and map.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

// seedData начальные записи; при SEED_MOCK_DATA=false хранилища стартуют пустыми
func seedData(cfg *config.Config) ([]models.Incident, []models.Task, []models.Volunteer) {
	if !cfg.SeedMockData {
		return nil, nil, nil
	}
	return seed.Incidents(), seed.Tasks(), seed.Volunteers()
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента, только если он кому-то нужен
	var redisClient *goredis.Client
	if cfg.NeedsRedis() {
		redisClient, err = redisclient.NewRedisClient(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")
	}

	// Хранилище профиля оператора
	var profileRepo service.ProfileRepository
	switch cfg.ProfileStore {
	case config.ProfileStorePostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}
		dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")
		profileRepo = repository.NewPostgresProfileRepository(dbpool)
	case config.ProfileStoreRedis:
		profileRepo = repository.NewRedisProfileRepository(redisClient)
	default:
		profileRepo = repository.NewMemoryProfileRepository()
	}
	log.WithField("store", cfg.ProfileStore).Info("Profile store selected")

	// Издатель событий изменений и воркер вебхуков
	var publisher webhook.Publisher = webhook.NopPublisher{}
	var webhookWorker *webhook.Worker
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisPublisher(redisClient)
		webhookWorker = webhook.NewWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, change events are not delivered")
	}

	// Инициализация репозиториев
	incidentSeed, taskSeed, volunteerSeed := seedData(cfg)
	incidentRepo := repository.NewIncidentRepository(incidentSeed)
	taskRepo := repository.NewTaskRepository(taskSeed)
	volunteerRepo := repository.NewVolunteerRepository(volunteerSeed)

	// Инициализация сервисов
	tiles := mapview.TileLayer{URLTemplate: cfg.MapTileURL, Attribution: cfg.MapAttribution}
	modalService := service.NewModalService(modal.New(cfg.ModalClearDelay), incidentRepo, taskRepo, volunteerRepo, log)
	defer modalService.Stop()

	services := v1.Services{
		Incidents:  service.NewIncidentService(incidentRepo, log, publisher, cfg.IncidentsPageSize),
		Tasks:      service.NewTaskService(taskRepo, incidentRepo, log, publisher),
		Volunteers: service.NewVolunteerService(volunteerRepo, log, publisher),
		Profile:    service.NewProfileService(profileRepo, log),
		Reports:    service.NewReportService(incidentRepo, taskRepo, volunteerRepo, log),
		Map:        service.NewMapService(tiles, incidentRepo, taskRepo, log),
		Modals:     modalService,
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Останавливаем воркер и ждем завершения текущей доставки
	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
}
