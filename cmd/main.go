package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/shenikar/wildfire_sync_engine/internal/config"
	"github.com/shenikar/wildfire_sync_engine/internal/gateway"
	"github.com/shenikar/wildfire_sync_engine/internal/geosearch"
	v1 "github.com/shenikar/wildfire_sync_engine/internal/handler/http/v1"
	"github.com/shenikar/wildfire_sync_engine/internal/lifecycle"
	"github.com/shenikar/wildfire_sync_engine/internal/location"
	"github.com/shenikar/wildfire_sync_engine/internal/session"
	"github.com/shenikar/wildfire_sync_engine/internal/stats"
	"github.com/shenikar/wildfire_sync_engine/internal/store"
	"github.com/shenikar/wildfire_sync_engine/pkg/logger"
	redisclient "github.com/shenikar/wildfire_sync_engine/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/wildfire_sync_engine/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Wildfire Incident Sync Engine API
// @version 1.0
// @description Synchronization engine for wildfire incident reporting: incident views, notifications, sessions and report location.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст приложения: останавливает движки уведомлений при завершении
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация Redis клиента (кэш поиска городов)
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB, cfg.RedisPoolSize)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Клиент backend API
	backend := gateway.NewClient(cfg, log)

	// Локальное хранилище выборки инцидентов
	incidentStore := store.NewIncidentStore(backend, log, cfg)

	// Контроллер жизненного цикла инцидентов
	lifecycleCtrl := lifecycle.NewController(backend, incidentStore, log)

	// Сервис статистики
	statsService := stats.NewService(backend, log, cfg)

	// Клиент гео-поиска с кэшем
	geoClient := geosearch.NewClient(cfg, redisClient, log)

	// Менеджер пользовательских сессий
	sessions := session.NewManager(ctx, backend, backend, location.UnavailableLocator{}, geoClient, log, cfg)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentStore, lifecycleCtrl, statsService, sessions, backend, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
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
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	// Остановка движков уведомлений активных сессий
	sessions.Shutdown()

	log.Info("Server gracefully stopped")
}
