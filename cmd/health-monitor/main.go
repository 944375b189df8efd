package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"health-monitor/internal/cache"
	"health-monitor/internal/config"
	"health-monitor/internal/database"
	"health-monitor/internal/evaluator"
	"health-monitor/internal/httpapi"
	"health-monitor/internal/notify"
	"health-monitor/internal/repository"
	"health-monitor/internal/service"
	"health-monitor/internal/trend"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. 初始化日志
	logger, err := initLogger(cfg)
	if err != nil {
		panic(fmt.Sprintf("Failed to init logger: %v", err))
	}
	defer logger.Sync()

	// 3. 打开数据集（本地 SQLite 文件或 PostgreSQL）
	db, err := database.Open(cfg)
	if err != nil {
		logger.Fatal("Failed to open dataset",
			zap.String("driver", cfg.Database.Driver),
			zap.Error(err),
		)
	}
	defer database.Close(db)

	if err := database.Migrate(db); err != nil {
		logger.Fatal("Failed to migrate schema", zap.Error(err))
	}

	// 4. 可选的概览缓存（REDIS_ADDR 为空时禁用）
	var snapshotCache *cache.SnapshotCache
	if cfg.Redis.Addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warn("Redis unreachable, overview cache disabled", zap.Error(err))
		} else {
			snapshotCache = cache.NewSnapshotCache(cfg, redisClient, logger)
			logger.Info("Overview cache enabled", zap.String("addr", cfg.Redis.Addr))
		}
	}

	// 5. 可选的报警 Webhook 通知（ALERT_WEBHOOK_URL 为空时禁用）
	var notifier *notify.WebhookNotifier
	if cfg.Notify.WebhookURL != "" {
		notifier = notify.NewWebhookNotifier(
			cfg.Notify.WebhookURL,
			time.Duration(cfg.Notify.TimeoutSeconds)*time.Second,
			logger,
		)
		logger.Info("Alert webhook enabled", zap.String("url", cfg.Notify.WebhookURL))
	}

	// 6. 组装看板服务
	dashboardService := service.NewDashboardService(
		cfg,
		repository.NewHealthRecordRepository(db, logger),
		repository.NewUserRepository(db, logger),
		repository.NewMedicationRepository(db, logger),
		evaluator.NewEngine(logger),
		trend.NewAggregator(logger),
		snapshotCache,
		notifier,
		logger,
	)

	// 7. 路由与 HTTP 服务
	router := httpapi.NewRouter(logger)
	router.RegisterDashboardRoutes(httpapi.NewDashboardHandler(dashboardService, logger))
	router.RegisterHealthRoute(httpapi.NewHealthHandler(db, logger))

	server := service.NewServer(cfg.HTTP.Addr, router, logger)

	serverErrChan := make(chan error, 1)
	go func() {
		serverErrChan <- server.Start()
	}()

	// 8. 等待信号（优雅关闭）
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigChan:
		logger.Info("Received signal, shutting down",
			zap.String("signal", sig.String()),
		)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Stop(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", zap.Error(err))
		}
	case err := <-serverErrChan:
		logger.Fatal("Server error", zap.Error(err))
	}

	logger.Info("Health monitor stopped")
}

// initLogger 初始化日志
func initLogger(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Log.Format == "json" {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
