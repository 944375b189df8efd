package config

import (
	"os"
	"strconv"
)

// Config 服务配置
type Config struct {
	Database struct {
		Driver   string // "sqlite3"（默认，本地固定数据集）或 "postgres"
		Path     string // sqlite 数据库文件路径
		Host     string
		Port     int
		User     string
		Password string
		Database string
		SSLMode  string
	}

	Redis struct {
		Addr     string // 空表示禁用概览缓存
		Password string
		DB       int
	}

	Cache struct {
		OverviewKeyPrefix string // 概览缓存键前缀，如 "health:user:"
		OverviewSuffix    string // 概览缓存键后缀，如 ":overview"
		OverviewTTL       int    // 概览缓存 TTL（秒）
	}

	Notify struct {
		WebhookURL     string // 空表示禁用报警通知
		TimeoutSeconds int
	}

	HTTP struct {
		Addr string
	}

	Log struct {
		Level  string
		Format string
	}
}

// Load 加载配置（环境变量 + 默认值）
func Load() (*Config, error) {
	cfg := &Config{}

	cfg.Database.Driver = getEnv("DB_DRIVER", "sqlite3")
	cfg.Database.Path = getEnv("DB_PATH", "health_monitor.db")
	cfg.Database.Host = getEnv("DB_HOST", "localhost")
	cfg.Database.Port = getEnvInt("DB_PORT", 5432)
	cfg.Database.User = getEnv("DB_USER", "postgres")
	cfg.Database.Password = getEnv("DB_PASSWORD", "postgres")
	cfg.Database.Database = getEnv("DB_NAME", "health_monitor")
	cfg.Database.SSLMode = getEnv("DB_SSLMODE", "disable")

	cfg.Redis.Addr = getEnv("REDIS_ADDR", "")
	cfg.Redis.Password = getEnv("REDIS_PASSWORD", "")
	cfg.Redis.DB = 0

	cfg.Cache.OverviewKeyPrefix = getEnv("CACHE_OVERVIEW_PREFIX", "health:user:")
	cfg.Cache.OverviewSuffix = ":overview"
	cfg.Cache.OverviewTTL = getEnvInt("CACHE_OVERVIEW_TTL", 30)

	cfg.Notify.WebhookURL = getEnv("ALERT_WEBHOOK_URL", "")
	cfg.Notify.TimeoutSeconds = getEnvInt("ALERT_WEBHOOK_TIMEOUT", 10)

	cfg.HTTP.Addr = getEnv("HTTP_ADDR", ":8080")

	cfg.Log.Level = getEnv("LOG_LEVEL", "info")
	cfg.Log.Format = getEnv("LOG_FORMAT", "json")

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
