package database

import (
	"database/sql"
	"fmt"

	"health-monitor/internal/config"

	_ "github.com/lib/pq"
	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Open 打开数据集连接
// The fixed dataset lives in a local SQLite file by default; a shared
// PostgreSQL instance satisfies the same contract when DB_DRIVER=postgres.
// Queries use $n placeholders, which both drivers accept.
func Open(cfg *config.Config) (*sql.DB, error) {
	var dsn string

	switch cfg.Database.Driver {
	case "sqlite3":
		// _timefmt=sqlite makes the driver bind and scan TIMESTAMP columns
		// as time.Time, matching lib/pq behaviour.
		dsn = fmt.Sprintf("file:%s?_timefmt=sqlite", cfg.Database.Path)
	case "postgres":
		dsn = fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.User,
			cfg.Database.Password, cfg.Database.Database, cfg.Database.SSLMode)
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	db, err := sql.Open(cfg.Database.Driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// Close 关闭数据库连接
func Close(db *sql.DB) error {
	if db != nil {
		return db.Close()
	}
	return nil
}
