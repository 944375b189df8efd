package database

import (
	"database/sql"
	"fmt"
)

// schema DDL，SQLite 与 PostgreSQL 通用的类型子集
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		user_id    TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		age        INTEGER NOT NULL,
		gender     TEXT NOT NULL,
		height_cm  REAL NOT NULL,
		weight_kg  REAL NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS health_data (
		user_id         TEXT NOT NULL,
		timestamp       TIMESTAMP NOT NULL,
		heart_rate      INTEGER NOT NULL,
		systolic        INTEGER NOT NULL,
		diastolic       INTEGER NOT NULL,
		spo2            REAL NOT NULL,
		nutrient_intake TEXT,
		PRIMARY KEY (user_id, timestamp)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_data_user_ts
		ON health_data (user_id, timestamp)`,
	`CREATE TABLE IF NOT EXISTS medications (
		medication_id      TEXT PRIMARY KEY,
		user_id            TEXT NOT NULL,
		name               TEXT NOT NULL,
		dosage             TEXT NOT NULL,
		frequency          TEXT NOT NULL,
		start_date         TIMESTAMP,
		end_date           TIMESTAMP,
		purpose            TEXT NOT NULL DEFAULT '',
		prescribing_doctor TEXT NOT NULL DEFAULT '',
		side_effects       TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_medications_user
		ON medications (user_id)`,
}

// Migrate 建表（幂等）
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", i+1, err)
		}
	}
	return nil
}
