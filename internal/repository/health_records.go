package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"health-monitor/internal/models"

	"go.uber.org/zap"
)

// Data access errors. ErrDataAccess means the underlying dataset is
// unreachable or corrupt; it is reported, never retried (the dataset is
// static, retrying a malformed read yields the same result).
var (
	ErrDataAccess = errors.New("health data source unavailable")
	ErrNoRecords  = errors.New("no health records")
)

// HealthRecordRepository 健康记录仓库（只读，无副作用）
type HealthRecordRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewHealthRecordRepository 创建健康记录仓库
func NewHealthRecordRepository(db *sql.DB, logger *zap.Logger) *HealthRecordRepository {
	return &HealthRecordRepository{
		db:     db,
		logger: logger,
	}
}

// RecordFilters 健康记录查询过滤条件
type RecordFilters struct {
	UserID string     // 用户ID（空表示全部用户）
	Start  *time.Time // 开始时间（timestamp >= Start，含边界）
	End    *time.Time // 结束时间（timestamp <= End，含边界）
}

// Fetch 查询健康记录，按 timestamp 升序返回
// An empty result is a nil slice, not an error. Rows failing validation are
// skipped and logged, never fatal to the batch.
func (r *HealthRecordRepository) Fetch(ctx context.Context, filters RecordFilters) ([]models.HealthRecord, error) {
	query := `
		SELECT user_id, timestamp, heart_rate, systolic, diastolic, spo2, nutrient_intake
		FROM health_data
	`

	var conditions []string
	var args []any

	if filters.UserID != "" {
		args = append(args, filters.UserID)
		conditions = append(conditions, fmt.Sprintf("user_id = $%d", len(args)))
	}
	if filters.Start != nil {
		args = append(args, *filters.Start)
		conditions = append(conditions, fmt.Sprintf("timestamp >= $%d", len(args)))
	}
	if filters.End != nil {
		args = append(args, *filters.End)
		conditions = append(conditions, fmt.Sprintf("timestamp <= $%d", len(args)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY timestamp ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: query health_data: %v", ErrDataAccess, err)
	}
	defer rows.Close()

	var records []models.HealthRecord
	skipped := 0

	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			if errors.Is(err, errMalformedNutrients) {
				// Shape failure on one row skips the row, not the batch.
				skipped++
				r.logger.Warn("Skipping record with malformed nutrient_intake", zap.Error(err))
				continue
			}
			return nil, fmt.Errorf("%w: scan health_data row: %v", ErrDataAccess, err)
		}

		if err := record.Validate(); err != nil {
			skipped++
			r.logger.Warn("Skipping malformed health record",
				zap.String("user_id", record.UserID),
				zap.Time("timestamp", record.Timestamp),
				zap.Error(err),
			)
			continue
		}

		records = append(records, record)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate health_data rows: %v", ErrDataAccess, err)
	}

	if skipped > 0 {
		r.logger.Warn("Malformed health records skipped",
			zap.Int("skipped", skipped),
			zap.Int("returned", len(records)),
		)
	}

	return records, nil
}

// FetchLatest 查询用户最新一条健康记录
func (r *HealthRecordRepository) FetchLatest(ctx context.Context, userID string) (*models.HealthRecord, error) {
	query := `
		SELECT user_id, timestamp, heart_rate, systolic, diastolic, spo2, nutrient_intake
		FROM health_data
		WHERE user_id = $1
		ORDER BY timestamp DESC
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, userID)
	record, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNoRecords
		}
		return nil, fmt.Errorf("%w: query latest health_data: %v", ErrDataAccess, err)
	}

	if err := record.Validate(); err != nil {
		return nil, fmt.Errorf("%w: latest record malformed: %v", ErrDataAccess, err)
	}

	return &record, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

var errMalformedNutrients = errors.New("malformed nutrient_intake JSON")

func scanRecord(s scanner) (models.HealthRecord, error) {
	var record models.HealthRecord
	var nutrientJSON []byte

	err := s.Scan(
		&record.UserID,
		&record.Timestamp,
		&record.HeartRateBPM,
		&record.SystolicMmHg,
		&record.DiastolicMmHg,
		&record.SpO2Percent,
		&nutrientJSON,
	)
	if err != nil {
		return models.HealthRecord{}, err
	}

	if len(nutrientJSON) > 0 {
		if err := json.Unmarshal(nutrientJSON, &record.NutrientIntake); err != nil {
			return models.HealthRecord{}, fmt.Errorf("%w: %v", errMalformedNutrients, err)
		}
	}

	return record, nil
}
