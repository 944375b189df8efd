package models

import (
	"errors"
	"time"
)

// Metric 指标类型
type Metric string

const (
	MetricHeartRate     Metric = "heart_rate"
	MetricBloodPressure Metric = "blood_pressure" // rule-level only, splits into systolic/diastolic for series
	MetricSystolic      Metric = "systolic"
	MetricDiastolic     Metric = "diastolic"
	MetricSpO2          Metric = "spo2"
)

// IsSeriesMetric reports whether the metric maps to a single scalar per record
// and can therefore back a trend series.
func (m Metric) IsSeriesMetric() bool {
	switch m {
	case MetricHeartRate, MetricSystolic, MetricDiastolic, MetricSpO2:
		return true
	default:
		return false
	}
}

// HealthRecord 健康记录（对应 health_data 表）
// Immutable once loaded; consumers treat it as read-only.
type HealthRecord struct {
	UserID         string             `json:"user_id" db:"user_id"`
	Timestamp      time.Time          `json:"timestamp" db:"timestamp"`
	HeartRateBPM   int                `json:"heart_rate_bpm" db:"heart_rate"`
	SystolicMmHg   int                `json:"systolic_mmhg" db:"systolic"`
	DiastolicMmHg  int                `json:"diastolic_mmhg" db:"diastolic"`
	SpO2Percent    float64            `json:"spo2_percent" db:"spo2"`
	NutrientIntake map[string]float64 `json:"nutrient_intake,omitempty" db:"nutrient_intake"` // JSON column
}

// Validation errors
var (
	ErrEmptyUserID   = errors.New("health record user ID cannot be empty")
	ErrZeroTimestamp = errors.New("health record timestamp cannot be zero")
	ErrHeartRate     = errors.New("heart rate must be positive")
	ErrBloodPressure = errors.New("blood pressure readings must be positive")
	ErrSpO2Range     = errors.New("spo2 must be within [0, 100]")
)

// Validate checks basic range/shape constraints on a loaded record.
// Records failing validation are skipped at load time, not fatal to the batch.
func (r *HealthRecord) Validate() error {
	if r.UserID == "" {
		return ErrEmptyUserID
	}
	if r.Timestamp.IsZero() {
		return ErrZeroTimestamp
	}
	if r.HeartRateBPM <= 0 {
		return ErrHeartRate
	}
	if r.SystolicMmHg <= 0 || r.DiastolicMmHg <= 0 {
		return ErrBloodPressure
	}
	if r.SpO2Percent < 0 || r.SpO2Percent > 100 {
		return ErrSpO2Range
	}
	return nil
}

// Ref returns the record identity used to reference it from alerts.
func (r *HealthRecord) Ref() RecordRef {
	return RecordRef{UserID: r.UserID, Timestamp: r.Timestamp}
}

// RecordRef 记录引用（user_id + timestamp，不持有记录本身）
type RecordRef struct {
	UserID    string    `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
}
