// Package thresholds 集中定义生命体征阈值。
// This is the single source of truth: the alert rule engine and the trend
// aggregator's out-of-range counting both read from here, so the two can
// never drift apart.
package thresholds

import "health-monitor/internal/models"

// Vital sign limits. Comparisons against them are strict inequalities:
// a value exactly on a limit is in range.
const (
	HeartRateLowBPM  = 60
	HeartRateHighBPM = 100

	SystolicLowMmHg  = 90
	SystolicHighMmHg = 140

	DiastolicLowMmHg  = 60
	DiastolicHighMmHg = 90

	SpO2LowPercent = 92.0
)

// OutOfRange reports whether a series value falls outside the normal band
// for the metric, using the same strict limits as the alert rules.
func OutOfRange(metric models.Metric, value float64) bool {
	switch metric {
	case models.MetricHeartRate:
		return value < HeartRateLowBPM || value > HeartRateHighBPM
	case models.MetricSystolic:
		return value < SystolicLowMmHg || value > SystolicHighMmHg
	case models.MetricDiastolic:
		return value < DiastolicLowMmHg || value > DiastolicHighMmHg
	case models.MetricSpO2:
		return value < SpO2LowPercent
	default:
		return false
	}
}
