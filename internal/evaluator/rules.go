package evaluator

import (
	"health-monitor/internal/models"
	"health-monitor/internal/thresholds"
)

// defaultRules 固定规则表（声明顺序即同级别报警的输出顺序）
// Rules are declarative (predicate, severity, message) tuples evaluated
// uniformly; adding a rule never touches the evaluation loop.
func defaultRules() []models.AlertRule {
	return []models.AlertRule{
		{
			Name:   "Hypertension",
			Metric: models.MetricBloodPressure,
			Predicate: func(r *models.HealthRecord) bool {
				return r.SystolicMmHg > thresholds.SystolicHighMmHg ||
					r.DiastolicMmHg > thresholds.DiastolicHighMmHg
			},
			Severity: models.SeverityCritical,
			Message:  "High blood pressure",
		},
		{
			Name:   "Hypotension",
			Metric: models.MetricBloodPressure,
			Predicate: func(r *models.HealthRecord) bool {
				return r.SystolicMmHg < thresholds.SystolicLowMmHg ||
					r.DiastolicMmHg < thresholds.DiastolicLowMmHg
			},
			Severity: models.SeverityWarning,
			Message:  "Low blood pressure",
		},
		{
			Name:   "Tachycardia",
			Metric: models.MetricHeartRate,
			Predicate: func(r *models.HealthRecord) bool {
				return r.HeartRateBPM > thresholds.HeartRateHighBPM
			},
			Severity: models.SeverityCritical,
			Message:  "High heart rate",
		},
		{
			Name:   "Bradycardia",
			Metric: models.MetricHeartRate,
			Predicate: func(r *models.HealthRecord) bool {
				return r.HeartRateBPM < thresholds.HeartRateLowBPM
			},
			Severity: models.SeverityWarning,
			Message:  "Low heart rate",
		},
		{
			Name:   "Low Oxygen",
			Metric: models.MetricSpO2,
			Predicate: func(r *models.HealthRecord) bool {
				return r.SpO2Percent < thresholds.SpO2LowPercent
			},
			Severity: models.SeverityCritical,
			Message:  "Low oxygen saturation",
		},
	}
}
