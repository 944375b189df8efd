package evaluator

import (
	"health-monitor/internal/models"
	"health-monitor/internal/thresholds"
)

// spo2ConcernPercent: below this the reading is worth flagging even before
// the Low Oxygen alert fires.
const spo2ConcernPercent = 95.0

// ConditionInsights 基于记录窗口给出潜在健康状况提示
// Looks at the most recent record of a window sorted by timestamp ascending.
// Heuristic only; not a diagnosis and not part of the alert pipeline.
func (e *Engine) ConditionInsights(records []models.HealthRecord) []models.ConditionInsight {
	if len(records) == 0 {
		return nil
	}

	latest := records[len(records)-1]
	var insights []models.ConditionInsight

	if latest.HeartRateBPM > thresholds.HeartRateHighBPM && latest.SystolicMmHg > thresholds.SystolicHighMmHg {
		insights = append(insights, models.ConditionInsight{
			Condition:   "Hypertension",
			Confidence:  "High",
			Description: "Elevated blood pressure and heart rate may indicate hypertension.",
		})
	}

	if latest.SpO2Percent < spo2ConcernPercent {
		insights = append(insights, models.ConditionInsight{
			Condition:   "Respiratory Issue",
			Confidence:  "Medium",
			Description: "Low oxygen saturation may indicate respiratory problems.",
		})
	}

	return insights
}
