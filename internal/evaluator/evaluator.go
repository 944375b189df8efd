package evaluator

import (
	"sort"
	"time"

	"health-monitor/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Engine 报警规则引擎
// Stateless: every evaluation pass is independent, so concurrent callers
// need no coordination.
type Engine struct {
	rules  []models.AlertRule
	logger *zap.Logger
}

// NewEngine 创建规则引擎（使用固定规则表）
func NewEngine(logger *zap.Logger) *Engine {
	return &Engine{
		rules:  defaultRules(),
		logger: logger,
	}
}

// Rules returns the rule table in declaration order.
func (e *Engine) Rules() []models.AlertRule {
	return e.rules
}

// Evaluate 评估单条记录，返回报警列表
// Alerts are ordered by severity (critical first), then by rule declaration
// order. Multiple rules may fire for the same record; nothing is suppressed
// or deduplicated. A record with no abnormal vitals yields an empty list.
func (e *Engine) Evaluate(record *models.HealthRecord) []models.Alert {
	var alerts []models.Alert
	now := time.Now().UTC()

	for _, rule := range e.rules {
		if !rule.Predicate(record) {
			continue
		}
		alerts = append(alerts, models.Alert{
			ID:          uuid.NewString(),
			RuleName:    rule.Name,
			Record:      record.Ref(),
			Severity:    rule.Severity,
			Message:     rule.Message,
			TriggeredAt: now,
		})
	}

	// Stable sort keeps declaration order within the same severity.
	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Severity.Rank() < alerts[j].Severity.Rank()
	})

	if len(alerts) > 0 {
		e.logger.Debug("Record triggered alerts",
			zap.String("user_id", record.UserID),
			zap.Time("timestamp", record.Timestamp),
			zap.Int("alert_count", len(alerts)),
		)
	}

	return alerts
}

// EvaluateBatch 批量评估（逐条独立评估，无跨记录状态）
// The result maps record identity to its alerts; records that triggered
// nothing are omitted. An empty input yields an empty map.
func (e *Engine) EvaluateBatch(records []models.HealthRecord) map[models.RecordRef][]models.Alert {
	result := make(map[models.RecordRef][]models.Alert, len(records))
	for i := range records {
		alerts := e.Evaluate(&records[i])
		if len(alerts) > 0 {
			result[records[i].Ref()] = alerts
		}
	}
	return result
}

// OverallStatus 汇总整体状态（取最差级别）
func OverallStatus(alerts []models.Alert) models.Status {
	status := models.StatusNormal
	for _, a := range alerts {
		switch a.Severity {
		case models.SeverityCritical:
			return models.StatusCritical
		case models.SeverityWarning:
			status = models.StatusWarning
		}
	}
	return status
}
