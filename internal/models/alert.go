package models

import (
	"time"
)

// Severity 报警级别
type Severity string

const (
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank orders severities for sorting, lower is more severe.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 0
	case SeverityWarning:
		return 1
	default:
		return 2
	}
}

// Status 整体健康状态（由最新一条记录的报警汇总得出）
type Status string

const (
	StatusNormal   Status = "normal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
	StatusUnknown  Status = "unknown" // no data available
)

// AlertRule 报警规则（进程级固定规则表，启动时声明一次，不可变）
type AlertRule struct {
	Name      string
	Metric    Metric
	Predicate func(*HealthRecord) bool
	Severity  Severity
	Message   string
}

// Alert 报警（每次评估生成，不落库）
// RecordRef points at the triggering record by identity, not ownership.
type Alert struct {
	ID          string    `json:"id"`
	RuleName    string    `json:"rule_name"`
	Record      RecordRef `json:"record_ref"`
	Severity    Severity  `json:"severity"`
	Message     string    `json:"message"`
	TriggeredAt time.Time `json:"triggered_at"`
}

// ConditionInsight 潜在健康状况提示（基于记录窗口的启发式判断）
type ConditionInsight struct {
	Condition   string `json:"condition"`
	Confidence  string `json:"confidence"` // "High" / "Medium"
	Description string `json:"description"`
}
