package models

import "time"

// Overview 用户健康概览（dashboard 首屏数据，可缓存）
type Overview struct {
	User        User          `json:"user"`
	Latest      *HealthRecord `json:"latest,omitempty"` // nil in the degraded "no data" state
	Alerts      []Alert       `json:"alerts"`
	Status      Status        `json:"status"`
	GeneratedAt time.Time     `json:"generated_at"`
}

// RecordAlerts 单条记录的报警评估结果（按记录时间升序返回）
type RecordAlerts struct {
	Record RecordRef `json:"record_ref"`
	Alerts []Alert   `json:"alerts"`
}
