package models

import (
	"encoding/json"
	"math"
	"time"
)

// TrendPoint 趋势序列中的单个采样点
type TrendPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Value     float64   `json:"value"`
}

// TrendSeries 单指标趋势序列（派生数据，过滤条件变化时整体重建）
// Points are ordered by timestamp ascending.
type TrendSeries struct {
	Metric  Metric        `json:"metric"`
	Points  []TrendPoint  `json:"points"`
	Summary SeriesSummary `json:"summary"`
}

// SeriesSummary 序列统计摘要
// Min/Max/Mean are NaN for an empty series; they serialize as null.
type SeriesSummary struct {
	Min        float64
	Max        float64
	Mean       float64
	OutOfRange int
}

type seriesSummaryJSON struct {
	Min        *float64 `json:"min"`
	Max        *float64 `json:"max"`
	Mean       *float64 `json:"mean"`
	OutOfRange int      `json:"out_of_range"`
}

// MarshalJSON encodes NaN statistics as null (encoding/json rejects NaN).
func (s SeriesSummary) MarshalJSON() ([]byte, error) {
	out := seriesSummaryJSON{OutOfRange: s.OutOfRange}
	if !math.IsNaN(s.Min) {
		out.Min = &s.Min
	}
	if !math.IsNaN(s.Max) {
		out.Max = &s.Max
	}
	if !math.IsNaN(s.Mean) {
		out.Mean = &s.Mean
	}
	return json.Marshal(out)
}

// UnmarshalJSON restores null statistics to NaN.
func (s *SeriesSummary) UnmarshalJSON(data []byte) error {
	var in seriesSummaryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	s.Min, s.Max, s.Mean = math.NaN(), math.NaN(), math.NaN()
	if in.Min != nil {
		s.Min = *in.Min
	}
	if in.Max != nil {
		s.Max = *in.Max
	}
	if in.Mean != nil {
		s.Mean = *in.Mean
	}
	s.OutOfRange = in.OutOfRange
	return nil
}
