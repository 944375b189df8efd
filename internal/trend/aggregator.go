package trend

import (
	"fmt"
	"math"

	"health-monitor/internal/models"
	"health-monitor/internal/thresholds"

	"go.uber.org/zap"
)

// Aggregator 趋势聚合器（从记录集派生单指标时间序列）
// Input records must already be sorted by timestamp ascending, which is the
// record repository's output contract.
type Aggregator struct {
	logger *zap.Logger
}

// NewAggregator 创建趋势聚合器
func NewAggregator(logger *zap.Logger) *Aggregator {
	return &Aggregator{logger: logger}
}

// BuildSeries 构建单指标趋势序列（保留输入顺序，自动填充统计摘要）
// An empty record set yields a zero-point series with NaN statistics.
func (a *Aggregator) BuildSeries(records []models.HealthRecord, metric models.Metric) (models.TrendSeries, error) {
	if !metric.IsSeriesMetric() {
		return models.TrendSeries{}, fmt.Errorf("metric %q cannot back a trend series", metric)
	}

	points := make([]models.TrendPoint, 0, len(records))
	for i := range records {
		points = append(points, models.TrendPoint{
			Timestamp: records[i].Timestamp,
			Value:     metricValue(&records[i], metric),
		})
	}

	series := models.TrendSeries{Metric: metric, Points: points}
	series.Summary = a.Summarize(series)

	a.logger.Debug("Built trend series",
		zap.String("metric", string(metric)),
		zap.Int("points", len(points)),
		zap.Int("out_of_range", series.Summary.OutOfRange),
	)

	return series, nil
}

// BuildNutrientSeries 构建营养摄入趋势序列
// Records missing the requested nutrient are skipped. Nutrient series have
// no canonical thresholds, so OutOfRange stays zero.
func (a *Aggregator) BuildNutrientSeries(records []models.HealthRecord, nutrient string) models.TrendSeries {
	points := make([]models.TrendPoint, 0, len(records))
	for i := range records {
		value, ok := records[i].NutrientIntake[nutrient]
		if !ok {
			continue
		}
		points = append(points, models.TrendPoint{
			Timestamp: records[i].Timestamp,
			Value:     value,
		})
	}

	series := models.TrendSeries{Metric: models.Metric("nutrient:" + nutrient), Points: points}
	series.Summary = summarize(series.Points, func(float64) bool { return false })
	return series
}

// Summarize 计算序列统计摘要
// Out-of-range counting uses the same canonical threshold table as the alert
// rule engine.
func (a *Aggregator) Summarize(series models.TrendSeries) models.SeriesSummary {
	return summarize(series.Points, func(v float64) bool {
		return thresholds.OutOfRange(series.Metric, v)
	})
}

func summarize(points []models.TrendPoint, outOfRange func(float64) bool) models.SeriesSummary {
	if len(points) == 0 {
		return models.SeriesSummary{
			Min:  math.NaN(),
			Max:  math.NaN(),
			Mean: math.NaN(),
		}
	}

	summary := models.SeriesSummary{
		Min: points[0].Value,
		Max: points[0].Value,
	}

	var sum float64
	for _, p := range points {
		if p.Value < summary.Min {
			summary.Min = p.Value
		}
		if p.Value > summary.Max {
			summary.Max = p.Value
		}
		sum += p.Value
		if outOfRange(p.Value) {
			summary.OutOfRange++
		}
	}
	summary.Mean = sum / float64(len(points))

	return summary
}

func metricValue(r *models.HealthRecord, metric models.Metric) float64 {
	switch metric {
	case models.MetricHeartRate:
		return float64(r.HeartRateBPM)
	case models.MetricSystolic:
		return float64(r.SystolicMmHg)
	case models.MetricDiastolic:
		return float64(r.DiastolicMmHg)
	case models.MetricSpO2:
		return r.SpO2Percent
	default:
		return 0
	}
}
