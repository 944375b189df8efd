package trend

import (
	"math"
	"math/rand"
	"testing"
	"time"

	"health-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func recordsAt(base time.Time, heartRates ...int) []models.HealthRecord {
	records := make([]models.HealthRecord, 0, len(heartRates))
	for i, hr := range heartRates {
		records = append(records, models.HealthRecord{
			UserID:        "user-01",
			Timestamp:     base.Add(time.Duration(i) * time.Hour),
			HeartRateBPM:  hr,
			SystolicMmHg:  120,
			DiastolicMmHg: 80,
			SpO2Percent:   98.0,
		})
	}
	return records
}

func TestBuildSeries_PreservesLengthAndOrder(t *testing.T) {
	agg := NewAggregator(zap.NewNop())
	base := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)
	records := recordsAt(base, 70, 75, 80, 85)

	series, err := agg.BuildSeries(records, models.MetricHeartRate)

	require.NoError(t, err)
	require.Len(t, series.Points, len(records))
	for i, p := range series.Points {
		assert.Equal(t, records[i].Timestamp, p.Timestamp)
		assert.Equal(t, float64(records[i].HeartRateBPM), p.Value)
	}
}

func TestBuildSeries_SummaryBounds(t *testing.T) {
	agg := NewAggregator(zap.NewNop())
	base := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)

	rng := rand.New(rand.NewSource(42))
	heartRates := make([]int, 50)
	for i := range heartRates {
		heartRates[i] = 40 + rng.Intn(100)
	}

	series, err := agg.BuildSeries(recordsAt(base, heartRates...), models.MetricHeartRate)
	require.NoError(t, err)

	s := series.Summary
	assert.LessOrEqual(t, s.Min, s.Mean)
	assert.LessOrEqual(t, s.Mean, s.Max)
}

func TestBuildSeries_EmptyRecords(t *testing.T) {
	agg := NewAggregator(zap.NewNop())

	series, err := agg.BuildSeries(nil, models.MetricSpO2)

	require.NoError(t, err)
	assert.Empty(t, series.Points)
	assert.True(t, math.IsNaN(series.Summary.Min))
	assert.True(t, math.IsNaN(series.Summary.Max))
	assert.True(t, math.IsNaN(series.Summary.Mean))
	assert.Zero(t, series.Summary.OutOfRange)
}

func TestBuildSeries_RejectsNonSeriesMetric(t *testing.T) {
	agg := NewAggregator(zap.NewNop())

	_, err := agg.BuildSeries(nil, models.MetricBloodPressure)
	assert.Error(t, err)

	_, err = agg.BuildSeries(nil, models.Metric("bogus"))
	assert.Error(t, err)
}

func TestSummarize_OutOfRangeMatchesAlertThresholds(t *testing.T) {
	agg := NewAggregator(zap.NewNop())
	base := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)

	// 59 and 101 are out of range; the exact limits 60 and 100 are not.
	series, err := agg.BuildSeries(recordsAt(base, 59, 60, 100, 101), models.MetricHeartRate)

	require.NoError(t, err)
	assert.Equal(t, 2, series.Summary.OutOfRange)
}

func TestSummarize_SpO2BoundaryExcluded(t *testing.T) {
	agg := NewAggregator(zap.NewNop())
	base := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)

	records := recordsAt(base, 75, 75, 75)
	records[0].SpO2Percent = 92.0 // exactly on the limit, in range
	records[1].SpO2Percent = 91.9
	records[2].SpO2Percent = 98.0

	series, err := agg.BuildSeries(records, models.MetricSpO2)

	require.NoError(t, err)
	assert.Equal(t, 1, series.Summary.OutOfRange)
}

func TestBuildNutrientSeries_SkipsRecordsMissingNutrient(t *testing.T) {
	agg := NewAggregator(zap.NewNop())
	base := time.Date(2026, 8, 1, 6, 0, 0, 0, time.UTC)

	records := recordsAt(base, 75, 75, 75)
	records[0].NutrientIntake = map[string]float64{"protein_g": 20}
	records[2].NutrientIntake = map[string]float64{"protein_g": 30, "calories": 600}

	series := agg.BuildNutrientSeries(records, "protein_g")

	require.Len(t, series.Points, 2)
	assert.Equal(t, models.Metric("nutrient:protein_g"), series.Metric)
	assert.Equal(t, 20.0, series.Points[0].Value)
	assert.Equal(t, 30.0, series.Points[1].Value)
	assert.Equal(t, 25.0, series.Summary.Mean)
	assert.Zero(t, series.Summary.OutOfRange)
}
