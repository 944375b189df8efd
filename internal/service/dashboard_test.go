package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"health-monitor/internal/config"
	"health-monitor/internal/evaluator"
	"health-monitor/internal/models"
	"health-monitor/internal/repository"
	"health-monitor/internal/trend"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*DashboardService, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	logger := zap.NewNop()
	svc := NewDashboardService(
		&config.Config{},
		repository.NewHealthRecordRepository(db, logger),
		repository.NewUserRepository(db, logger),
		repository.NewMedicationRepository(db, logger),
		evaluator.NewEngine(logger),
		trend.NewAggregator(logger),
		nil, // cache disabled
		nil, // notifier disabled
		logger,
	)
	return svc, mock
}

func userColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "name", "age", "gender", "height_cm", "weight_kg"})
}

func recordColumns() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"user_id", "timestamp", "heart_rate", "systolic", "diastolic", "spo2", "nutrient_intake"})
}

func TestOverview_CriticalLatestRecord(t *testing.T) {
	svc, mock := newTestService(t)

	ts := time.Date(2026, 8, 20, 18, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT user_id, name`).
		WithArgs("user-01").
		WillReturnRows(userColumns().AddRow("user-01", "John Smith", 45, "Male", 178.0, 82.0))
	mock.ExpectQuery(`ORDER BY timestamp DESC`).
		WithArgs("user-01").
		WillReturnRows(recordColumns().AddRow("user-01", ts, 120, 150, 95, 97.5, []byte(`{"calories":600}`)))

	overview, err := svc.Overview(context.Background(), "user-01")
	require.NoError(t, err)

	assert.Equal(t, "John Smith", overview.User.Name)
	require.NotNil(t, overview.Latest)
	assert.Equal(t, ts, overview.Latest.Timestamp)

	// hr 120 and bp 150/95 trigger Hypertension and Tachycardia.
	require.Len(t, overview.Alerts, 2)
	assert.Equal(t, "Hypertension", overview.Alerts[0].RuleName)
	assert.Equal(t, "Tachycardia", overview.Alerts[1].RuleName)
	assert.Equal(t, models.StatusCritical, overview.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverview_NoRecordsIsDegradedNotError(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT user_id, name`).
		WithArgs("user-07").
		WillReturnRows(userColumns().AddRow("user-07", "Robert Wilson", 60, "Male", 175.0, 90.0))
	mock.ExpectQuery(`ORDER BY timestamp DESC`).
		WithArgs("user-07").
		WillReturnError(sql.ErrNoRows)

	overview, err := svc.Overview(context.Background(), "user-07")
	require.NoError(t, err)

	assert.Nil(t, overview.Latest)
	assert.Empty(t, overview.Alerts)
	assert.Equal(t, models.StatusUnknown, overview.Status)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOverview_UnknownUser(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`SELECT user_id, name`).
		WithArgs("nobody").
		WillReturnError(sql.ErrNoRows)

	_, err := svc.Overview(context.Background(), "nobody")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAlerts_OnlyAbnormalRecordsReturned(t *testing.T) {
	svc, mock := newTestService(t)

	t1 := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM health_data`).
		WithArgs("user-01").
		WillReturnRows(recordColumns().
			AddRow("user-01", t1, 72, 118, 78, 98.0, nil).
			AddRow("user-01", t2, 55, 118, 78, 98.0, nil))

	result, err := svc.Alerts(context.Background(), "user-01", nil, nil)
	require.NoError(t, err)

	// t1 is normal and produces no entry; t2 has bradycardia.
	require.Len(t, result, 1)
	assert.Equal(t, t2, result[0].Record.Timestamp)
	require.Len(t, result[0].Alerts, 1)
	assert.Equal(t, "Bradycardia", result[0].Alerts[0].RuleName)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAlerts_OrderedByRecordTimestamp(t *testing.T) {
	svc, mock := newTestService(t)

	t1 := time.Date(2026, 8, 19, 23, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 8, 20, 6, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM health_data`).
		WithArgs("user-02").
		WillReturnRows(recordColumns().
			AddRow("user-02", t1, 110, 118, 78, 98.0, nil).
			AddRow("user-02", t2, 105, 118, 78, 98.0, nil))

	result, err := svc.Alerts(context.Background(), "user-02", nil, nil)
	require.NoError(t, err)

	require.Len(t, result, 2)
	assert.True(t, result[0].Record.Timestamp.Before(result[1].Record.Timestamp))
}

func TestTrends_NutrientMetricDispatch(t *testing.T) {
	svc, mock := newTestService(t)

	ts := time.Date(2026, 8, 20, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM health_data`).
		WithArgs("user-01").
		WillReturnRows(recordColumns().
			AddRow("user-01", ts, 72, 118, 78, 98.0, []byte(`{"protein_g":34.5}`)))

	series, err := svc.Trends(context.Background(), "user-01", "nutrient:protein_g", nil, nil)
	require.NoError(t, err)

	assert.Equal(t, models.Metric("nutrient:protein_g"), series.Metric)
	require.Len(t, series.Points, 1)
	assert.Equal(t, 34.5, series.Points[0].Value)
}

func TestTrends_InvalidMetric(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery(`FROM health_data`).
		WithArgs("user-01").
		WillReturnRows(recordColumns())

	_, err := svc.Trends(context.Background(), "user-01", "blood_sugar", nil, nil)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrDataAccess)
}
