package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"health-monitor/internal/cache"
	"health-monitor/internal/config"
	"health-monitor/internal/evaluator"
	"health-monitor/internal/medication"
	"health-monitor/internal/models"
	"health-monitor/internal/notify"
	"health-monitor/internal/repository"
	"health-monitor/internal/trend"

	"go.uber.org/zap"
)

// DashboardService 健康看板服务
// Synchronous request/response: fetch records, derive series and alerts,
// return — presentation is entirely the caller's concern.
type DashboardService struct {
	config      *config.Config
	records     *repository.HealthRecordRepository
	users       *repository.UserRepository
	medications *repository.MedicationRepository
	engine      *evaluator.Engine
	trends      *trend.Aggregator
	cache       *cache.SnapshotCache    // nil 表示禁用缓存
	notifier    *notify.WebhookNotifier // nil 表示禁用通知
	logger      *zap.Logger
}

// NewDashboardService 创建看板服务
func NewDashboardService(
	cfg *config.Config,
	records *repository.HealthRecordRepository,
	users *repository.UserRepository,
	medications *repository.MedicationRepository,
	engine *evaluator.Engine,
	trends *trend.Aggregator,
	snapshotCache *cache.SnapshotCache,
	notifier *notify.WebhookNotifier,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		config:      cfg,
		records:     records,
		users:       users,
		medications: medications,
		engine:      engine,
		trends:      trends,
		cache:       snapshotCache,
		notifier:    notifier,
		logger:      logger,
	}
}

// Overview 用户健康概览：最新记录 + 报警 + 整体状态
// Missing records are the degraded "no data" state (StatusUnknown), not an
// error. Cache and webhook failures degrade silently.
func (s *DashboardService) Overview(ctx context.Context, userID string) (*models.Overview, error) {
	if s.cache != nil {
		overview, err := s.cache.GetOverview(ctx, userID)
		if err == nil {
			return overview, nil
		}
		if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Warn("Overview cache read failed, falling back to repository",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	user, err := s.users.GetUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	overview := &models.Overview{
		User:        *user,
		Alerts:      []models.Alert{},
		Status:      models.StatusUnknown,
		GeneratedAt: time.Now().UTC(),
	}

	latest, err := s.records.FetchLatest(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNoRecords) {
			// Degraded "no data" state: valid, expected, distinct from failure.
			return overview, nil
		}
		return nil, err
	}

	overview.Latest = latest
	overview.Alerts = s.engine.Evaluate(latest)
	overview.Status = evaluator.OverallStatus(overview.Alerts)

	s.notifyCritical(ctx, userID, overview.Alerts)

	if s.cache != nil {
		if err := s.cache.SetOverview(ctx, userID, overview); err != nil {
			s.logger.Warn("Overview cache write failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
		}
	}

	return overview, nil
}

// Trends 单指标趋势序列（含统计摘要）
// metric is a series metric name or "nutrient:<name>".
func (s *DashboardService) Trends(ctx context.Context, userID, metric string, start, end *time.Time) (models.TrendSeries, error) {
	records, err := s.records.Fetch(ctx, repository.RecordFilters{
		UserID: userID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return models.TrendSeries{}, err
	}

	if nutrient, ok := strings.CutPrefix(metric, "nutrient:"); ok {
		return s.trends.BuildNutrientSeries(records, nutrient), nil
	}
	return s.trends.BuildSeries(records, models.Metric(metric))
}

// Alerts 窗口内逐条记录的报警评估，按记录时间升序
func (s *DashboardService) Alerts(ctx context.Context, userID string, start, end *time.Time) ([]models.RecordAlerts, error) {
	records, err := s.records.Fetch(ctx, repository.RecordFilters{
		UserID: userID,
		Start:  start,
		End:    end,
	})
	if err != nil {
		return nil, err
	}

	byRef := s.engine.EvaluateBatch(records)

	result := make([]models.RecordAlerts, 0, len(byRef))
	for _, record := range records {
		if alerts, ok := byRef[record.Ref()]; ok {
			result = append(result, models.RecordAlerts{
				Record: record.Ref(),
				Alerts: alerts,
			})
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Record.Timestamp.Before(result[j].Record.Timestamp)
	})

	return result, nil
}

// Insights 近 N 天记录的潜在健康状况提示
func (s *DashboardService) Insights(ctx context.Context, userID string, days int) ([]models.ConditionInsight, error) {
	start := time.Now().UTC().AddDate(0, 0, -days)
	records, err := s.records.Fetch(ctx, repository.RecordFilters{
		UserID: userID,
		Start:  &start,
	})
	if err != nil {
		return nil, err
	}

	return s.engine.ConditionInsights(records), nil
}

// MedicationPlan 用药计划视图
type MedicationPlan struct {
	Medications  []models.Medication        `json:"medications"`
	Schedule     []medication.ScheduleEntry `json:"schedule"`
	Interactions []medication.Interaction   `json:"interactions"`
}

// Medications 用户的用药计划（列表 + 当日时段 + 相互作用提示）
func (s *DashboardService) Medications(ctx context.Context, userID string) (*MedicationPlan, error) {
	meds, err := s.medications.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &MedicationPlan{
		Medications:  meds,
		Schedule:     medication.DailySchedule(meds),
		Interactions: medication.Interactions(meds),
	}, nil
}

// ListUsers 用户列表
func (s *DashboardService) ListUsers(ctx context.Context) ([]models.User, error) {
	return s.users.ListUsers(ctx)
}

func (s *DashboardService) notifyCritical(ctx context.Context, userID string, alerts []models.Alert) {
	if s.notifier == nil {
		return
	}

	var critical []models.Alert
	for _, a := range alerts {
		if a.Severity == models.SeverityCritical {
			critical = append(critical, a)
		}
	}
	if len(critical) == 0 {
		return
	}

	if err := s.notifier.NotifyAlerts(ctx, userID, critical); err != nil {
		s.logger.Warn("Alert webhook delivery failed",
			zap.String("user_id", userID),
			zap.Int("alert_count", len(critical)),
			zap.Error(err),
		)
	}
}
