package notify

import (
	"context"
	"fmt"
	"time"

	"health-monitor/internal/models"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

// WebhookNotifier 报警 Webhook 通知器
// POSTs critical alerts to a configured endpoint. Delivery failures are the
// caller's to log; they must never block or fail a dashboard response.
type WebhookNotifier struct {
	httpClient *resty.Client
	url        string
	logger     *zap.Logger
}

// NewWebhookNotifier 创建 Webhook 通知器
func NewWebhookNotifier(url string, timeout time.Duration, logger *zap.Logger) *WebhookNotifier {
	client := resty.New().
		SetTimeout(timeout).
		SetRetryCount(2).
		SetRetryWaitTime(500 * time.Millisecond).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &WebhookNotifier{
		httpClient: client,
		url:        url,
		logger:     logger,
	}
}

// alertNotification Webhook 请求体
type alertNotification struct {
	UserID string         `json:"user_id"`
	Alerts []models.Alert `json:"alerts"`
	SentAt time.Time      `json:"sent_at"`
}

// NotifyAlerts 推送报警列表
func (n *WebhookNotifier) NotifyAlerts(ctx context.Context, userID string, alerts []models.Alert) error {
	if len(alerts) == 0 {
		return nil
	}

	payload := alertNotification{
		UserID: userID,
		Alerts: alerts,
		SentAt: time.Now().UTC(),
	}

	resp, err := n.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		Post(n.url)
	if err != nil {
		return fmt.Errorf("failed to post alert webhook: %w", err)
	}

	if resp.IsError() {
		return fmt.Errorf("alert webhook returned status %d", resp.StatusCode())
	}

	n.logger.Info("Alert webhook delivered",
		zap.String("user_id", userID),
		zap.Int("alert_count", len(alerts)),
		zap.Int("status", resp.StatusCode()),
	)

	return nil
}
