package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"health-monitor/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func criticalAlert() models.Alert {
	return models.Alert{
		ID:       "alert-1",
		RuleName: "Low Oxygen",
		Record: models.RecordRef{
			UserID:    "user-01",
			Timestamp: time.Date(2026, 8, 29, 23, 0, 0, 0, time.UTC),
		},
		Severity: models.SeverityCritical,
		Message:  "Low oxygen saturation",
	}
}

func TestNotifyAlerts_DeliversPayload(t *testing.T) {
	var received alertNotification

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 5*time.Second, zap.NewNop())

	err := n.NotifyAlerts(context.Background(), "user-01", []models.Alert{criticalAlert()})

	require.NoError(t, err)
	assert.Equal(t, "user-01", received.UserID)
	require.Len(t, received.Alerts, 1)
	assert.Equal(t, "Low Oxygen", received.Alerts[0].RuleName)
	assert.False(t, received.SentAt.IsZero())
}

func TestNotifyAlerts_NoAlertsNoCall(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 5*time.Second, zap.NewNop())

	require.NoError(t, n.NotifyAlerts(context.Background(), "user-01", nil))
	assert.False(t, called)
}

func TestNotifyAlerts_ErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	n := NewWebhookNotifier(srv.URL, 5*time.Second, zap.NewNop())

	err := n.NotifyAlerts(context.Background(), "user-01", []models.Alert{criticalAlert()})

	assert.Error(t, err)
}
