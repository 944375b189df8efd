package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"health-monitor/internal/repository"
	"health-monitor/internal/service"

	"go.uber.org/zap"
)

// DashboardHandler 看板 HTTP 处理器
type DashboardHandler struct {
	svc    *service.DashboardService
	logger *zap.Logger
}

func NewDashboardHandler(svc *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		svc:    svc,
		logger: logger,
	}
}

// GetUsers GET /api/v1/users
func (h *DashboardHandler) GetUsers(w http.ResponseWriter, req *http.Request) {
	users, err := h.svc.ListUsers(req.Context())
	if err != nil {
		h.fail(w, "list users", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(users))
}

// GetOverview GET /api/v1/users/{id}/overview
func (h *DashboardHandler) GetOverview(w http.ResponseWriter, req *http.Request, userID string) {
	overview, err := h.svc.Overview(req.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			writeJSON(w, http.StatusNotFound, Fail("user not found"))
			return
		}
		h.fail(w, "build overview", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(overview))
}

// GetTrends GET /api/v1/users/{id}/trends?metric=&start=&end=&days=
func (h *DashboardHandler) GetTrends(w http.ResponseWriter, req *http.Request, userID string) {
	metric := req.URL.Query().Get("metric")
	if metric == "" {
		writeJSON(w, http.StatusBadRequest, Fail("metric query parameter is required"))
		return
	}

	start, end, err := parseWindow(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	series, err := h.svc.Trends(req.Context(), userID, metric, start, end)
	if err != nil {
		if !errors.Is(err, repository.ErrDataAccess) {
			// invalid metric name
			writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
			return
		}
		h.fail(w, "build trend series", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(series))
}

// GetAlerts GET /api/v1/users/{id}/alerts?start=&end=&days=
func (h *DashboardHandler) GetAlerts(w http.ResponseWriter, req *http.Request, userID string) {
	start, end, err := parseWindow(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, Fail(err.Error()))
		return
	}

	alerts, err := h.svc.Alerts(req.Context(), userID, start, end)
	if err != nil {
		h.fail(w, "evaluate alerts", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(alerts))
}

// GetInsights GET /api/v1/users/{id}/insights?days=
func (h *DashboardHandler) GetInsights(w http.ResponseWriter, req *http.Request, userID string) {
	days := 7
	if v := req.URL.Query().Get("days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, Fail("days must be a positive integer"))
			return
		}
		days = n
	}

	insights, err := h.svc.Insights(req.Context(), userID, days)
	if err != nil {
		h.fail(w, "build insights", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(insights))
}

// GetMedications GET /api/v1/users/{id}/medications
func (h *DashboardHandler) GetMedications(w http.ResponseWriter, req *http.Request, userID string) {
	plan, err := h.svc.Medications(req.Context(), userID)
	if err != nil {
		h.fail(w, "build medication plan", err)
		return
	}
	writeJSON(w, http.StatusOK, Ok(plan))
}

func (h *DashboardHandler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Error("Dashboard request failed",
		zap.String("op", op),
		zap.Error(err),
	)
	writeJSON(w, http.StatusInternalServerError, Fail(err.Error()))
}

// parseWindow 解析时间窗口参数
// start/end take RFC3339 or date-only form; days=N is shorthand for
// start=now-N days. Explicit start/end win over days.
func parseWindow(req *http.Request) (start, end *time.Time, err error) {
	q := req.URL.Query()

	if v := q.Get("start"); v != "" {
		t, perr := parseTimestamp(v)
		if perr != nil {
			return nil, nil, perr
		}
		start = &t
	}
	if v := q.Get("end"); v != "" {
		t, perr := parseTimestamp(v)
		if perr != nil {
			return nil, nil, perr
		}
		end = &t
	}

	if start == nil && end == nil {
		if v := q.Get("days"); v != "" {
			n, perr := strconv.Atoi(v)
			if perr != nil || n <= 0 {
				return nil, nil, errors.New("days must be a positive integer")
			}
			t := time.Now().UTC().AddDate(0, 0, -n)
			start = &t
		}
	}

	return start, end, nil
}

func parseTimestamp(v string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, errors.New("timestamps must be RFC3339 or YYYY-MM-DD")
	}
	return t, nil
}
