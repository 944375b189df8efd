package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router 使用标准库 http.ServeMux（避免引入第三方路由依赖）
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterDashboardRoutes 注册看板路由
func (r *Router) RegisterDashboardRoutes(d *DashboardHandler) {
	// user list
	r.Handle("/api/v1/users", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		d.GetUsers(w, req)
	})

	// users/{id}/{resource}
	r.Handle("/api/v1/users/", func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		rest := strings.TrimPrefix(req.URL.Path, "/api/v1/users/")
		parts := strings.SplitN(rest, "/", 2)
		if len(parts) != 2 || parts[0] == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		userID, resource := parts[0], parts[1]

		switch resource {
		case "overview":
			d.GetOverview(w, req, userID)
		case "trends":
			d.GetTrends(w, req, userID)
		case "alerts":
			d.GetAlerts(w, req, userID)
		case "insights":
			d.GetInsights(w, req, userID)
		case "medications":
			d.GetMedications(w, req, userID)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})
}

// RegisterHealthRoute 注册存活检查路由
func (r *Router) RegisterHealthRoute(h *HealthHandler) {
	r.Handle("/health", h.Check)
}
