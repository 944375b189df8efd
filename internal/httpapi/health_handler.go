package httpapi

import (
	"database/sql"
	"net/http"

	"go.uber.org/zap"
)

// HealthHandler 存活检查
type HealthHandler struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewHealthHandler(db *sql.DB, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// Check GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, req *http.Request) {
	if err := h.db.PingContext(req.Context()); err != nil {
		h.logger.Error("Health check failed", zap.Error(err))
		writeJSON(w, http.StatusServiceUnavailable, Fail("database unreachable"))
		return
	}
	writeJSON(w, http.StatusOK, Ok(map[string]string{"status": "healthy"}))
}
