package health_handler

import (
	"net/http"
	"time"

	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	httpResp "github.com/IT-Nick/quizgen/pkg/http"
)

// HealthHandler отвечает "OK" — проверка живости для хостинга.
type HealthHandler struct {
	activity *keepalive.Activity
}

// NewHealthHandler создает новый экземпляр HealthHandler
func NewHealthHandler(activity *keepalive.Activity) *HealthHandler {
	return &HealthHandler{activity: activity}
}

func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.activity.Touch()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

// WakeHandler отвечает "AWAKE" — цель для keep-alive пинга.
type WakeHandler struct {
	activity *keepalive.Activity
}

// NewWakeHandler создает новый экземпляр WakeHandler
func NewWakeHandler(activity *keepalive.Activity) *WakeHandler {
	return &WakeHandler{activity: activity}
}

func (h *WakeHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.activity.Touch()
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("AWAKE"))
}

// StatusResponse структура ответа о состоянии приложения
type StatusResponse struct {
	Status       string `json:"status"`
	LastActivity string `json:"last_activity"`
	ActiveUsers  int    `json:"active_users"`
}

// StatusHandler отдает состояние приложения: последняя активность
// и количество активных диалогов.
type StatusHandler struct {
	activity *keepalive.Activity
	store    database.Store
}

// NewStatusHandler создает новый экземпляр StatusHandler
func NewStatusHandler(activity *keepalive.Activity, store database.Store) *StatusHandler {
	return &StatusHandler{activity: activity, store: store}
}

func (h *StatusHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.activity.Touch()
	httpResp.JSONResponse(w, http.StatusOK, StatusResponse{
		Status:       "running",
		LastActivity: h.activity.Last().Format(time.RFC3339),
		ActiveUsers:  h.store.Count(),
	})
}
