package attempt_handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/IT-Nick/quizgen/internal/domain/attempts/service"
	"github.com/IT-Nick/quizgen/internal/domain/model"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	httpError "github.com/IT-Nick/quizgen/pkg/http"
)

// SubmitAttemptHandler принимает попытку из HTML-квиза и возвращает её ранг
type SubmitAttemptHandler struct {
	attemptService *service.AttemptService
	activity       *keepalive.Activity
}

// NewSubmitAttemptHandler создает новый экземпляр SubmitAttemptHandler
func NewSubmitAttemptHandler(attemptService *service.AttemptService, activity *keepalive.Activity) *SubmitAttemptHandler {
	return &SubmitAttemptHandler{attemptService: attemptService, activity: activity}
}

// ServeHTTP метод для обработки запроса
func (h *SubmitAttemptHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.activity.Touch()

	// Без настроенной БД ранжирование недоступно.
	if h.attemptService == nil {
		httpError.ErrorResponse(w, http.StatusServiceUnavailable, "Ranking is not configured")
		return
	}

	var attempt model.Attempt
	if err := json.NewDecoder(r.Body).Decode(&attempt); err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if attempt.QuizID == "" || attempt.DeviceID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing quizId or deviceId in request body")
		return
	}

	result, err := h.attemptService.SubmitAttempt(r.Context(), attempt)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to submit attempt: %v", err))
		return
	}

	httpError.JSONResponse(w, http.StatusOK, result)
}

// AttemptRankHandler пересчитывает ранг ранее сохранённой попытки
type AttemptRankHandler struct {
	attemptService *service.AttemptService
	activity       *keepalive.Activity
}

// NewAttemptRankHandler создает новый экземпляр AttemptRankHandler
func NewAttemptRankHandler(attemptService *service.AttemptService, activity *keepalive.Activity) *AttemptRankHandler {
	return &AttemptRankHandler{attemptService: attemptService, activity: activity}
}

// ServeHTTP метод для обработки запроса
func (h *AttemptRankHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.activity.Touch()

	if h.attemptService == nil {
		httpError.ErrorResponse(w, http.StatusServiceUnavailable, "Ranking is not configured")
		return
	}

	q := r.URL.Query()
	quizID := q.Get("quiz_id")
	deviceID := q.Get("device_id")
	if quizID == "" || deviceID == "" {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Missing quiz_id or device_id")
		return
	}
	submittedAt, err := strconv.ParseInt(q.Get("submitted_at"), 10, 64)
	if err != nil {
		httpError.ErrorResponse(w, http.StatusBadRequest, "Invalid submitted_at")
		return
	}

	result, err := h.attemptService.GetRank(r.Context(), model.Attempt{
		QuizID:      quizID,
		DeviceID:    deviceID,
		SubmittedAt: submittedAt,
	})
	if err != nil {
		httpError.ErrorResponse(w, http.StatusInternalServerError, fmt.Sprintf("Failed to get rank: %v", err))
		return
	}

	httpError.JSONResponse(w, http.StatusOK, result)
}
