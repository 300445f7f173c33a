package status_handler

import (
	"fmt"
	"time"

	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// StatusHandler структура для обработки команд /status и /wake
type StatusHandler struct {
	store     database.Store
	activity  *keepalive.Activity
	startedAt time.Time
}

// NewStatusHandler возвращает структуру обработчика
func NewStatusHandler(store database.Store, activity *keepalive.Activity, startedAt time.Time) *StatusHandler {
	return &StatusHandler{store: store, activity: activity, startedAt: startedAt}
}

// Handle отвечает аптаймом и количеством активных диалогов
func (h *StatusHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	uptime := time.Since(h.startedAt).Round(time.Second)
	return c.Send(fmt.Sprintf("Бот работает.\nАптайм: %s\nАктивных диалогов: %d\nПоследняя активность: %s",
		uptime, h.store.Count(), h.activity.Last().Format("15:04:05 02.01.2006")))
}

// HandleWake просто отвечает: команда нужна, чтобы разбудить хостинг
func (h *StatusHandler) HandleWake(c telebot.Context) error {
	h.activity.Touch()
	return c.Send("Я не сплю.")
}

func (h *StatusHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}

func (h *StatusHandler) GetWakeHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.HandleWake(c)
	}
}
