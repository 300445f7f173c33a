package cancel_handler

import (
	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// CancelHandler структура для обработки команды /cancel
type CancelHandler struct {
	store    database.Store
	activity *keepalive.Activity
}

// NewCancelHandler возвращает структуру обработчика
func NewCancelHandler(store database.Store, activity *keepalive.Activity) *CancelHandler {
	return &CancelHandler{store: store, activity: activity}
}

// Handle сбрасывает диалог вместе с накопленным черновиком квиза
func (h *CancelHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	if err := h.store.Delete(c.Sender().ID); err != nil {
		return c.Send("Не удалось сбросить диалог.")
	}
	return c.Send("Диалог сброшен. Пришлите /start, чтобы начать заново.")
}

func (h *CancelHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
