package select_handler

import (
	"strconv"
	"strings"

	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/keyboards"
	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// SelectHandler обрабатывает нажатия инлайн-кнопок выбора времени,
// баллов и штрафа. Один обработчик на все три шага: шаг определяется
// состоянием диалога.
type SelectHandler struct {
	store    database.Store
	activity *keepalive.Activity
}

// NewSelectHandler возвращает структуру обработчика
func NewSelectHandler(store database.Store, activity *keepalive.Activity) *SelectHandler {
	return &SelectHandler{store: store, activity: activity}
}

func (h *SelectHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	userID := c.Sender().ID

	// Снимаем индикатор загрузки с нажатой кнопки.
	if c.Callback() != nil {
		defer func() {
			_ = c.Respond(&telebot.CallbackResponse{})
		}()
	}

	state, ok := h.store.Get(userID)
	if !ok {
		return c.Send("Диалог не найден. Пришлите /start.")
	}

	// Извлекаем значение из данных кнопки.
	data := strings.TrimSpace(c.Callback().Data)
	data = strings.ReplaceAll(data, "\f", "")
	if i := strings.Index(data, "|"); i >= 0 {
		data = data[i+1:]
	}

	if data == keyboards.DataCustom {
		state.CustomInput = true
		if err := h.store.Set(userID, state); err != nil {
			return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
		}
		return c.Send(customPrompt(state.State))
	}

	switch state.State {
	case database.StateWaitingTime:
		minutes, err := strconv.Atoi(data)
		if err != nil || minutes <= 0 {
			return c.Send("Не понял выбранное время, попробуйте ещё раз.")
		}
		state.TimeMinutes = minutes
		state.State = database.StateWaitingMarks
		state.CustomInput = false
		if err := h.store.Set(userID, state); err != nil {
			return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
		}
		return c.Send("Сколько баллов за правильный ответ?", keyboards.Marks())

	case database.StateWaitingMarks:
		state.Marks = data
		state.State = database.StateWaitingNegative
		state.CustomInput = false
		if err := h.store.Set(userID, state); err != nil {
			return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
		}
		return c.Send("Какой штраф за неправильный ответ?", keyboards.Negative())

	case database.StateWaitingNegative:
		state.Negative = data
		state.State = database.StateWaitingCreator
		state.CustomInput = false
		if err := h.store.Set(userID, state); err != nil {
			return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
		}
		return c.Send("Кто автор квиза?")
	}

	return c.Send("Эта кнопка уже не актуальна.")
}

func customPrompt(state string) string {
	switch state {
	case database.StateWaitingTime:
		return "Введите время в минутах (целое число больше нуля)."
	case database.StateWaitingMarks:
		return "Введите баллы за правильный ответ (число больше нуля)."
	case database.StateWaitingNegative:
		return "Введите штраф за неправильный ответ (неотрицательное число)."
	}
	return "Введите значение."
}

func (h *SelectHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
