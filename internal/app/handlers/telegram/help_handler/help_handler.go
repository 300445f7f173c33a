package help_handler

import (
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

const helpMessage = `Как собрать квиз:

1. /start — начать диалог.
2. Пришлите .txt файл с вопросами.
3. Введите название квиза.
4. Выберите время, баллы и штраф кнопками (или введите свои значения).
5. Укажите автора — и получите HTML-квиз с PDF-ключом.

HTML-файл автономный: его можно открыть без интернета,
результат отправляется боту для подсчёта ранга при наличии сети.

/cancel — сбросить текущий диалог.
/status — аптайм и количество активных диалогов.`

// HelpHandler структура для обработки команды /help
type HelpHandler struct {
	activity *keepalive.Activity
}

// NewHelpHandler возвращает структуру обработчика
func NewHelpHandler(activity *keepalive.Activity) *HelpHandler {
	return &HelpHandler{activity: activity}
}

func (h *HelpHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	return c.Send(helpMessage)
}

func (h *HelpHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
