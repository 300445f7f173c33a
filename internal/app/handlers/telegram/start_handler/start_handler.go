package start_handler

import (
	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

const welcomeMessage = `Привет! Я собираю HTML-квизы из текстовых файлов с вопросами.

Пришлите .txt файл с банком вопросов. Поддерживаемый формат:

1. What is 2+2?
a) 3
b) 4
Answer: (b)
ex: basic arithmetic

Нумерация "1." или "Q1.", варианты "a)", "(a)", "a.", "a -",
строка ответа "Answer: b" / "Correct: (b)" / "Ans - b",
пояснение "ex:" или "solution:". Вопросы можно разделять пустыми строками.

Команды: /help — справка, /cancel — сбросить диалог, /status — состояние.`

// StartHandler структура для обработки команды /start
type StartHandler struct {
	store    database.Store
	activity *keepalive.Activity
}

// NewStartHandler возвращает структуру обработчика
func NewStartHandler(store database.Store, activity *keepalive.Activity) *StartHandler {
	return &StartHandler{store: store, activity: activity}
}

// Handle начинает диалог: бот ждёт файл с вопросами
func (h *StartHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	if err := h.store.Set(c.Sender().ID, database.DialogState{State: database.StateWaitingFile}); err != nil {
		return c.Send("Не удалось начать диалог, попробуйте ещё раз.")
	}
	return c.Send(welcomeMessage)
}

func (h *StartHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
