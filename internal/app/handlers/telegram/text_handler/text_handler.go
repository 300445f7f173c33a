package text_handler

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/IT-Nick/quizgen/internal/app/handlers/telegram/keyboards"
	"github.com/IT-Nick/quizgen/internal/database"
	"github.com/IT-Nick/quizgen/internal/domain/model"
	quizService "github.com/IT-Nick/quizgen/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// TextHandler обрабатывает текстовый ввод: название квиза, кастомные
// значения времени/баллов/штрафа и имя автора — в зависимости от шага диалога
type TextHandler struct {
	store       database.Store
	quizService *quizService.QuizService
	activity    *keepalive.Activity
}

// NewTextHandler возвращает структуру обработчика
func NewTextHandler(store database.Store, quizService *quizService.QuizService, activity *keepalive.Activity) *TextHandler {
	return &TextHandler{store: store, quizService: quizService, activity: activity}
}

func (h *TextHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	userID := c.Sender().ID
	text := strings.TrimSpace(c.Text())

	state, ok := h.store.Get(userID)
	if !ok {
		return c.Send("Пришлите /start, чтобы начать собирать квиз.")
	}

	switch state.State {
	case database.StateWaitingName:
		return h.handleName(c, userID, state, text)
	case database.StateWaitingTime:
		return h.handleTime(c, userID, state, text)
	case database.StateWaitingMarks:
		return h.handleMarks(c, userID, state, text)
	case database.StateWaitingNegative:
		return h.handleNegative(c, userID, state, text)
	case database.StateWaitingCreator:
		return h.handleCreator(c, userID, state, text)
	case database.StateWaitingFile:
		return c.Send("Жду .txt файл с вопросами. Пришлите его документом.")
	}
	return c.Send("Пришлите /start, чтобы начать собирать квиз.")
}

func (h *TextHandler) handleName(c telebot.Context, userID int64, state database.DialogState, text string) error {
	if text == "" {
		return c.Send("Название не может быть пустым. Введите название квиза.")
	}
	state.QuizName = text
	state.State = database.StateWaitingTime
	state.CustomInput = false
	if err := h.store.Set(userID, state); err != nil {
		return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
	}
	return c.Send("Сколько минут даётся на прохождение?", keyboards.Time())
}

func (h *TextHandler) handleTime(c telebot.Context, userID int64, state database.DialogState, text string) error {
	if !state.CustomInput {
		return c.Send("Выберите время кнопкой или нажмите «Своё значение».")
	}
	minutes, err := strconv.Atoi(text)
	if err != nil || minutes <= 0 {
		return c.Send("Введите целое число минут больше нуля.")
	}
	state.TimeMinutes = minutes
	state.State = database.StateWaitingMarks
	state.CustomInput = false
	if err := h.store.Set(userID, state); err != nil {
		return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
	}
	return c.Send("Сколько баллов за правильный ответ?", keyboards.Marks())
}

func (h *TextHandler) handleMarks(c telebot.Context, userID int64, state database.DialogState, text string) error {
	if !state.CustomInput {
		return c.Send("Выберите баллы кнопкой или нажмите «Своё значение».")
	}
	marks, err := strconv.ParseFloat(text, 64)
	if err != nil || marks <= 0 {
		return c.Send("Введите число баллов больше нуля, например 1 или 2.5.")
	}
	state.Marks = text
	state.State = database.StateWaitingNegative
	state.CustomInput = false
	if err := h.store.Set(userID, state); err != nil {
		return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
	}
	return c.Send("Какой штраф за неправильный ответ?", keyboards.Negative())
}

func (h *TextHandler) handleNegative(c telebot.Context, userID int64, state database.DialogState, text string) error {
	if !state.CustomInput {
		return c.Send("Выберите штраф кнопкой или нажмите «Своё значение».")
	}
	negative, err := strconv.ParseFloat(text, 64)
	if err != nil || negative < 0 {
		return c.Send("Введите неотрицательное число, например 0 или 0.25.")
	}
	state.Negative = text
	state.State = database.StateWaitingCreator
	state.CustomInput = false
	if err := h.store.Set(userID, state); err != nil {
		return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
	}
	return c.Send("Кто автор квиза?")
}

func (h *TextHandler) handleCreator(c telebot.Context, userID int64, state database.DialogState, text string) error {
	if text == "" {
		return c.Send("Имя автора не может быть пустым.")
	}

	quiz := model.Quiz{
		Name:        state.QuizName,
		TimeMinutes: state.TimeMinutes,
		Marks:       state.Marks,
		Negative:    state.Negative,
		Creator:     text,
		FileName:    state.FileName,
		Questions:   state.Questions,
	}

	if err := c.Send("Собираю квиз..."); err != nil {
		return err
	}

	result, err := h.quizService.Finalize(context.Background(), quiz)
	if err != nil {
		log.Printf("[bot] failed to finalize quiz: %v", err)
		return c.Send("Не удалось собрать квиз. Попробуйте ещё раз или пришлите /cancel.")
	}
	defer func() {
		_ = os.Remove(result.HTMLPath)
		_ = os.Remove(result.PDFPath)
	}()

	summary := fmt.Sprintf("Квиз «%s» готов!\nВопросов: %d\nВремя: %d мин\nБаллы: +%s / -%s\nАвтор: %s",
		quiz.Name, len(quiz.Questions), quiz.TimeMinutes, quiz.Marks, quiz.Negative, quiz.Creator)
	if err := c.Send(summary); err != nil {
		return err
	}

	htmlDoc := &telebot.Document{
		File:     telebot.FromDisk(result.HTMLPath),
		FileName: quiz.Name + ".html",
	}
	if err := c.Send(htmlDoc); err != nil {
		return fmt.Errorf("failed to send quiz file: %w", err)
	}
	pdfDoc := &telebot.Document{
		File:     telebot.FromDisk(result.PDFPath),
		FileName: quiz.Name + " (ключ).pdf",
	}
	if err := c.Send(pdfDoc); err != nil {
		return fmt.Errorf("failed to send answer key: %w", err)
	}

	// Диалог завершён: бот снова ждёт файл.
	if err := h.store.Set(userID, database.DialogState{State: database.StateWaitingFile}); err != nil {
		return c.Send("Не удалось сохранить состояние.")
	}
	return c.Send("Можно прислать следующий файл с вопросами.")
}

func (h *TextHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
