package document_handler

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/IT-Nick/quizgen/internal/database"
	quizService "github.com/IT-Nick/quizgen/internal/domain/quizzes/service"
	"github.com/IT-Nick/quizgen/internal/infra/keepalive"
	"gopkg.in/telebot.v4"
)

// DocumentHandler структура для обработки присланного файла с вопросами
type DocumentHandler struct {
	bot         *telebot.Bot
	store       database.Store
	quizService *quizService.QuizService
	activity    *keepalive.Activity
	maxFileSize int64
}

// NewDocumentHandler возвращает структуру обработчика
func NewDocumentHandler(
	bot *telebot.Bot,
	store database.Store,
	quizService *quizService.QuizService,
	activity *keepalive.Activity,
	maxFileSize int64,
) *DocumentHandler {
	return &DocumentHandler{
		bot:         bot,
		store:       store,
		quizService: quizService,
		activity:    activity,
		maxFileSize: maxFileSize,
	}
}

// Handle принимает текстовый файл, разбирает его и переводит диалог
// к вводу названия квиза
func (h *DocumentHandler) Handle(c telebot.Context) error {
	h.activity.Touch()
	userID := c.Sender().ID

	state, ok := h.store.Get(userID)
	if !ok {
		state = database.DialogState{State: database.StateWaitingFile}
	}
	if state.State != database.StateWaitingFile {
		return c.Send("Сейчас я жду не файл. Закончите текущий шаг или пришлите /cancel.")
	}

	doc := c.Message().Document
	if doc == nil {
		return c.Send("Пришлите файл документом.")
	}
	if !isPlainText(doc) {
		return c.Send("Я понимаю только текстовые файлы (.txt).")
	}
	if h.maxFileSize > 0 && doc.FileSize > h.maxFileSize {
		return c.Send(fmt.Sprintf("Файл слишком большой: лимит %d КБ.", h.maxFileSize/1024))
	}

	content, err := h.download(doc)
	if err != nil {
		log.Printf("[bot] failed to download document: %v", err)
		return c.Send("Не удалось скачать файл, попробуйте ещё раз.")
	}

	questions := h.quizService.ParseFile(content)
	if len(questions) == 0 {
		return c.Send("Не удалось распознать вопросы в файле. Проверьте формат (/help) и пришлите файл ещё раз.")
	}

	state = database.DialogState{
		State:     database.StateWaitingName,
		FileName:  doc.FileName,
		Questions: questions,
	}
	if err := h.store.Set(userID, state); err != nil {
		return c.Send("Не удалось сохранить состояние, попробуйте ещё раз.")
	}

	return c.Send(fmt.Sprintf("Распознано вопросов: %d.\nВведите название квиза.", len(questions)))
}

func (h *DocumentHandler) download(doc *telebot.Document) (string, error) {
	rc, err := h.bot.File(&doc.File)
	if err != nil {
		return "", fmt.Errorf("failed to get file: %w", err)
	}
	defer rc.Close()

	data, err := readLimited(rc, h.maxFileSize)
	if err != nil {
		return "", fmt.Errorf("failed to read file: %w", err)
	}
	return string(data), nil
}

// readLimited читает поток целиком; неположительный лимит означает
// «без лимита» — так же, как в проверке размера присланного документа.
func readLimited(r io.Reader, limit int64) ([]byte, error) {
	if limit > 0 {
		r = io.LimitReader(r, limit+1)
	}
	return io.ReadAll(r)
}

// isPlainText принимает text/plain либо расширение .txt.
func isPlainText(doc *telebot.Document) bool {
	if doc.MIME == "text/plain" {
		return true
	}
	return strings.HasSuffix(strings.ToLower(doc.FileName), ".txt")
}

func (h *DocumentHandler) GetHandlerFunc() telebot.HandlerFunc {
	return func(c telebot.Context) error {
		return h.Handle(c)
	}
}
