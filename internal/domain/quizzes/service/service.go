package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	attemptsService "github.com/IT-Nick/quizgen/internal/domain/attempts/service"
	"github.com/IT-Nick/quizgen/internal/domain/model"
	"github.com/IT-Nick/quizgen/internal/parser"
	"github.com/IT-Nick/quizgen/internal/render"
	"github.com/IT-Nick/quizgen/internal/report"
)

// FinalizeResult — файлы, сгенерированные для готового квиза.
type FinalizeResult struct {
	QuizID   string
	HTMLPath string
	PDFPath  string
}

// QuizService собирает готовый квиз: нормализует вопросы, рендерит
// HTML-файл и PDF-ключ, сохраняет метаданные в БД (если она настроена).
type QuizService struct {
	renderer *render.Renderer
	// attemptService может быть nil — тогда квиз не сохраняется
	// и ранжирование в HTML не работает.
	attemptService *attemptsService.AttemptService
	fontDir        string
}

// NewQuizService создает новый экземпляр QuizService
func NewQuizService(renderer *render.Renderer, attemptService *attemptsService.AttemptService, fontDir string) *QuizService {
	return &QuizService{
		renderer:       renderer,
		attemptService: attemptService,
		fontDir:        fontDir,
	}
}

// ParseFile разбирает содержимое файла с банком вопросов.
// Пустой результат — не ошибка: файл просто не распознан.
func (s *QuizService) ParseFile(content string) []model.Question {
	return parser.Parse(content)
}

// Finalize доводит черновик до готового квиза и генерирует файлы.
// Вызывающий обязан удалить файлы после отправки.
func (s *QuizService) Finalize(ctx context.Context, quiz model.Quiz) (FinalizeResult, error) {
	quizID := fmt.Sprintf("quiz-%d", time.Now().UnixNano())
	quiz.CreatedAt = time.Now()
	quiz.Questions = parser.Normalize(quiz.Questions, parser.Overrides{
		QuizID:        quizID,
		CorrectScore:  quiz.Marks,
		NegativeScore: quiz.Negative,
	})

	htmlPath := quizID + ".html"
	f, err := os.Create(htmlPath)
	if err != nil {
		return FinalizeResult{}, fmt.Errorf("failed to create html file: %w", err)
	}
	if err := s.renderer.Render(f, quizID, quiz); err != nil {
		_ = f.Close()
		_ = os.Remove(htmlPath)
		return FinalizeResult{}, fmt.Errorf("failed to render quiz: %w", err)
	}
	if err := f.Close(); err != nil {
		return FinalizeResult{}, fmt.Errorf("failed to close html file: %w", err)
	}

	pdfPath, err := report.GenerateAnswerKey(quiz, quizID, s.fontDir)
	if err != nil {
		_ = os.Remove(htmlPath)
		return FinalizeResult{}, fmt.Errorf("failed to generate answer key: %w", err)
	}

	if s.attemptService != nil {
		if err := s.attemptService.SaveQuiz(ctx, quizID, quiz); err != nil {
			// Квиз уже сгенерирован, поэтому ошибка БД не фатальна.
			log.Printf("[quiz] failed to save quiz metadata: %v", err)
		}
	}

	return FinalizeResult{QuizID: quizID, HTMLPath: htmlPath, PDFPath: pdfPath}, nil
}
