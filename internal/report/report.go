package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/IT-Nick/quizgen/internal/domain/model"
	"github.com/jung-kurt/gofpdf"
)

// пустой слот ответа в ключе
const notRecognized = "не распознан"

// GenerateAnswerKey генерирует PDF-ключ к квизу: вопросы, правильные
// ответы и пояснения. fontDir — каталог с UTF-8 шрифтами DejaVu.
// Возвращает имя созданного файла.
func GenerateAnswerKey(quiz model.Quiz, quizID, fontDir string) (string, error) {
	// Создаем новый PDF документ формата A4.
	pdf := gofpdf.New("P", "mm", "A4", "")

	// Регистрируем UTF-8 шрифты, поддерживающие кириллицу.
	pdf.AddUTF8Font("DejaVu", "", filepath.Join(fontDir, "DejaVuSans.ttf"))
	pdf.AddUTF8Font("DejaVu", "B", filepath.Join(fontDir, "DejaVuSans-Bold.ttf"))

	pdf.SetFont("DejaVu", "", 14)
	pdf.AddPage()

	// Заголовок ключа.
	pdf.SetFont("DejaVu", "B", 16)
	pdf.MultiCell(0, 10, fmt.Sprintf("Ключ к квизу «%s»", quiz.Name), "", "L", false)
	pdf.Ln(4)

	pdf.SetFont("DejaVu", "", 12)
	info := fmt.Sprintf("Вопросов: %d\nВремя: %d мин\nБаллы: +%s / -%s\nАвтор: %s\n",
		len(quiz.Questions), quiz.TimeMinutes, quiz.Marks, quiz.Negative, quiz.Creator)
	pdf.MultiCell(0, 8, info, "", "L", false)
	pdf.Ln(4)

	for i, q := range quiz.Questions {
		qHeader := fmt.Sprintf("Вопрос %d:", i+1)
		pdf.SetFont("DejaVu", "B", 12)
		pdf.MultiCell(0, 8, qHeader, "", "L", false)

		pdf.SetFont("DejaVu", "", 12)
		pdf.MultiCell(0, 8, plain(q.QuestionText), "", "L", false)
		pdf.Ln(2)

		answer := notRecognized
		if text := correctOption(q); text != "" {
			answer = fmt.Sprintf("%s) %s", q.Answer, plain(text))
		}
		pdf.MultiCell(0, 8, "Правильный ответ: "+answer, "", "L", false)
		if q.SolutionText != "" {
			pdf.MultiCell(0, 8, "Пояснение: "+plain(q.SolutionText), "", "L", false)
		}
		pdf.Ln(4)
	}

	filename := "key_" + quizID + ".pdf"
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return "", fmt.Errorf("failed to write pdf: %w", err)
	}
	return filename, nil
}

// correctOption возвращает текст правильного варианта вопроса.
func correctOption(q model.Question) string {
	switch q.Answer {
	case "1", "2", "3", "4", "5":
		ordinal := int(q.Answer[0] - '0')
		return q.Option(ordinal)
	}
	return ""
}

// plain заменяет маркеры переноса строк на реальные переносы.
func plain(s string) string {
	return strings.ReplaceAll(s, model.LineBreak, "\n")
}
