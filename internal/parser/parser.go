// Пакет parser превращает плоский текст банка вопросов в канонический
// список вопросов квиза. Три стратегии сегментации пробуются по очереди,
// выигрывает первая, распознавшая хотя бы один вопрос.
package parser

import (
	"log"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

var strategies = []strategy{
	markerStrategy{},
	blankLineStrategy{},
	strictMarkerStrategy{},
}

// Parse разбирает текст банка вопросов. Функция чистая и детерминированная:
// одинаковый вход даёт одинаковый результат. Нераспознаваемый текст — это
// не ошибка, а пустой срез.
func Parse(content string) []model.Question {
	for _, s := range strategies {
		strict := s.Name() == "strict-marker"
		var questions []model.Question
		for _, b := range s.Segment(content) {
			if q, ok := buildQuestion(b, strict); ok {
				questions = append(questions, q)
			}
		}
		if len(questions) > 0 {
			log.Printf("[parser] strategy %q parsed %d question(s)", s.Name(), len(questions))
			return questions
		}
	}
	return nil
}

// ParseNormalized — Parse плюс нормализация метаданных одним вызовом.
func ParseNormalized(content string, ov Overrides) []model.Question {
	return Normalize(Parse(content), ov)
}
