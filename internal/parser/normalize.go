package parser

import (
	"strconv"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

// idBase — база сквозной нумерации вопросов: первый вопрос получает 50001.
const idBase = 50000

// Overrides — значения, которыми фронтенд переопределяет дефолты
// нормализатора: веса за ответ и идентификатор квиза.
type Overrides struct {
	QuizID        string
	CorrectScore  string
	NegativeScore string
}

// Normalize доводит собранные вопросы до канонического вида: сквозные id,
// веса, поля-заглушки рендер-контракта. Заполненные сборщиком поля
// не трогаются. Слайс модифицируется на месте и возвращается.
func Normalize(questions []model.Question, ov Overrides) []model.Question {
	correct := ov.CorrectScore
	if correct == "" {
		correct = "1"
	}
	negative := ov.NegativeScore
	if negative == "" {
		negative = "0"
	}
	for i := range questions {
		q := &questions[i]
		q.ID = strconv.Itoa(idBase + i + 1)
		q.QuizID = ov.QuizID
		q.CorrectScore = correct
		q.NegativeScore = negative
		q.Deleted = "0"
		q.DifficultyLevel = "0"
		q.SortingParam = "0.00"
	}
	return questions
}
