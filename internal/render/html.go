// Пакет render генерирует автономный HTML-файл квиза: вопросы встроены
// в страницу, прохождение работает без сервера, итог отправляется на API
// бота для подсчёта ранга.
package render

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

// Renderer рендерит квиз в HTML.
type Renderer struct {
	tmpl *template.Template
	// apiBase — базовый URL API бота для отправки попыток; пустая строка
	// отключает отправку, квиз остаётся полностью автономным.
	apiBase string
}

// NewRenderer создаёт Renderer. apiBase может быть пустым.
func NewRenderer(apiBase string) (*Renderer, error) {
	tmpl, err := template.New("quiz").Parse(quizTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse quiz template: %w", err)
	}
	return &Renderer{tmpl: tmpl, apiBase: apiBase}, nil
}

type templateData struct {
	QuizID        string
	Name          string
	TimeMinutes   int
	Marks         string
	Negative      string
	Creator       string
	QuestionCount int
	// QuestionsJSON — сериализованные вопросы, вставляются в <script>.
	QuestionsJSON template.JS
	APIBase       string
}

// Render пишет готовую HTML-страницу квиза.
func (r *Renderer) Render(w io.Writer, quizID string, quiz model.Quiz) error {
	data, err := json.Marshal(quiz.Questions)
	if err != nil {
		return fmt.Errorf("failed to marshal questions: %w", err)
	}
	return r.tmpl.Execute(w, templateData{
		QuizID:        quizID,
		Name:          quiz.Name,
		TimeMinutes:   quiz.TimeMinutes,
		Marks:         quiz.Marks,
		Negative:      quiz.Negative,
		Creator:       quiz.Creator,
		QuestionCount: len(quiz.Questions),
		QuestionsJSON: template.JS(data),
		APIBase:       r.apiBase,
	})
}
