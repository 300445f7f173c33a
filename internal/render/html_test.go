package render

import (
	"strings"
	"testing"
	"time"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

func testQuiz() model.Quiz {
	return model.Quiz{
		Name:        "Арифметика",
		TimeMinutes: 15,
		Marks:       "2",
		Negative:    "0.5",
		Creator:     "ivanov",
		FileName:    "bank.txt",
		Questions: []model.Question{
			{
				ID:           "50001",
				QuestionText: "What is 2+2?",
				Option1:      "3",
				Option2:      "4",
				Answer:       "2",
				SolutionText: "basic arithmetic",
			},
		},
		CreatedAt: time.Now(),
	}
}

func TestRender(t *testing.T) {
	r, err := NewRenderer("https://bot.example.com")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "quiz-1", testQuiz()); err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := sb.String()

	for _, want := range []string{
		"Арифметика",
		"What is 2+2?",
		`"option_2":"4"`,
		`"answer":"2"`,
		"https://bot.example.com",
		"localStorage",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

// Пустой apiBase допустим: квиз остаётся автономным.
func TestRenderWithoutAPI(t *testing.T) {
	r, err := NewRenderer("")
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "quiz-2", testQuiz()); err != nil {
		t.Fatalf("Render: %v", err)
	}
}
