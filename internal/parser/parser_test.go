package parser

import (
	"reflect"
	"strings"
	"testing"
)

// Сквозной сценарий: нумерованный банк вопросов, стратегия по маркерам.
func TestParseNumbered(t *testing.T) {
	content := strings.Join([]string{
		"1. What is 2+2?",
		"a) 3",
		"b) 4",
		"Answer: (b)",
		"ex: basic arithmetic",
		"2. Capital of France?",
		"a) London",
		"b) Paris",
		"c) Berlin",
		"Answer: b",
	}, "\n")

	got := Parse(content)
	if len(got) != 2 {
		t.Fatalf("Parse: got %d questions, want 2", len(got))
	}
	q := got[0]
	if q.QuestionText != "What is 2+2?" || q.Option1 != "3" || q.Option2 != "4" {
		t.Errorf("first question: %+v", q)
	}
	if q.Answer != "2" || q.SolutionText != "basic arithmetic" {
		t.Errorf("first question answer/solution: %q / %q", q.Answer, q.SolutionText)
	}
	if got[1].Answer != "2" || got[1].Option3 != "Berlin" {
		t.Errorf("second question: %+v", got[1])
	}
}

// Без нумерации срабатывает разбиение по пустым строкам.
func TestParseBlankLineFallback(t *testing.T) {
	content := strings.Join([]string{
		"What is the capital of France?",
		"a) London",
		"b) Paris",
		"Answer: b",
		"",
		"Which gas do plants absorb?",
		"a) Oxygen",
		"b) Carbon dioxide",
		"Answer: (b)",
	}, "\n")

	got := Parse(content)
	if len(got) != 2 {
		t.Fatalf("Parse: got %d questions, want 2", len(got))
	}
	if got[0].QuestionText != "What is the capital of France?" {
		t.Errorf("stem = %q", got[0].QuestionText)
	}
	if got[0].Answer != "2" || got[1].Answer != "2" {
		t.Errorf("answers = %q, %q", got[0].Answer, got[1].Answer)
	}
}

// Стем, начинающийся с ключевого слова ответа, спасает только строгая
// стратегия: первые две дают ноль вопросов.
func TestParseStrictFallback(t *testing.T) {
	content := strings.Join([]string{
		"Q:",
		"Answer sheets must not be used for",
		"a) rough work",
		"b) doodling",
		"Answer: (a)",
	}, "\n")

	got := Parse(content)
	if len(got) != 1 {
		t.Fatalf("Parse: got %d questions, want 1", len(got))
	}
	if got[0].QuestionText != "Answer sheets must not be used for" {
		t.Errorf("stem = %q", got[0].QuestionText)
	}
	if got[0].Answer != "1" {
		t.Errorf("answer = %q, want 1", got[0].Answer)
	}
}

// Одинокий маркер "a)" без текста не превращается в пустой вариант
// и не топит весь вопрос: он уходит в текущее поле как продолжение.
func TestParseOptionMarkerWithoutText(t *testing.T) {
	content := strings.Join([]string{
		"1. Which number is even?",
		"a)",
		"b) 4",
		"c) 7",
		"Answer: b",
	}, "\n")

	got := Parse(content)
	if len(got) != 1 {
		t.Fatalf("Parse: got %d questions, want 1", len(got))
	}
	q := got[0]
	if q.OptionCount() != 2 || q.Option1 != "4" || q.Option2 != "7" {
		t.Errorf("options: %q, %q (count %d)", q.Option1, q.Option2, q.OptionCount())
	}
	if q.Answer != "2" {
		t.Errorf("answer = %q, want 2", q.Answer)
	}
}

// Проза без структуры — пустой результат, а не ошибка.
func TestParseProse(t *testing.T) {
	content := "This is just a paragraph of text.\nIt talks about nothing in particular.\nNo options, no answers, no markers."
	if got := Parse(content); got != nil {
		t.Errorf("Parse(prose) = %d questions, want none", len(got))
	}
	if got := Parse(""); got != nil {
		t.Errorf("Parse(empty) = %d questions, want none", len(got))
	}
}

// Повторный запуск на том же входе даёт идентичный результат.
func TestParseDeterministic(t *testing.T) {
	content := "1. Repeatable?\na) yes\nb) no\nAnswer: a"
	first := ParseNormalized(content, Overrides{QuizID: "z1"})
	second := ParseNormalized(content, Overrides{QuizID: "z1"})
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\n%+v\n%+v", first, second)
	}
}

func TestNormalize(t *testing.T) {
	content := "1. One?\na) x\nb) y\nAnswer: a\n2. Two?\na) p\nb) q\nAnswer: b"
	got := ParseNormalized(content, Overrides{
		QuizID:        "quiz-7",
		CorrectScore:  "2",
		NegativeScore: "0.5",
	})
	if len(got) != 2 {
		t.Fatalf("got %d questions, want 2", len(got))
	}
	if got[0].ID != "50001" || got[1].ID != "50002" {
		t.Errorf("ids = %q, %q", got[0].ID, got[1].ID)
	}
	for _, q := range got {
		if q.QuizID != "quiz-7" || q.CorrectScore != "2" || q.NegativeScore != "0.5" {
			t.Errorf("overrides not applied: %+v", q)
		}
		if q.Deleted != "0" || q.DifficultyLevel != "0" || q.SortingParam != "0.00" {
			t.Errorf("stub fields: %+v", q)
		}
	}
	// Дефолтные веса, когда overrides пустые.
	def := Normalize(Parse("1. D?\na) 1\nb) 2\nAnswer: a"), Overrides{})
	if def[0].CorrectScore != "1" || def[0].NegativeScore != "0" {
		t.Errorf("default scores = %q, %q", def[0].CorrectScore, def[0].NegativeScore)
	}
}
