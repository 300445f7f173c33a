package parser

import "testing"

func segmentOne(t *testing.T, content string) block {
	t.Helper()
	blocks := (markerStrategy{}).Segment(content)
	if len(blocks) != 1 {
		t.Fatalf("Segment: got %d blocks, want 1", len(blocks))
	}
	return blocks[0]
}

func TestBuildQuestionBasic(t *testing.T) {
	b := segmentOne(t, "1. What is 2+2?\na) 3\nb) 4\nAnswer: (b)\nex: basic arithmetic")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.QuestionText != "What is 2+2?" {
		t.Errorf("stem = %q", q.QuestionText)
	}
	if q.Option1 != "3" || q.Option2 != "4" {
		t.Errorf("options = %q, %q", q.Option1, q.Option2)
	}
	if q.Answer != "2" {
		t.Errorf("answer = %q, want 2", q.Answer)
	}
	if q.SolutionText != "basic arithmetic" {
		t.Errorf("solution = %q", q.SolutionText)
	}
}

// Слоты вариантов заполняются в порядке встречаемости, буквы не важны.
func TestBuildQuestionOptionOrder(t *testing.T) {
	b := segmentOne(t, "1. Pick one\nb) first seen\na) second seen\nAnswer: a")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.Option1 != "first seen" || q.Option2 != "second seen" {
		t.Errorf("options = %q, %q", q.Option1, q.Option2)
	}
	// Ответ тоже буквенный: a → слот 1, независимо от порядка встречаемости.
	if q.Answer != "1" {
		t.Errorf("answer = %q, want 1", q.Answer)
	}
}

// Многострочные поля склеиваются маркером <br>.
func TestBuildQuestionMultiline(t *testing.T) {
	b := segmentOne(t, "1. First line\nsecond line\na) opt start\nopt tail\nb) other\nex: why\nbecause")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.QuestionText != "First line<br>second line" {
		t.Errorf("stem = %q", q.QuestionText)
	}
	if q.Option1 != "opt start<br>opt tail" {
		t.Errorf("option_1 = %q", q.Option1)
	}
	if q.SolutionText != "why<br>because" {
		t.Errorf("solution = %q", q.SolutionText)
	}
}

// Шестой и последующие варианты игнорируются вместе с продолжениями.
func TestBuildQuestionMaxFiveOptions(t *testing.T) {
	b := segmentOne(t, "1. Six options\na) 1\nb) 2\nc) 3\nd) 4\ne) 5\na) 6\ntail of sixth\nAnswer: e")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.OptionCount() != 5 {
		t.Fatalf("option count = %d, want 5", q.OptionCount())
	}
	if q.Option5 != "5" {
		t.Errorf("option_5 = %q, want %q", q.Option5, "5")
	}
	if q.Answer != "5" {
		t.Errorf("answer = %q, want 5", q.Answer)
	}
}

// Ключевое слово ответа без распознаваемой буквы даёт «1».
func TestBuildQuestionAnswerFallback(t *testing.T) {
	b := segmentOne(t, "1. Something\na) yes\nb) no\nAnswer is obvious")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.Answer != "1" {
		t.Errorf("answer = %q, want fallback 1", q.Answer)
	}
}

// Голая буква без последующих continuation-строк не оставляет пустой
// слот: реальные варианты сдвигаются на его место.
func TestBuildQuestionEmptyBareSlot(t *testing.T) {
	b := segmentOne(t, "1. Pick even\ne\nb) 4\nc) 7\nAnswer: b")
	q, ok := buildQuestion(b, false)
	if !ok {
		t.Fatal("buildQuestion: question rejected")
	}
	if q.OptionCount() != 2 {
		t.Fatalf("option count = %d, want 2", q.OptionCount())
	}
	if q.Option1 != "4" || q.Option2 != "7" {
		t.Errorf("options = %q, %q", q.Option1, q.Option2)
	}
}

// Без вариантов или без стема вопрос отбрасывается.
func TestBuildQuestionRejects(t *testing.T) {
	b := segmentOne(t, "1. Stem only, no options\nmore stem")
	if _, ok := buildQuestion(b, false); ok {
		t.Error("question without options must be rejected")
	}

	b = segmentOne(t, "1.\nAnswer to everything is within\na) 42\nb) 24")
	if _, ok := buildQuestion(b, false); ok {
		t.Error("question without stem must be rejected")
	}
	// В строгом режиме та же строка с ключевым словом уходит в стем.
	q, ok := buildQuestion(b, true)
	if !ok {
		t.Fatal("strict mode: question rejected")
	}
	if q.QuestionText != "Answer to everything is within" {
		t.Errorf("strict stem = %q", q.QuestionText)
	}
}
