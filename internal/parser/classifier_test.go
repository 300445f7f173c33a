package parser

import "testing"

// Проверяем роли и полезную нагрузку для всех диалектов маркеров.
func TestClassify(t *testing.T) {
	cases := []struct {
		raw    string
		role   Role
		marker string
		text   string
	}{
		{"1. What is 2+2?", RoleQuestion, "1", "What is 2+2?"},
		{"12) Longer question", RoleQuestion, "12", "Longer question"},
		{"Q3: Capital of France", RoleQuestion, "3", "Capital of France"},
		{"Q. 7 - Something", RoleQuestion, "7", "Something"},
		{"Q: bare marker", RoleQuestion, "", "bare marker"},

		{"a) 3", RoleOption, "a", "3"},
		{"(b) 4", RoleOption, "b", "4"},
		{"c. five", RoleOption, "c", "five"},
		{"d - six", RoleOption, "d", "six"},
		{"E: seven", RoleOption, "e", "seven"},
		{"e", RoleOption, "e", ""},

		{"Answer: (b)", RoleAnswer, "b", ""},
		{"Correct option:- a", RoleAnswer, "a", ""},
		{"Ans - C", RoleAnswer, "c", ""},
		// Ключевое слово без извлекаемой буквы — маркер пустой.
		{"Answer", RoleAnswer, "", ""},
		{"Correct answer is b", RoleAnswer, "", ""},

		{"ex: basic arithmetic", RoleExplanation, "", "basic arithmetic"},
		{"Solution - use the formula", RoleExplanation, "", "use the formula"},
		{"Explanation: see chapter 2", RoleExplanation, "", "see chapter 2"},

		// Маркер варианта без текста — продолжение, а не пустой вариант.
		{"a)", RoleContinuation, "", "a)"},
		{"(c)", RoleContinuation, "", "(c)"},
		{"b :", RoleContinuation, "", "b :"},

		// Слова на буквы маркеров не должны распознаваться как маркеры.
		{"quadratic equations", RoleContinuation, "", "quadratic equations"},
		{"The capital is Paris", RoleContinuation, "", "The capital is Paris"},
		{"Answers may vary here", RoleContinuation, "", "Answers may vary here"},
	}
	for _, c := range cases {
		got := Classify(c.raw)
		if got.Role != c.role {
			t.Errorf("Classify(%q): role = %v, want %v", c.raw, got.Role, c.role)
			continue
		}
		if got.Marker != c.marker {
			t.Errorf("Classify(%q): marker = %q, want %q", c.raw, got.Marker, c.marker)
		}
		if c.role != RoleAnswer && got.Text != c.text {
			t.Errorf("Classify(%q): text = %q, want %q", c.raw, got.Text, c.text)
		}
	}
}

// Приоритет ролей: голая буква — всегда вариант, а не обрывок ответа.
func TestClassifyPriority(t *testing.T) {
	if got := Classify("a"); got.Role != RoleOption {
		t.Errorf("bare letter: role = %v, want RoleOption", got.Role)
	}
	// "1." — вопрос, даже без текста после маркера.
	if got := Classify("1."); got.Role != RoleQuestion || got.Text != "" {
		t.Errorf("numbered marker without text: got %+v", got)
	}
}

func TestClassifyAllSkipsBlank(t *testing.T) {
	lines := classifyAll("1. One\r\n\n   \na) x\n")
	if len(lines) != 2 {
		t.Fatalf("classifyAll: got %d lines, want 2", len(lines))
	}
	if lines[0].Role != RoleQuestion || lines[1].Role != RoleOption {
		t.Errorf("classifyAll roles: %v, %v", lines[0].Role, lines[1].Role)
	}
}
