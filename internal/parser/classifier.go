package parser

import (
	"regexp"
	"strings"
)

// Role — роль одной непустой строки входного текста.
type Role int

const (
	// RoleContinuation — строка без распознанного маркера; продолжение
	// текущего поля (стема, варианта или пояснения).
	RoleContinuation Role = iota
	// RoleQuestion — начало вопроса: нумерация "1." / "2)" либо маркер "Q".
	RoleQuestion
	// RoleOption — вариант ответа с буквой a..e в одном из диалектов.
	RoleOption
	// RoleAnswer — строка с ключевым словом Correct/Answer/Ans.
	RoleAnswer
	// RoleExplanation — строка с маркером ex:/explanation:/explain:/solution:.
	RoleExplanation
)

// Line — классифицированная строка: роль плюс извлечённая полезная нагрузка,
// чтобы стратегиям и сборщику не приходилось матчить её повторно.
type Line struct {
	Raw  string // исходная строка, обрезанная по краям
	Role Role
	// Marker — номер вопроса либо буква варианта/ответа в нижнем регистре.
	// Для RoleAnswer пустой Marker означает "ключевое слово есть, буква нет".
	Marker string
	// Text — текст после маркера (для continuation совпадает с Raw).
	Text string
}

// Паттерны маркеров. Порядок проверки фиксирован: вопрос, вариант, ответ,
// пояснение — первая сработавшая роль выигрывает. Голая буква "a" поэтому
// всегда вариант, а не обрывок ответа: строки ответа несут ключевое слово.
var (
	questionNumRe = regexp.MustCompile(`^(\d+)[.)]\s*(.*)$`)
	// Маркер "Q" принимается либо с номером ("Q1.", "Q. 2:"), либо с явным
	// разделителем ("Q:", "Q."), чтобы не съедать обычные слова на букву q.
	questionQNumRe  = regexp.MustCompile(`(?i)^Q\.?\s*(\d+)\s*[.):-]?\s*(.*)$`)
	questionQBareRe = regexp.MustCompile(`(?i)^Q\s*[.):-]\s*(.*)$`)

	// Маркер с разделителем требует текста после себя: одинокое "a)" —
	// это продолжение текущего поля, а не пустой вариант. Голая буква
	// допустима без текста, её заполняют continuation-строки.
	optionDialects = []*regexp.Regexp{
		regexp.MustCompile(`(?i)^([a-e])[.)]\s*(.+)$`),
		regexp.MustCompile(`(?i)^\(([a-e])\)\s*(.+)$`),
		regexp.MustCompile(`(?i)^([a-e])\s*[-:]\s*(.+)$`),
		regexp.MustCompile(`(?i)^([a-e])()$`),
	}

	answerKeywordRe = regexp.MustCompile(`(?i)^(?:correct|answer|ans)\b`)
	// Буква ответа: после разделителя, с допустимой скобкой, ограничена
	// словом — "Answer: (b)", "Correct option:-a", "Ans - c".
	answerLetterRe = regexp.MustCompile(`(?i)[:=-]\s*[([]?\s*([a-e])\b`)

	explanationRe = regexp.MustCompile(`(?i)^(?:ex|explanation|explain|solution)\s*[:-]\s*(.*)$`)
)

// Classify присваивает одной обрезанной непустой строке ровно одну роль.
// Функция чистая: никакого межстрочного состояния.
func Classify(raw string) Line {
	if m := questionNumRe.FindStringSubmatch(raw); m != nil {
		return Line{Raw: raw, Role: RoleQuestion, Marker: m[1], Text: m[2]}
	}
	if m := questionQNumRe.FindStringSubmatch(raw); m != nil {
		return Line{Raw: raw, Role: RoleQuestion, Marker: m[1], Text: m[2]}
	}
	if m := questionQBareRe.FindStringSubmatch(raw); m != nil {
		return Line{Raw: raw, Role: RoleQuestion, Text: m[1]}
	}
	for _, re := range optionDialects {
		if m := re.FindStringSubmatch(raw); m != nil {
			return Line{Raw: raw, Role: RoleOption, Marker: strings.ToLower(m[1]), Text: m[2]}
		}
	}
	if answerKeywordRe.MatchString(raw) {
		letter := ""
		if m := answerLetterRe.FindStringSubmatch(raw); m != nil {
			letter = strings.ToLower(m[1])
		}
		return Line{Raw: raw, Role: RoleAnswer, Marker: letter}
	}
	if m := explanationRe.FindStringSubmatch(raw); m != nil {
		return Line{Raw: raw, Role: RoleExplanation, Text: m[1]}
	}
	return Line{Raw: raw, Role: RoleContinuation, Text: raw}
}

// classifyAll режет текст на непустые обрезанные строки и классифицирует их.
func classifyAll(content string) []Line {
	var lines []Line
	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimSpace(strings.TrimRight(raw, "\r"))
		if raw == "" {
			continue
		}
		lines = append(lines, Classify(raw))
	}
	return lines
}
