package parser

import (
	"strings"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

// answerOrdinal переводит букву ответа в порядковый номер слота.
// Нераспознанная буква при найденном ключевом слове даёт «1» —
// задокументированная причуда, сохранённая ради совместимости.
func answerOrdinal(letter string) string {
	switch letter {
	case "a":
		return "1"
	case "b":
		return "2"
	case "c":
		return "3"
	case "d":
		return "4"
	case "e":
		return "5"
	}
	return "1"
}

// поле, к которому приклеиваются continuation-строки
type buildMode int

const (
	modeStem buildMode = iota
	modeOption
	modeExplanation
	modeNone
)

func joinPart(dst, part string) string {
	if dst == "" {
		return part
	}
	return dst + model.LineBreak + part
}

// buildQuestion собирает из блока ноль или один вопрос.
// strictStem — стем завершает только первый вариант: строки ответа и
// пояснения до первого варианта тоже уходят в стем.
func buildQuestion(b block, strictStem bool) (model.Question, bool) {
	var q model.Question
	mode := modeStem
	sawOption := false
	curOpt := 0 // текущий слот варианта

	for i, ln := range b {
		role := ln.Role
		text := ln.Text
		// В строгом режиме до первого варианта структурными считаются
		// только сами варианты.
		if strictStem && !sawOption && role != RoleOption && role != RoleQuestion {
			role = RoleContinuation
			text = ln.Raw
		}
		// Повторный маркер внутри блока (возможен при разбиении по пустым
		// строкам) — обычное продолжение текущего поля, нумерация остаётся.
		if role == RoleQuestion && i != 0 {
			role = RoleContinuation
			text = ln.Raw
		}

		switch role {
		case RoleQuestion:
			if ln.Text != "" {
				q.QuestionText = ln.Text
			}
			mode = modeStem

		case RoleContinuation:
			switch mode {
			case modeStem:
				q.QuestionText = joinPart(q.QuestionText, text)
			case modeOption:
				q.SetOption(curOpt, joinPart(q.Option(curOpt), text))
			case modeExplanation:
				q.SolutionText = joinPart(q.SolutionText, text)
			}

		case RoleOption:
			sawOption = true
			if curOpt >= 5 {
				// Лишние варианты игнорируются вместе с их продолжениями.
				mode = modeNone
				continue
			}
			curOpt++
			q.SetOption(curOpt, ln.Text)
			mode = modeOption

		case RoleAnswer:
			q.Answer = answerOrdinal(ln.Marker)
			mode = modeNone

		case RoleExplanation:
			q.SolutionText = joinPart(q.SolutionText, ln.Text)
			mode = modeExplanation
		}
	}

	// Слот, открытый маркером без текста и так и не продолженный,
	// вариантом не считается: оставшиеся сдвигаются на его место.
	opts := q.Options()
	for i := 1; i <= 5; i++ {
		q.SetOption(i, "")
	}
	for i, o := range opts {
		q.SetOption(i+1, o)
	}

	if strings.TrimSpace(q.QuestionText) == "" || q.OptionCount() == 0 {
		return model.Question{}, false
	}
	return q, true
}
