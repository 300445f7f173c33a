package parser

import (
	"regexp"
	"strings"
)

// block — группа классифицированных строк, кандидат в один вопрос.
type block []Line

// strategy — способ нарезки текста на блоки-кандидаты. Стратегии пробуются
// по порядку, результаты разных стратегий никогда не смешиваются.
type strategy interface {
	Name() string
	Segment(content string) []block
}

// markerStrategy режет по маркерам вопросов: блок начинается строкой
// RoleQuestion и длится до следующей такой строки. Текст до первого
// маркера отбрасывается.
type markerStrategy struct{}

func (markerStrategy) Name() string { return "marker" }

func (markerStrategy) Segment(content string) []block {
	var blocks []block
	var cur block
	for _, ln := range classifyAll(content) {
		if ln.Role == RoleQuestion {
			if cur != nil {
				blocks = append(blocks, cur)
			}
			cur = block{ln}
			continue
		}
		if cur != nil {
			cur = append(cur, ln)
		}
	}
	if cur != nil {
		blocks = append(blocks, cur)
	}
	return blocks
}

var blankSplitRe = regexp.MustCompile(`\n\s*\n`)

// blankLineStrategy режет сырой текст по пустым строкам: блок — абзац.
// Маркер вопроса не обязателен, но абзацы короче трёх непустых строк
// отбрасываются: такой абзац не вместит стем и два варианта.
type blankLineStrategy struct{}

func (blankLineStrategy) Name() string { return "blank-line" }

func (blankLineStrategy) Segment(content string) []block {
	var blocks []block
	for _, para := range blankSplitRe.Split(content, -1) {
		if strings.TrimSpace(para) == "" {
			continue
		}
		b := block(classifyAll(para))
		if len(b) < 3 {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}

// strictMarkerStrategy — как markerStrategy, но continuation-строки до
// первого варианта всегда принадлежат стему, и блок с менее чем двумя
// вариантами отбрасывается целиком.
type strictMarkerStrategy struct{}

func (strictMarkerStrategy) Name() string { return "strict-marker" }

func (strictMarkerStrategy) Segment(content string) []block {
	var blocks []block
	for _, b := range (markerStrategy{}).Segment(content) {
		opts := 0
		for _, ln := range b {
			if ln.Role == RoleOption {
				opts++
			}
		}
		if opts < 2 {
			continue
		}
		blocks = append(blocks, b)
	}
	return blocks
}
