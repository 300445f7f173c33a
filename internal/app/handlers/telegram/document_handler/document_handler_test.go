package document_handler

import (
	"strings"
	"testing"

	"gopkg.in/telebot.v4"
)

// Неположительный лимит означает «без лимита», а не обрезку до одного байта.
func TestReadLimited(t *testing.T) {
	content := strings.Repeat("x", 100)

	for _, limit := range []int64{0, -1} {
		data, err := readLimited(strings.NewReader(content), limit)
		if err != nil {
			t.Fatalf("readLimited(limit=%d): %v", limit, err)
		}
		if len(data) != len(content) {
			t.Errorf("readLimited(limit=%d): прочитано %d байт, want %d", limit, len(data), len(content))
		}
	}

	// Положительный лимит ограничивает чтение.
	data, err := readLimited(strings.NewReader(content), 10)
	if err != nil {
		t.Fatalf("readLimited(limit=10): %v", err)
	}
	if len(data) != 11 {
		t.Errorf("readLimited(limit=10): прочитано %d байт, want 11", len(data))
	}
}

// Проверка типа файла: text/plain либо расширение .txt.
func TestIsPlainText(t *testing.T) {
	cases := []struct {
		doc  telebot.Document
		want bool
	}{
		{telebot.Document{MIME: "text/plain", FileName: "bank.dat"}, true},
		{telebot.Document{MIME: "application/octet-stream", FileName: "bank.TXT"}, true},
		{telebot.Document{MIME: "application/pdf", FileName: "bank.pdf"}, false},
	}
	for _, c := range cases {
		if got := isPlainText(&c.doc); got != c.want {
			t.Errorf("isPlainText(%s, %s) = %v, want %v", c.doc.MIME, c.doc.FileName, got, c.want)
		}
	}
}
