package service

import (
	"testing"

	"github.com/IT-Nick/quizgen/internal/domain/model"
)

func attempt(device string, score float64, timeTaken int) model.Attempt {
	return model.Attempt{
		QuizID:      "q1",
		DeviceID:    device,
		Score:       score,
		TimeTaken:   timeTaken,
		SubmittedAt: 1700000000000,
	}
}

// Ранг: балл по убыванию, при равных баллах — время по возрастанию.
func TestRankAmong(t *testing.T) {
	attempts := []model.Attempt{
		attempt("d1", 8, 300),
		attempt("d2", 10, 400),
		attempt("d3", 8, 200),
		attempt("d4", 5, 100),
	}

	cases := []struct {
		device     string
		rank       int
		percentile float64
	}{
		{"d2", 1, 75},    // лучший балл
		{"d3", 2, 50},    // равный балл, меньше время
		{"d1", 3, 25},    // равный балл, больше время
		{"d4", 4, 0},     // худший
	}
	for _, c := range cases {
		var target model.Attempt
		for _, a := range attempts {
			if a.DeviceID == c.device {
				target = a
			}
		}
		got := RankAmong(attempts, target)
		if got.Rank != c.rank {
			t.Errorf("%s: rank = %d, want %d", c.device, got.Rank, c.rank)
		}
		if got.Total != 4 {
			t.Errorf("%s: total = %d, want 4", c.device, got.Total)
		}
		if got.Percentile != c.percentile {
			t.Errorf("%s: percentile = %v, want %v", c.device, got.Percentile, c.percentile)
		}
	}
}

// Попытка, которой нет в выборке, добавляется перед подсчётом.
func TestRankAmongMissingTarget(t *testing.T) {
	attempts := []model.Attempt{
		attempt("d1", 10, 100),
		attempt("d2", 4, 500),
	}
	target := attempt("d3", 7, 300)

	got := RankAmong(attempts, target)
	if got.Rank != 2 || got.Total != 3 {
		t.Errorf("rank/total = %d/%d, want 2/3", got.Rank, got.Total)
	}
	if got.Percentile != 33.33 {
		t.Errorf("percentile = %v, want 33.33", got.Percentile)
	}
}

// Единственная попытка — первое место, нулевой перцентиль.
func TestRankAmongSingle(t *testing.T) {
	target := attempt("d1", 3, 60)
	got := RankAmong(nil, target)
	if got.Rank != 1 || got.Total != 1 || got.Percentile != 0 {
		t.Errorf("got %+v", got)
	}
}
