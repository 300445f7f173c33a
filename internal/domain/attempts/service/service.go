package service

import (
	"context"
	"fmt"
	"math"
	"sort"

	"github.com/IT-Nick/quizgen/internal/domain/attempts/repository"
	"github.com/IT-Nick/quizgen/internal/domain/model"
)

// RankResult — место попытки среди всех попыток квиза.
type RankResult struct {
	Rank       int     `json:"rank"`
	Total      int     `json:"total"`
	Percentile float64 `json:"percentile"`
}

// AttemptService для работы с попытками прохождения квизов
type AttemptService struct {
	attemptRepo *repository.AttemptRepository
}

// NewAttemptService создает новый экземпляр AttemptService
func NewAttemptService(attemptRepo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{attemptRepo: attemptRepo}
}

// SaveQuiz сохраняет метаданные квиза
func (s *AttemptService) SaveQuiz(ctx context.Context, quizID string, quiz model.Quiz) error {
	if err := s.attemptRepo.SaveQuiz(ctx, quizID, quiz); err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

// SubmitAttempt сохраняет попытку и возвращает её ранг среди всех попыток квиза
func (s *AttemptService) SubmitAttempt(ctx context.Context, a model.Attempt) (RankResult, error) {
	if _, err := s.attemptRepo.SaveAttempt(ctx, a); err != nil {
		return RankResult{}, fmt.Errorf("failed to submit attempt: %w", err)
	}
	attempts, err := s.attemptRepo.GetAttemptsByQuiz(ctx, a.QuizID)
	if err != nil {
		return RankResult{}, fmt.Errorf("failed to get attempts: %w", err)
	}
	return RankAmong(attempts, a), nil
}

// GetRank пересчитывает ранг ранее сохранённой попытки
func (s *AttemptService) GetRank(ctx context.Context, a model.Attempt) (RankResult, error) {
	attempts, err := s.attemptRepo.GetAttemptsByQuiz(ctx, a.QuizID)
	if err != nil {
		return RankResult{}, fmt.Errorf("failed to get attempts: %w", err)
	}
	return RankAmong(attempts, a), nil
}

// betterThan сравнивает попытки: выше балл, при равенстве — меньше время.
func betterThan(a, b model.Attempt) bool {
	if a.Score != b.Score {
		return a.Score > b.Score
	}
	return a.TimeTaken < b.TimeTaken
}

// RankAmong считает место попытки среди attempts. Попытка сопоставляется
// по устройству и времени отправки; если её нет в списке, она добавляется.
// Перцентиль — доля попыток строго хуже, в процентах с двумя знаками.
func RankAmong(attempts []model.Attempt, target model.Attempt) RankResult {
	found := false
	for _, a := range attempts {
		if a.QuizID == target.QuizID && a.DeviceID == target.DeviceID && a.SubmittedAt == target.SubmittedAt {
			found = true
			break
		}
	}
	if !found {
		attempts = append(attempts, target)
	}

	sorted := make([]model.Attempt, len(attempts))
	copy(sorted, attempts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return betterThan(sorted[i], sorted[j])
	})

	rank := len(sorted)
	for i, a := range sorted {
		if a.DeviceID == target.DeviceID && a.SubmittedAt == target.SubmittedAt {
			rank = i + 1
			break
		}
	}

	below := 0
	for _, a := range sorted {
		if betterThan(target, a) {
			below++
		}
	}
	percentile := float64(below) / float64(len(sorted)) * 100
	percentile = math.Round(percentile*100) / 100

	return RankResult{Rank: rank, Total: len(sorted), Percentile: percentile}
}
