package repository

import (
	"context"
	"fmt"

	"github.com/IT-Nick/quizgen/internal/domain/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttemptRepository репозиторий для работы с квизами и попытками прохождения
type AttemptRepository struct {
	db *pgxpool.Pool
}

// NewAttemptRepository создает новый экземпляр AttemptRepository
func NewAttemptRepository(db *pgxpool.Pool) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// EnsureSchema создает таблицы quizzes и attempts, если их еще нет
func (r *AttemptRepository) EnsureSchema(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `
                CREATE TABLE IF NOT EXISTS quizzes (
                        id TEXT PRIMARY KEY,
                        name TEXT NOT NULL,
                        time_minutes INT NOT NULL,
                        marks TEXT NOT NULL,
                        negative TEXT NOT NULL,
                        creator TEXT NOT NULL,
                        file_name TEXT NOT NULL,
                        question_count INT NOT NULL,
                        created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
                )
        `)
	if err != nil {
		return fmt.Errorf("failed to create quizzes table: %w", err)
	}

	_, err = r.db.Exec(ctx, `
                CREATE TABLE IF NOT EXISTS attempts (
                        id SERIAL PRIMARY KEY,
                        quiz_id TEXT NOT NULL,
                        device_id TEXT NOT NULL,
                        score DOUBLE PRECISION NOT NULL,
                        total DOUBLE PRECISION NOT NULL,
                        correct INT NOT NULL,
                        wrong INT NOT NULL,
                        unattempted INT NOT NULL,
                        time_taken INT NOT NULL,
                        submitted_at BIGINT NOT NULL,
                        UNIQUE (quiz_id, device_id, submitted_at)
                )
        `)
	if err != nil {
		return fmt.Errorf("failed to create attempts table: %w", err)
	}
	return nil
}

// SaveQuiz сохраняет метаданные квиза
func (r *AttemptRepository) SaveQuiz(ctx context.Context, quizID string, quiz model.Quiz) error {
	_, err := r.db.Exec(ctx, `
                INSERT INTO quizzes (id, name, time_minutes, marks, negative, creator, file_name, question_count, created_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                ON CONFLICT (id) DO NOTHING
        `, quizID, quiz.Name, quiz.TimeMinutes, quiz.Marks, quiz.Negative, quiz.Creator, quiz.FileName, len(quiz.Questions), quiz.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save quiz: %w", err)
	}
	return nil
}

// SaveAttempt сохраняет попытку и возвращает её идентификатор
func (r *AttemptRepository) SaveAttempt(ctx context.Context, a model.Attempt) (int, error) {
	var id int
	err := r.db.QueryRow(ctx, `
                INSERT INTO attempts (quiz_id, device_id, score, total, correct, wrong, unattempted, time_taken, submitted_at)
                VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
                ON CONFLICT (quiz_id, device_id, submitted_at) DO UPDATE SET score = EXCLUDED.score
                RETURNING id
        `, a.QuizID, a.DeviceID, a.Score, a.Total, a.Correct, a.Wrong, a.Unattempted, a.TimeTaken, a.SubmittedAt).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("failed to save attempt: %w", err)
	}
	return id, nil
}

// GetAttemptsByQuiz возвращает все попытки прохождения квиза
func (r *AttemptRepository) GetAttemptsByQuiz(ctx context.Context, quizID string) ([]model.Attempt, error) {
	rows, err := r.db.Query(ctx, `
                SELECT id, quiz_id, device_id, score, total, correct, wrong, unattempted, time_taken, submitted_at
                FROM attempts WHERE quiz_id = $1
        `, quizID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attempts: %w", err)
	}
	defer rows.Close()

	var attempts []model.Attempt
	for rows.Next() {
		var a model.Attempt
		if err := rows.Scan(&a.ID, &a.QuizID, &a.DeviceID, &a.Score, &a.Total,
			&a.Correct, &a.Wrong, &a.Unattempted, &a.TimeTaken, &a.SubmittedAt); err != nil {
			return nil, fmt.Errorf("failed to scan attempt: %w", err)
		}
		attempts = append(attempts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}

	return attempts, nil
}
