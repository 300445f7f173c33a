package model

import "time"

// Quiz описывает собранный квиз: параметры, введённые оператором,
// и канонический список вопросов из парсера.
type Quiz struct {
	Name        string `json:"name"`
	TimeMinutes int    `json:"time_minutes"`
	// Marks и Negative — строковые, т.к. допускают дробные значения ("0.25")
	// и попадают в строковые поля вопросов без преобразования.
	Marks     string     `json:"marks"`
	Negative  string     `json:"negative"`
	Creator   string     `json:"creator"`
	FileName  string     `json:"file_name"`
	Questions []Question `json:"questions"`
	CreatedAt time.Time  `json:"created_at"`
}

// Attempt — одна попытка прохождения квиза, присланная HTML-рендером.
type Attempt struct {
	ID          int     `json:"-"`
	QuizID      string  `json:"quizId"`
	DeviceID    string  `json:"deviceId"`
	Score       float64 `json:"score"`
	Total       float64 `json:"total"`
	Correct     int     `json:"correct"`
	Wrong       int     `json:"wrong"`
	Unattempted int     `json:"unattempted"`
	// TimeTaken — затраченное время в секундах.
	TimeTaken int `json:"timeTaken"`
	// SubmittedAt — момент отправки в миллисекундах Unix-времени;
	// вместе с QuizID и DeviceID идентифицирует попытку.
	SubmittedAt int64 `json:"submittedAt"`
}
