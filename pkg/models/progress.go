package models

import "time"

// Progress tracks a user's result for a single lesson quiz.
// There is at most one row per (user, lesson); retries update it in place.
type Progress struct {
	ID          int64     `json:"id" db:"id"`
	UserID      int64     `json:"user_id" db:"user_id"`
	LessonID    int       `json:"lesson_id" db:"lesson_id"`
	QuizScore   int       `json:"quiz_score" db:"quiz_score"` // 0-100
	Completed   bool      `json:"completed" db:"completed"`
	Attempts    int       `json:"attempts" db:"attempts"`
	CompletedAt time.Time `json:"completed_at" db:"completed_at"`
}
