package models

import "time"

// User represents a Telegram user taking the course
type User struct {
	ID            int64     `json:"id" db:"id"`
	TelegramID    int64     `json:"telegram_id" db:"telegram_id"` // Telegram User ID
	Username      string    `json:"username" db:"username"`
	CurrentLesson int       `json:"current_lesson" db:"current_lesson"` // Next lesson to show, starts at 1
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
}
