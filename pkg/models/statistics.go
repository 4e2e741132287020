package models

import "time"

// UserStatistics is the derived aggregate over a user's progress records.
// It is refreshed whenever a progress row changes.
type UserStatistics struct {
	UserID           int64     `json:"user_id" db:"user_id"`
	TotalTimeSpent   int       `json:"total_time_spent" db:"total_time_spent"` // Seconds
	AverageScore     float64   `json:"average_score" db:"average_score"`
	CompletedLessons int       `json:"completed_lessons" db:"completed_lessons"`
	TotalAttempts    int       `json:"total_attempts" db:"total_attempts"`
	LastActivity     time.Time `json:"last_activity" db:"last_activity"`
}
