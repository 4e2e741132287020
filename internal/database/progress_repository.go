package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/example/mlcoursebot/pkg/models"
)

// ProgressRepository handles database operations for lesson progress
type ProgressRepository struct {
	db    *sqlx.DB
	stats *StatisticsRepository
}

// NewProgressRepository creates a new repository instance
func NewProgressRepository(db *sqlx.DB, stats *StatisticsRepository) *ProgressRepository {
	return &ProgressRepository{db: db, stats: stats}
}

// RecordProgress upserts the (user, lesson) progress row: the first call
// inserts it, retries overwrite the score and bump the attempts counter.
// The derived user_statistics row is refreshed in the same transaction.
func (r *ProgressRepository) RecordProgress(ctx context.Context, userID int64, lessonID int, score int) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC()
	query := tx.Rebind(`
		INSERT INTO progress (user_id, lesson_id, quiz_score, completed, attempts, completed_at)
		VALUES (?, ?, ?, TRUE, 1, ?)
		ON CONFLICT (user_id, lesson_id) DO UPDATE SET
			quiz_score = excluded.quiz_score,
			completed = TRUE,
			attempts = progress.attempts + 1,
			completed_at = excluded.completed_at
	`)
	if _, err := tx.ExecContext(ctx, query, userID, lessonID, score, now); err != nil {
		return fmt.Errorf("failed to record progress: %v", err)
	}

	if err := r.stats.refreshTx(ctx, tx, userID, now); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit progress: %v", err)
	}
	return nil
}

// ListProgress returns all progress records for a user ordered by lesson
func (r *ProgressRepository) ListProgress(ctx context.Context, userID int64) ([]models.Progress, error) {
	query := r.db.Rebind(`
		SELECT id, user_id, lesson_id, quiz_score, completed, attempts, completed_at
		FROM progress
		WHERE user_id = ?
		ORDER BY lesson_id ASC
	`)

	var progress []models.Progress
	if err := r.db.SelectContext(ctx, &progress, query, userID); err != nil {
		return nil, fmt.Errorf("failed to get user progress: %v", err)
	}
	return progress, nil
}
