package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jmoiron/sqlx"

	"github.com/example/mlcoursebot/pkg/models"
)

const statsCacheSize = 64

// StatisticsRepository handles database operations for the derived
// per-user aggregates
type StatisticsRepository struct {
	db    *sqlx.DB
	cache *lru.Cache[int64, *models.UserStatistics]
}

// NewStatisticsRepository creates a new repository instance
func NewStatisticsRepository(db *sqlx.DB) *StatisticsRepository {
	cache, _ := lru.New[int64, *models.UserStatistics](statsCacheSize)
	return &StatisticsRepository{db: db, cache: cache}
}

// GetByUserID returns the statistics row for a user, or nil if the user
// has no recorded progress yet
func (r *StatisticsRepository) GetByUserID(ctx context.Context, userID int64) (*models.UserStatistics, error) {
	if stats, ok := r.cache.Get(userID); ok {
		return stats, nil
	}

	var stats models.UserStatistics
	query := r.db.Rebind(`
		SELECT user_id, total_time_spent, average_score, completed_lessons, total_attempts, last_activity
		FROM user_statistics
		WHERE user_id = ?
	`)
	err := r.db.GetContext(ctx, &stats, query, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get statistics: %v", err)
	}

	r.cache.Add(userID, &stats)
	return &stats, nil
}

// GetAll returns statistics for every user. The result is unbounded, which
// is acceptable at the bot's user-base scale; administrative use only.
func (r *StatisticsRepository) GetAll(ctx context.Context) ([]models.UserStatistics, error) {
	var stats []models.UserStatistics
	err := r.db.SelectContext(ctx, &stats, `
		SELECT user_id, total_time_spent, average_score, completed_lessons, total_attempts, last_activity
		FROM user_statistics
		ORDER BY last_activity DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to get all statistics: %v", err)
	}
	return stats, nil
}

// refreshTx recomputes the aggregate from the progress table inside the
// caller's transaction and drops the cached copy. average_score is always
// the arithmetic mean over all of the user's quiz scores.
func (r *StatisticsRepository) refreshTx(ctx context.Context, tx *sqlx.Tx, userID int64, now time.Time) error {
	query := tx.Rebind(`
		SELECT COALESCE(AVG(quiz_score), 0), COALESCE(SUM(CASE WHEN completed THEN 1 ELSE 0 END), 0), COALESCE(SUM(attempts), 0)
		FROM progress
		WHERE user_id = ?
	`)

	var avg float64
	var completed, attempts int
	if err := tx.QueryRowContext(ctx, query, userID).Scan(&avg, &completed, &attempts); err != nil {
		return fmt.Errorf("failed to compute statistics: %v", err)
	}

	upsert := tx.Rebind(`
		INSERT INTO user_statistics (user_id, average_score, completed_lessons, total_attempts, last_activity)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (user_id) DO UPDATE SET
			average_score = excluded.average_score,
			completed_lessons = excluded.completed_lessons,
			total_attempts = excluded.total_attempts,
			last_activity = excluded.last_activity
	`)
	if _, err := tx.ExecContext(ctx, upsert, userID, avg, completed, attempts, now); err != nil {
		return fmt.Errorf("failed to update statistics: %v", err)
	}

	r.cache.Remove(userID)
	return nil
}
