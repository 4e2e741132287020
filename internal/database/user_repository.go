package database

import (
	"context"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/jmoiron/sqlx"

	"github.com/example/mlcoursebot/pkg/models"
)

// userCacheSize bounds the read-through cache for user lookups
const userCacheSize = 64

// UserRepository handles database operations for users.
// Reads go through a bounded LRU cache keyed by telegram_id; every mutation
// invalidates the affected key explicitly, there is no TTL.
type UserRepository struct {
	db    *sqlx.DB
	cache *lru.Cache[int64, *models.User]
}

// NewUserRepository creates a new repository instance
func NewUserRepository(db *sqlx.DB) *UserRepository {
	cache, _ := lru.New[int64, *models.User](userCacheSize)
	return &UserRepository{db: db, cache: cache}
}

// GetOrCreate returns the user with the given Telegram ID, creating it with
// current_lesson = 1 on first contact. The upsert relies on the unique
// constraint on telegram_id, so concurrent first contact cannot produce
// duplicate rows.
func (r *UserRepository) GetOrCreate(ctx context.Context, telegramID int64, username string) (*models.User, error) {
	if user, ok := r.cache.Get(telegramID); ok {
		return user, nil
	}

	query := r.db.Rebind(`
		INSERT INTO users (telegram_id, username)
		VALUES (?, ?)
		ON CONFLICT (telegram_id) DO UPDATE SET username = excluded.username
	`)
	if _, err := r.db.ExecContext(ctx, query, telegramID, username); err != nil {
		return nil, fmt.Errorf("failed to create user: %v", err)
	}

	return r.getByTelegramID(ctx, telegramID)
}

// GetByTelegramID returns a user by Telegram ID
func (r *UserRepository) GetByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	if user, ok := r.cache.Get(telegramID); ok {
		return user, nil
	}
	return r.getByTelegramID(ctx, telegramID)
}

func (r *UserRepository) getByTelegramID(ctx context.Context, telegramID int64) (*models.User, error) {
	var user models.User
	query := r.db.Rebind("SELECT id, telegram_id, username, current_lesson, created_at FROM users WHERE telegram_id = ?")
	if err := r.db.GetContext(ctx, &user, query, telegramID); err != nil {
		return nil, fmt.Errorf("failed to get user by telegram ID: %v", err)
	}

	r.cache.Add(telegramID, &user)
	return &user, nil
}

// AdvanceLesson sets the user's current lesson pointer and drops the cached
// copy so subsequent reads within the process see the new value.
func (r *UserRepository) AdvanceLesson(ctx context.Context, user *models.User, next int) error {
	query := r.db.Rebind("UPDATE users SET current_lesson = ? WHERE id = ?")
	if _, err := r.db.ExecContext(ctx, query, next, user.ID); err != nil {
		return fmt.Errorf("failed to advance lesson: %v", err)
	}

	r.cache.Remove(user.TelegramID)
	return nil
}

// GetAll returns all users, newest first. Administrative use only.
func (r *UserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.SelectContext(ctx, &users,
		"SELECT id, telegram_id, username, current_lesson, created_at FROM users ORDER BY created_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %v", err)
	}
	return users, nil
}

// GetInactiveSince returns users whose last recorded activity is older than
// the given time and who have not yet passed the last lesson.
func (r *UserRepository) GetInactiveSince(ctx context.Context, cutoff time.Time, lastLesson int) ([]models.User, error) {
	query := r.db.Rebind(`
		SELECT u.id, u.telegram_id, u.username, u.current_lesson, u.created_at
		FROM users u
		JOIN user_statistics s ON s.user_id = u.id
		WHERE s.last_activity < ? AND u.current_lesson <= ?
	`)

	var users []models.User
	if err := r.db.SelectContext(ctx, &users, query, cutoff, lastLesson); err != nil {
		return nil, fmt.Errorf("failed to get inactive users: %v", err)
	}
	return users, nil
}
