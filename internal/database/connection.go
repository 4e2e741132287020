package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Connect establishes the database connection from environment
// configuration. DB_TYPE selects the driver: "sqlite" (default, file under
// data/) or "postgres" (connection string taken from DATABASE_URL).
func Connect() (*sqlx.DB, error) {
	dbType := os.Getenv("DB_TYPE")
	if dbType == "" {
		dbType = "sqlite"
	}

	if dbType == "postgres" {
		dsn := os.Getenv("DATABASE_URL")
		if dsn == "" {
			return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
		}
		return Open("postgres", dsn)
	}

	// Create data directory if it doesn't exist
	dataDir := "data"
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %v", err)
	}

	return Open("sqlite3", filepath.Join(dataDir, "mlcoursebot.db"))
}

// Open connects with the given driver and DSN and initializes the schema
func Open(driver, dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Connect(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %v", err)
	}

	if driver == "sqlite3" {
		// Enable foreign keys
		if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}

		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	if err := initializeSchema(db); err != nil {
		return nil, err
	}

	return db, nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	// SQLite and PostgreSQL disagree on auto-increment syntax
	pk := "INTEGER PRIMARY KEY AUTOINCREMENT"
	if db.DriverName() == "postgres" {
		pk = "BIGSERIAL PRIMARY KEY"
	}

	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id ` + pk + `,
			telegram_id INTEGER UNIQUE NOT NULL,
			username TEXT,
			current_lesson INTEGER NOT NULL DEFAULT 1,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create users table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS progress (
			id ` + pk + `,
			user_id INTEGER NOT NULL,
			lesson_id INTEGER NOT NULL,
			quiz_score INTEGER NOT NULL DEFAULT 0,
			completed BOOLEAN NOT NULL DEFAULT FALSE,
			attempts INTEGER NOT NULL DEFAULT 0,
			completed_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id),
			UNIQUE(user_id, lesson_id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create progress table: %v", err)
	}

	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS user_statistics (
			user_id INTEGER PRIMARY KEY,
			total_time_spent INTEGER NOT NULL DEFAULT 0,
			average_score REAL NOT NULL DEFAULT 0,
			completed_lessons INTEGER NOT NULL DEFAULT 0,
			total_attempts INTEGER NOT NULL DEFAULT 0,
			last_activity TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (user_id) REFERENCES users(id)
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create user_statistics table: %v", err)
	}

	return nil
}
