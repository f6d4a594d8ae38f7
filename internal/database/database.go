package database

import (
	"database/sql"
	"fmt"
	"os"

	_ "github.com/lib/pq"
)

func Connect() (*sql.DB, error) {
	host := getEnv("DB_HOST", "localhost")
	port := getEnv("DB_PORT", "5432")
	user := getEnv("DB_USER", "edututor_user")
	password := getEnv("DB_PASSWORD", "edututor_password")
	dbname := getEnv("DB_NAME", "edututor")
	sslmode := getEnv("DB_SSLMODE", "disable")

	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	return db, nil
}

func Migrate(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS quiz_attempts (
		id                BIGSERIAL PRIMARY KEY,
		user_id           BIGINT NOT NULL,
		subject           VARCHAR(100) NOT NULL,
		topic             VARCHAR(255),
		score             INT NOT NULL DEFAULT 0,
		total_questions   INT NOT NULL DEFAULT 0,
		percentage        DOUBLE PRECISION NOT NULL DEFAULT 0,
		performance_level VARCHAR(30) NOT NULL,
		answers           JSONB,
		feedback          JSONB,
		adaptive          BOOLEAN NOT NULL DEFAULT FALSE,
		diagnostic        BOOLEAN NOT NULL DEFAULT FALSE,
		created_at        TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_attempts_user ON quiz_attempts(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_attempts_user_subject ON quiz_attempts(user_id, subject, created_at DESC);

	CREATE TABLE IF NOT EXISTS user_profiles (
		user_id              BIGINT PRIMARY KEY,
		student_level        VARCHAR(20) NOT NULL DEFAULT 'Beginner',
		difficulty_level     INT NOT NULL DEFAULT 1,
		diagnostic_completed BOOLEAN NOT NULL DEFAULT FALSE,
		updated_at           TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	if _, err := db.Exec(query); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}

	return nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
