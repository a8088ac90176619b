package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

func (db *DB) CreateUser(ctx context.Context, username, passwordHash string) error {
	query := db.rebind(`INSERT INTO users (username, password_hash, created_at) VALUES (?, ?, ?)`)
	_, err := db.ExecContext(ctx, query, username, passwordHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateUsername
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (db *DB) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := db.rebind(`SELECT id, username, password_hash, created_at FROM users WHERE username = ?`)

	user := &models.User{}
	err := db.QueryRowContext(ctx, query, username).
		Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNotFound
		}
		return nil, fmt.Errorf("select user: %w", err)
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var serr sqlite3.Error
	if errors.As(err, &serr) {
		return serr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			serr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	var perr *pq.Error
	if errors.As(err, &perr) {
		return perr.Code == "23505" // unique_violation
	}
	return false
}
