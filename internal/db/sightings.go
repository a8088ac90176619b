package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AnjaliVanamala/Wildlife-Tracker/internal/models"
)

// InsertSightings persists the batch inside a single transaction: either
// every row is durably saved or none are. Rows without a CreatedAt get the
// current time, so a batch shares one insertion timestamp.
func (db *DB) InsertSightings(ctx context.Context, rows []models.Sighting) (err error) {
	if len(rows) == 0 {
		return nil
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
			return
		}
		err = tx.Commit()
	}()

	query := db.rebind(`INSERT INTO sightings
		(username, animal, location, day, time, number, male_count, female_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)

	now := time.Now().UTC()
	for _, s := range rows {
		createdAt := s.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		_, err = tx.ExecContext(ctx, query,
			s.Username, s.Animal, s.Location, s.Day, s.Time,
			s.Number, nullableInt(s.MaleCount), nullableInt(s.FemaleCount), createdAt)
		if err != nil {
			return fmt.Errorf("insert sighting: %w", err)
		}
	}
	return nil
}

// SightingsByOwner returns every sighting recorded by username, newest first.
// Ties on created_at (rows from one batch) fall back to insertion order.
func (db *DB) SightingsByOwner(ctx context.Context, username string) ([]models.Sighting, error) {
	query := db.rebind(`SELECT id, username, animal, location, day, time,
			number, male_count, female_count, created_at
		FROM sightings
		WHERE username = ?
		ORDER BY created_at DESC, id DESC`)

	rows, err := db.QueryContext(ctx, query, username)
	if err != nil {
		return nil, fmt.Errorf("select sightings: %w", err)
	}
	defer rows.Close()

	var sightings []models.Sighting
	for rows.Next() {
		var s models.Sighting
		var male, female sql.NullInt64
		err := rows.Scan(&s.ID, &s.Username, &s.Animal, &s.Location, &s.Day, &s.Time,
			&s.Number, &male, &female, &s.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("scan sighting: %w", err)
		}
		s.MaleCount = intPtr(male)
		s.FemaleCount = intPtr(female)
		sightings = append(sightings, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sightings: %w", err)
	}
	return sightings, nil
}

func nullableInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
