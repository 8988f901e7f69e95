// Package stats reads the meal and profile counters out of the nutrition
// database.
package stats

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	"github.com/pders01/fna-context/internal/models"
	"go.uber.org/zap"

	_ "modernc.org/sqlite"
)

var (
	// ErrMissingStore means the database file does not exist
	ErrMissingStore = errors.New("database not found")
	// ErrQueryFailed wraps any error raised while opening or querying the database
	ErrQueryFailed = errors.New("database query failed")
)

const (
	totalMealsQuery = `SELECT COUNT(*) FROM meals`
	mealsTodayQuery = `SELECT COUNT(*) FROM meals WHERE date(timestamp) = date('now')`
	profileQuery    = `SELECT name, cal_target FROM profile WHERE id = 1`
)

// Query reads a fresh snapshot from the database at path. The database is
// opened read-only and closed before returning. On error the returned
// snapshot holds the defaults.
func Query(ctx context.Context, path string) (models.StatsSnapshot, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return models.DefaultSnapshot(), fmt.Errorf("%w: %s", ErrMissingStore, path)
		}
		return models.DefaultSnapshot(), fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	source, err := dsn(path)
	if err != nil {
		return models.DefaultSnapshot(), fmt.Errorf("%w: %w", ErrQueryFailed, err)
	}

	db, err := sql.Open("sqlite", source)
	if err != nil {
		return models.DefaultSnapshot(), fmt.Errorf("%w: open: %w", ErrQueryFailed, err)
	}
	defer db.Close()

	snap := models.DefaultSnapshot()

	if err := db.QueryRowContext(ctx, totalMealsQuery).Scan(&snap.TotalMeals); err != nil {
		return models.DefaultSnapshot(), fmt.Errorf("%w: count meals: %w", ErrQueryFailed, err)
	}

	if err := db.QueryRowContext(ctx, mealsTodayQuery).Scan(&snap.MealsToday); err != nil {
		return models.DefaultSnapshot(), fmt.Errorf("%w: count today's meals: %w", ErrQueryFailed, err)
	}

	var (
		name   sql.NullString
		target sql.NullInt64
	)
	err = db.QueryRowContext(ctx, profileQuery).Scan(&name, &target)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// no profile saved yet
	case err != nil:
		return models.DefaultSnapshot(), fmt.Errorf("%w: read profile: %w", ErrQueryFailed, err)
	default:
		snap.ProfileExists = true
		snap.ProfileName = name.String
		if target.Valid && target.Int64 != 0 {
			snap.CalTarget = int(target.Int64)
		}
	}

	return snap, nil
}

// Gather is Query with failures logged and replaced by the defaults
func Gather(ctx context.Context, logger *zap.Logger, path string) models.StatsSnapshot {
	snap, err := Query(ctx, path)
	switch {
	case err == nil:
	case errors.Is(err, ErrMissingStore):
		logger.Warn("Database missing, using defaults", zap.String("path", path))
	default:
		logger.Warn("Database error, using defaults", zap.String("path", path), zap.Error(err))
	}
	return snap
}

// dsn builds a read-only file: URI. The path must be absolute, otherwise
// SQLite takes its first element for the URI authority.
func dsn(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("failed to resolve database path: %w", err)
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(abs), RawQuery: "mode=ro"}
	return u.String(), nil
}
