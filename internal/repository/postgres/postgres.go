package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/packmate/backend/internal/domain"
)

const schema = `
	CREATE TABLE IF NOT EXISTS theme_templates (
		theme_name TEXT PRIMARY KEY,
		items      JSONB NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS weather_cache (
		location   TEXT NOT NULL,
		date       DATE NOT NULL,
		snapshot   JSONB NOT NULL,
		fetched_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		expires_at TIMESTAMPTZ NOT NULL,
		UNIQUE (location, date)
	);
`

// PostgresRepository implements domain.DataRepository
type PostgresRepository struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

// NewPostgresRepository creates a new PostgreSQL repository
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool, now: time.Now}
}

// EnsureSchema creates the tables the repository needs
func (r *PostgresRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("postgres: failed to create schema: %w", err)
	}
	return nil
}

// GetThemeTemplate loads the items stored for theme
func (r *PostgresRepository) GetThemeTemplate(ctx context.Context, theme string) ([]domain.Item, error) {
	var raw []byte
	err := r.pool.QueryRow(ctx, `SELECT items FROM theme_templates WHERE theme_name = $1`, theme).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrThemeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query theme template: %w", err)
	}

	var items []domain.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("postgres: failed to decode theme template %q: %w", theme, err)
	}
	return items, nil
}

// ListThemes returns every stored theme name in alphabetical order
func (r *PostgresRepository) ListThemes(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT theme_name FROM theme_templates ORDER BY theme_name`)
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to query themes: %w", err)
	}

	themes, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("postgres: failed to scan theme row: %w", err)
	}
	return themes, nil
}

// SeedThemeTemplates inserts templates when the table is empty and returns
// how many were written
func (r *PostgresRepository) SeedThemeTemplates(ctx context.Context, templates []domain.ThemeTemplate) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, fmt.Errorf("postgres: failed to begin seed: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	if _, err := tx.Exec(ctx, `LOCK TABLE theme_templates IN EXCLUSIVE MODE`); err != nil {
		return 0, fmt.Errorf("postgres: failed to lock theme templates: %w", err)
	}

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM theme_templates`).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count theme templates: %w", err)
	}
	if count > 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for _, tmpl := range templates {
		raw, err := json.Marshal(tmpl.Items)
		if err != nil {
			return 0, fmt.Errorf("postgres: failed to encode theme template %q: %w", tmpl.ThemeName, err)
		}
		batch.Queue(`INSERT INTO theme_templates (theme_name, items) VALUES ($1, $2)`, tmpl.ThemeName, raw)
	}
	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		return 0, fmt.Errorf("postgres: failed to insert theme templates: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, fmt.Errorf("postgres: failed to commit seed: %w", err)
	}
	return len(templates), nil
}

// GetCachedWeather returns the unexpired snapshot stored for location and date
func (r *PostgresRepository) GetCachedWeather(ctx context.Context, location string, date time.Time) (domain.WeatherSnapshot, bool, error) {
	query := `
		SELECT snapshot
		FROM weather_cache
		WHERE location = $1 AND date = $2 AND expires_at > $3
	`

	var raw []byte
	err := r.pool.QueryRow(ctx, query, location, cacheDate(date), r.now()).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WeatherSnapshot{}, false, nil
	}
	if err != nil {
		return domain.WeatherSnapshot{}, false, fmt.Errorf("postgres: failed to query weather cache: %w", err)
	}

	var snap domain.WeatherSnapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return domain.WeatherSnapshot{}, false, fmt.Errorf("postgres: failed to decode cached weather: %w", err)
	}
	return snap, true, nil
}

// SaveCachedWeather upserts the snapshot for location and date
func (r *PostgresRepository) SaveCachedWeather(ctx context.Context, location string, date time.Time, snapshot domain.WeatherSnapshot, expiresAt time.Time) error {
	query := `
		INSERT INTO weather_cache (location, date, snapshot, fetched_at, expires_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (location, date) DO UPDATE
		SET snapshot = EXCLUDED.snapshot,
			fetched_at = EXCLUDED.fetched_at,
			expires_at = EXCLUDED.expires_at
	`

	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("postgres: failed to encode weather snapshot: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, location, cacheDate(date), raw, r.now(), expiresAt); err != nil {
		return fmt.Errorf("postgres: failed to save cached weather: %w", err)
	}
	return nil
}

// Health checks database connectivity
func (r *PostgresRepository) Health(ctx context.Context) error {
	if err := r.pool.Ping(ctx); err != nil {
		return fmt.Errorf("postgres: health check failed: %w", err)
	}
	return nil
}

// cacheDate keeps the calendar day of t as seen in its own location
func cacheDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
