package domain

import (
	"context"
	"time"
)

// ThemeStore resolves theme tags to their template checklists
type ThemeStore interface {
	// GetThemeTemplate returns the template items, or ErrThemeNotFound
	GetThemeTemplate(ctx context.Context, theme string) ([]Item, error)

	// ListThemes returns every stored theme name
	ListThemes(ctx context.Context) ([]string, error)

	// SeedThemeTemplates inserts templates when the store is empty and
	// returns how many were written
	SeedThemeTemplates(ctx context.Context, templates []ThemeTemplate) (int, error)
}

// WeatherCache keeps resolved snapshots per location and calendar day
type WeatherCache interface {
	// GetCachedWeather returns a non-expired snapshot; ok is false on a miss
	GetCachedWeather(ctx context.Context, location string, date time.Time) (snapshot WeatherSnapshot, ok bool, err error)

	// SaveCachedWeather stores or replaces the snapshot for location and date
	SaveCachedWeather(ctx context.Context, location string, date time.Time, snapshot WeatherSnapshot, expiresAt time.Time) error
}

// DataRepository defines the interface for data persistence
// This follows the Dependency Inversion Principle - domain defines the interface
type DataRepository interface {
	ThemeStore
	WeatherCache

	// Health checks database connectivity
	Health(ctx context.Context) error
}
