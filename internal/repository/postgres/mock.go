package postgres

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/packmate/backend/internal/domain"
)

type cacheEntry struct {
	snapshot  domain.WeatherSnapshot
	expiresAt time.Time
}

// MockRepository implements domain.DataRepository in memory for demo mode
// and tests
type MockRepository struct {
	mu        sync.RWMutex
	templates map[string][]domain.Item
	weather   map[string]cacheEntry
	now       func() time.Time
}

// NewMockRepository creates a new mock repository
func NewMockRepository() *MockRepository {
	return &MockRepository{
		templates: make(map[string][]domain.Item),
		weather:   make(map[string]cacheEntry),
		now:       time.Now,
	}
}

// GetThemeTemplate returns a copy of the items stored for theme
func (r *MockRepository) GetThemeTemplate(ctx context.Context, theme string) ([]domain.Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items, ok := r.templates[theme]
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	return append([]domain.Item(nil), items...), nil
}

// ListThemes returns every stored theme name in alphabetical order
func (r *MockRepository) ListThemes(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	themes := make([]string, 0, len(r.templates))
	for name := range r.templates {
		themes = append(themes, name)
	}
	sort.Strings(themes)
	return themes, nil
}

// SeedThemeTemplates stores templates when the mock holds none
func (r *MockRepository) SeedThemeTemplates(ctx context.Context, templates []domain.ThemeTemplate) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.templates) > 0 {
		return 0, nil
	}
	for _, tmpl := range templates {
		r.templates[tmpl.ThemeName] = append([]domain.Item(nil), tmpl.Items...)
	}
	return len(templates), nil
}

// GetCachedWeather returns the unexpired snapshot for location and date
func (r *MockRepository) GetCachedWeather(ctx context.Context, location string, date time.Time) (domain.WeatherSnapshot, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.weather[weatherKey(location, date)]
	if !ok || !entry.expiresAt.After(r.now()) {
		return domain.WeatherSnapshot{}, false, nil
	}
	return entry.snapshot, true, nil
}

// SaveCachedWeather stores snapshot until expiresAt
func (r *MockRepository) SaveCachedWeather(ctx context.Context, location string, date time.Time, snapshot domain.WeatherSnapshot, expiresAt time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.weather[weatherKey(location, date)] = cacheEntry{snapshot: snapshot, expiresAt: expiresAt}
	return nil
}

// Health always returns nil in mock mode
func (r *MockRepository) Health(ctx context.Context) error {
	return nil
}

func weatherKey(location string, date time.Time) string {
	return location + "|" + cacheDate(date).Format("2006-01-02")
}
