package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/packmate/backend/internal/domain"
)

// fixedClock returns a Clock frozen at t
func fixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// fakeThemeStore implements domain.ThemeStore for testing.
type fakeThemeStore struct {
	templates map[string][]domain.Item
	errs      map[string]error
}

func (f *fakeThemeStore) GetThemeTemplate(ctx context.Context, theme string) ([]domain.Item, error) {
	if err := f.errs[theme]; err != nil {
		return nil, err
	}
	items, ok := f.templates[theme]
	if !ok {
		return nil, domain.ErrThemeNotFound
	}
	return items, nil
}

func (f *fakeThemeStore) ListThemes(ctx context.Context) ([]string, error) {
	names := make([]string, 0, len(f.templates))
	for name := range f.templates {
		names = append(names, name)
	}
	return names, nil
}

func (f *fakeThemeStore) SeedThemeTemplates(ctx context.Context, templates []domain.ThemeTemplate) (int, error) {
	return 0, nil
}

// fakeProvider implements WeatherProvider for testing.
type fakeProvider struct {
	current     domain.WeatherSnapshot
	currentErr  error
	series      []domain.WeatherSnapshot
	seriesErr   error
	currentHits atomic.Int32
	seriesHits  atomic.Int32
}

func (f *fakeProvider) GetCurrent(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	f.currentHits.Add(1)
	if f.currentErr != nil {
		return domain.WeatherSnapshot{}, f.currentErr
	}
	return f.current, nil
}

func (f *fakeProvider) GetForecastSeries(ctx context.Context, location string) ([]domain.WeatherSnapshot, error) {
	f.seriesHits.Add(1)
	if f.seriesErr != nil {
		return nil, f.seriesErr
	}
	return f.series, nil
}

// fakeResolver implements SnapshotResolver for testing.
type fakeResolver struct {
	snap  domain.WeatherSnapshot
	err   error
	calls atomic.Int32
}

func (f *fakeResolver) Resolve(ctx context.Context, location string, target time.Time) (domain.WeatherSnapshot, error) {
	f.calls.Add(1)
	if f.err != nil {
		return domain.WeatherSnapshot{}, f.err
	}
	return f.snap, nil
}

// fakeCache implements domain.WeatherCache for testing.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string]domain.WeatherSnapshot
	expiry  map[string]time.Time
	getErr  error
	saveErr error
	saves   int
}

func cacheKey(location string, date time.Time) string {
	return location + "|" + date.Format("2006-01-02")
}

func (f *fakeCache) GetCachedWeather(ctx context.Context, location string, date time.Time) (domain.WeatherSnapshot, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return domain.WeatherSnapshot{}, false, f.getErr
	}
	snap, ok := f.entries[cacheKey(location, date)]
	return snap, ok, nil
}

func (f *fakeCache) SaveCachedWeather(ctx context.Context, location string, date time.Time, snapshot domain.WeatherSnapshot, expiresAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves++
	if f.saveErr != nil {
		return f.saveErr
	}
	if f.entries == nil {
		f.entries = map[string]domain.WeatherSnapshot{}
		f.expiry = map[string]time.Time{}
	}
	f.entries[cacheKey(location, date)] = snapshot
	f.expiry[cacheKey(location, date)] = expiresAt
	return nil
}

// funcSource adapts a function to ItemSource.
type funcSource struct {
	name string
	fn   func(ctx context.Context, trip domain.TripInput) ([]domain.Item, error)
}

func (f funcSource) Name() string { return f.name }

func (f funcSource) Items(ctx context.Context, trip domain.TripInput) ([]domain.Item, error) {
	return f.fn(ctx, trip)
}

func names(items []domain.Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func findItem(items []domain.Item, name string) (domain.Item, bool) {
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return domain.Item{}, false
}
