package service

import (
	"context"
	"time"

	"github.com/packmate/backend/internal/domain"
)

// DataRepository is re-exported from domain for convenience
type DataRepository = domain.DataRepository

// ItemSource is one independent producer of packing suggestions
type ItemSource interface {
	// Name identifies the source in logs and metrics
	Name() string

	// Items derives suggestions for the trip. A returned error is treated
	// as a pipeline fault, not a soft miss.
	Items(ctx context.Context, trip domain.TripInput) ([]domain.Item, error)
}

// WeatherProvider fetches raw weather samples for a location
type WeatherProvider interface {
	GetCurrent(ctx context.Context, location string) (domain.WeatherSnapshot, error)
	GetForecastSeries(ctx context.Context, location string) ([]domain.WeatherSnapshot, error)
}

// SnapshotResolver picks the weather snapshot for a location and date
type SnapshotResolver interface {
	Resolve(ctx context.Context, location string, target time.Time) (domain.WeatherSnapshot, error)
}

// Clock abstracts time.Now for tests
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to Clock
type ClockFunc func() time.Time

// Now implements Clock
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock is the wall clock
var SystemClock Clock = ClockFunc(time.Now)
