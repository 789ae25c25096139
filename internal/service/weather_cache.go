package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/metrics"
	"github.com/packmate/backend/pkg/utils"
)

// DefaultWeatherCacheTTL is how long a resolved snapshot stays fresh
const DefaultWeatherCacheTTL = 3 * time.Hour

// CachedResolver serves snapshots from a WeatherCache keyed by location and
// calendar day, resolving and storing on a miss. Entries never outlive the
// day they were resolved on, since a forecast for tomorrow must become
// current weather once tomorrow arrives. Cache failures are logged and never
// block resolution.
type CachedResolver struct {
	next   SnapshotResolver
	cache  domain.WeatherCache
	clock  Clock
	ttl    time.Duration
	loc    *time.Location
	logger zerolog.Logger
}

// NewCachedResolver wraps next with cache
func NewCachedResolver(next SnapshotResolver, cache domain.WeatherCache, clock Clock, ttl time.Duration, loc *time.Location) *CachedResolver {
	if clock == nil {
		clock = SystemClock
	}
	if ttl <= 0 {
		ttl = DefaultWeatherCacheTTL
	}
	if loc == nil {
		loc = time.UTC
	}
	return &CachedResolver{
		next:   next,
		cache:  cache,
		clock:  clock,
		ttl:    ttl,
		loc:    loc,
		logger: logging.Component("weather-cache"),
	}
}

// Resolve implements SnapshotResolver
func (c *CachedResolver) Resolve(ctx context.Context, location string, target time.Time) (domain.WeatherSnapshot, error) {
	day := utils.StartOfDay(target, c.loc)

	snap, ok, err := c.cache.GetCachedWeather(ctx, location, day)
	switch {
	case err != nil:
		c.logger.Warn().Err(err).Str("location", location).Msg("weather cache read failed")
	case ok:
		metrics.WeatherCacheHits.Inc()
		return snap, nil
	}
	metrics.WeatherCacheMisses.Inc()

	snap, err = c.next.Resolve(ctx, location, target)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	expiresAt := c.expiry(c.clock.Now())
	if err := c.cache.SaveCachedWeather(ctx, location, day, snap, expiresAt); err != nil {
		c.logger.Warn().Err(err).Str("location", location).Msg("weather cache write failed")
	}

	return snap, nil
}

// expiry is now+ttl, capped at the next midnight in the cache's zone
func (c *CachedResolver) expiry(now time.Time) time.Time {
	expiresAt := now.Add(c.ttl)
	if midnight := utils.StartOfDay(now, c.loc).AddDate(0, 0, 1); midnight.Before(expiresAt) {
		return midnight
	}
	return expiresAt
}
