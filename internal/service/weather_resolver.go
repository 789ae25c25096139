package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/metrics"
	"github.com/packmate/backend/pkg/utils"
)

// ForecastHorizonDays is the furthest day ahead the forecast series covers
const ForecastHorizonDays = 5

// targetHour is the local hour whose sample represents a whole day
const targetHour = 12

// WeatherResolver picks one weather snapshot for a location and calendar day.
// Calendar days and sample hours are evaluated in loc.
type WeatherResolver struct {
	provider WeatherProvider
	clock    Clock
	loc      *time.Location
	logger   zerolog.Logger
}

// NewWeatherResolver creates a resolver. A nil clock uses the wall clock and
// a nil location uses UTC.
func NewWeatherResolver(provider WeatherProvider, clock Clock, loc *time.Location) *WeatherResolver {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &WeatherResolver{
		provider: provider,
		clock:    clock,
		loc:      loc,
		logger:   logging.Component("weather-resolver"),
	}
}

// Resolve returns the snapshot for target:
//   - today: current weather
//   - more than ForecastHorizonDays ahead: current weather, flagged as a fallback
//   - otherwise: the forecast sample of that day closest to noon
//
// Every failure is a *domain.WeatherError.
func (r *WeatherResolver) Resolve(ctx context.Context, location string, target time.Time) (domain.WeatherSnapshot, error) {
	now := r.clock.Now()

	if utils.SameDay(target, now, r.loc) {
		snap, err := r.provider.GetCurrent(ctx, location)
		if err != nil {
			return r.fail(location, err)
		}
		snap.IsForecast = false
		metrics.WeatherResolutions.WithLabelValues("current").Inc()
		return snap, nil
	}

	daysAhead := utils.DaysBetween(now.In(r.loc), target.In(r.loc))
	if daysAhead > ForecastHorizonDays {
		r.logger.Info().
			Str("location", location).
			Int("days_ahead", daysAhead).
			Msg("beyond forecast horizon, using current weather")

		snap, err := r.provider.GetCurrent(ctx, location)
		if err != nil {
			return r.fail(location, err)
		}
		snap.IsForecast = false
		snap.IsCurrentWeatherFallback = true
		metrics.WeatherResolutions.WithLabelValues("horizon_fallback").Inc()
		return snap, nil
	}

	series, err := r.provider.GetForecastSeries(ctx, location)
	if err != nil {
		return r.fail(location, err)
	}

	snap, ok := SelectNoonSample(series, target, r.loc)
	if !ok {
		r.logger.Warn().
			Str("location", location).
			Str("date", target.In(r.loc).Format(utils.DateLayout)).
			Msg("no forecast sample for date")
		return r.fail(location, domain.NewWeatherError(domain.ErrNoForecastForDate, location, nil))
	}

	snap.IsForecast = true
	metrics.WeatherResolutions.WithLabelValues("forecast").Inc()
	return snap, nil
}

// SelectNoonSample returns the sample on target's calendar day whose local
// hour is closest to noon. Ties go to the sample that appears first.
func SelectNoonSample(series []domain.WeatherSnapshot, target time.Time, loc *time.Location) (domain.WeatherSnapshot, bool) {
	var (
		best     domain.WeatherSnapshot
		bestDiff = -1
	)

	for _, sample := range series {
		if !utils.SameDay(sample.Timestamp, target, loc) {
			continue
		}
		diff := utils.AbsInt(sample.Timestamp.In(loc).Hour() - targetHour)
		if bestDiff < 0 || diff < bestDiff {
			best, bestDiff = sample, diff
		}
	}

	return best, bestDiff >= 0
}

// fail normalises err into a tagged weather failure
func (r *WeatherResolver) fail(location string, err error) (domain.WeatherSnapshot, error) {
	var werr *domain.WeatherError
	if !errors.As(err, &werr) {
		kind := domain.ErrUnknownWeather
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			kind = domain.ErrProviderUnreachable
		}
		werr = domain.NewWeatherError(kind, location, err)
	}

	metrics.WeatherResolutions.WithLabelValues(werr.Code()).Inc()
	r.logger.Warn().Err(werr).Str("location", location).Str("code", werr.Code()).Msg("weather resolution failed")
	return domain.WeatherSnapshot{}, werr
}
