package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
)

// Temperature and humidity triggers applied regardless of condition
const (
	thickSocksBelowC  = 10.0
	sweatTowelAboveC  = 25.0
	dehumidifierAbove = 70
)

var conditionItems = map[domain.WeatherCondition][]domain.Item{
	domain.ConditionRain: {
		{Name: "우산", Category: domain.CategoryEssentials, IsEssential: true},
		{Name: "비옷", Category: domain.CategoryClothing},
		{Name: "방수 가방 커버", Category: domain.CategoryEssentials},
	},
	domain.ConditionSnow: {
		{Name: "겨울 코트", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "장갑", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "목도리", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "방한 모자", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "방수 신발", Category: domain.CategoryClothing, IsEssential: true},
	},
	domain.ConditionHot: {
		{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true},
		{Name: "모자", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "선글라스", Category: domain.CategoryClothing},
		{Name: "시원한 옷", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "물병", Category: domain.CategoryEssentials, IsEssential: true},
	},
	domain.ConditionCold: {
		{Name: "겨울 코트", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "장갑", Category: domain.CategoryClothing},
		{Name: "목도리", Category: domain.CategoryClothing},
		{Name: "방한 내의", Category: domain.CategoryClothing, IsEssential: true},
	},
	domain.ConditionNormal: {
		{Name: "가벼운 재킷", Category: domain.CategoryClothing},
	},
}

var (
	thickSocks   = domain.Item{Name: "두꺼운 양말", Category: domain.CategoryClothing, IsEssential: true}
	sweatTowel   = domain.Item{Name: "땀 수건", Category: domain.CategoryToiletries, IsEssential: true}
	dehumidifier = domain.Item{Name: "제습제", Category: domain.CategoryEssentials}
)

// WeatherItemSource suggests items from the destination's weather on the
// first day of the trip. It is best-effort: weather failures yield no items.
type WeatherItemSource struct {
	resolver SnapshotResolver
	logger   zerolog.Logger
}

// NewWeatherItemSource creates a weather source using resolver
func NewWeatherItemSource(resolver SnapshotResolver) *WeatherItemSource {
	return &WeatherItemSource{
		resolver: resolver,
		logger:   logging.Component("weather-source"),
	}
}

// Name implements ItemSource
func (s *WeatherItemSource) Name() string { return "weather" }

// Items implements ItemSource. It never returns an error.
func (s *WeatherItemSource) Items(ctx context.Context, trip domain.TripInput) ([]domain.Item, error) {
	return s.DeriveFromWeather(ctx, trip.Destination, trip.StartDate), nil
}

// DeriveFromWeather resolves the weather for destination on startDate and
// maps it onto items
func (s *WeatherItemSource) DeriveFromWeather(ctx context.Context, destination string, startDate time.Time) []domain.Item {
	snap, err := s.resolver.Resolve(ctx, destination, startDate)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("destination", destination).
			Str("code", domain.WeatherErrorCode(err)).
			Msg("weather unavailable, skipping weather items")
		return []domain.Item{}
	}

	return ItemsForWeather(snap)
}

// ItemsForWeather returns the condition set plus the temperature and
// humidity extras for snap
func ItemsForWeather(snap domain.WeatherSnapshot) []domain.Item {
	base := conditionItems[domain.Classify(snap)]
	items := make([]domain.Item, 0, len(base)+2)
	items = append(items, base...)

	if snap.TemperatureC < thickSocksBelowC {
		items = append(items, thickSocks)
	}
	if snap.TemperatureC > sweatTowelAboveC {
		items = append(items, sweatTowel)
	}
	if snap.HumidityPct > dehumidifierAbove {
		items = append(items, dehumidifier)
	}

	return items
}
