package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		snap WeatherSnapshot
		want WeatherCondition
	}{
		{"light rain", WeatherSnapshot{ConditionMain: "light rain", TemperatureC: 18}, ConditionRain},
		{"rain case-insensitive", WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 35}, ConditionRain},
		{"snow", WeatherSnapshot{ConditionMain: "Snow", TemperatureC: -3}, ConditionSnow},
		{"rain beats snow", WeatherSnapshot{ConditionMain: "rain and snow", TemperatureC: 1}, ConditionRain},
		{"hot boundary", WeatherSnapshot{ConditionMain: "Clear", TemperatureC: 30}, ConditionHot},
		{"just below hot", WeatherSnapshot{ConditionMain: "Clear", TemperatureC: 29.9}, ConditionNormal},
		{"cold boundary", WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 5}, ConditionCold},
		{"just above cold", WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 5.1}, ConditionNormal},
		{"normal", WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 18}, ConditionNormal},
		{"drizzle is not rain", WeatherSnapshot{ConditionMain: "Drizzle", TemperatureC: 18}, ConditionNormal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.snap))
		})
	}
}

func TestWeatherErrorMatching(t *testing.T) {
	t.Parallel()

	cause := errors.New("status 404")
	err := fmt.Errorf("resolve: %w", NewWeatherError(ErrLocationNotFound, "Atlantis", cause))

	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrProviderAuth)
	assert.Equal(t, "LOCATION_NOT_FOUND", WeatherErrorCode(err))
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestWeatherErrorUnknownKind(t *testing.T) {
	t.Parallel()

	err := NewWeatherError(errors.New("something else"), "", nil)
	assert.ErrorIs(t, err, ErrUnknownWeather)
	assert.Equal(t, "UNKNOWN", err.Code())
	assert.Equal(t, "", WeatherErrorCode(errors.New("plain")))
}
