package domain

import (
	"strings"
	"time"
)

// WeatherSnapshot is one weather sample for a location, parsed once at the
// provider boundary
type WeatherSnapshot struct {
	Location                 string    `json:"location"`
	City                     string    `json:"city"`
	Country                  string    `json:"country"`
	TemperatureC             float64   `json:"temperatureC"`
	FeelsLikeC               float64   `json:"feelsLikeC"`
	HumidityPct              int       `json:"humidityPct"`
	ConditionMain            string    `json:"conditionMain"`
	Description              string    `json:"description"`
	Icon                     string    `json:"icon"`
	WindSpeed                float64   `json:"windSpeed"`
	Timestamp                time.Time `json:"timestamp"`
	IsForecast               bool      `json:"isForecast"`
	IsCurrentWeatherFallback bool      `json:"isCurrentWeatherFallback"`
	IsMock                   bool      `json:"isMock"`
}

// WeatherCondition is the coarse classification driving weather-based items
type WeatherCondition string

const (
	ConditionRain   WeatherCondition = "rain"
	ConditionSnow   WeatherCondition = "snow"
	ConditionHot    WeatherCondition = "hot"
	ConditionCold   WeatherCondition = "cold"
	ConditionNormal WeatherCondition = "normal"
)

// Classification thresholds (inclusive)
const (
	HotThresholdC  = 30.0
	ColdThresholdC = 5.0
)

// Classify maps a snapshot onto a condition. Precipitation wins over
// temperature, rain over snow.
func Classify(s WeatherSnapshot) WeatherCondition {
	main := strings.ToLower(s.ConditionMain)

	switch {
	case strings.Contains(main, "rain"):
		return ConditionRain
	case strings.Contains(main, "snow"):
		return ConditionSnow
	case s.TemperatureC >= HotThresholdC:
		return ConditionHot
	case s.TemperatureC <= ColdThresholdC:
		return ConditionCold
	default:
		return ConditionNormal
	}
}

// WeatherResponse wraps weather data with metadata
type WeatherResponse struct {
	Data      WeatherSnapshot  `json:"data"`
	Condition WeatherCondition `json:"condition"`
	Success   bool             `json:"success"`
	Message   string           `json:"message,omitempty"`
}
