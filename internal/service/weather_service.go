package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
)

// DefaultOpenWeatherBaseURL is the OpenWeatherMap 2.5 API root
const DefaultOpenWeatherBaseURL = "https://api.openweathermap.org/data/2.5"

const maxWeatherBody = 1 << 20

// WeatherConfig configures the OpenWeatherMap client
type WeatherConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Clock   Clock
}

// WeatherService fetches current weather and the 5-day / 3-hour forecast
// from OpenWeatherMap. Without an API key it serves seasonal mock data.
type WeatherService struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	breaker    *Breaker
	clock      Clock
	logger     zerolog.Logger
}

// NewWeatherService creates a new weather service
func NewWeatherService(cfg WeatherConfig) *WeatherService {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultOpenWeatherBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.Clock == nil {
		cfg.Clock = SystemClock
	}

	return &WeatherService{
		apiKey:  cfg.APIKey,
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		breaker: NewBreaker("openweather-api", func(err error) bool {
			return err == nil || errors.Is(err, domain.ErrLocationNotFound)
		}),
		clock:  cfg.Clock,
		logger: logging.Component("weather"),
	}
}

// openWeatherSample holds the fields shared by current and forecast payloads
type openWeatherSample struct {
	Dt   int64 `json:"dt"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

// OpenWeatherResponse represents the OpenWeatherMap current weather response
type OpenWeatherResponse struct {
	openWeatherSample
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
}

// OpenWeatherForecastResponse represents the 5-day / 3-hour forecast response
type OpenWeatherForecastResponse struct {
	List []openWeatherSample `json:"list"`
	City struct {
		Name    string `json:"name"`
		Country string `json:"country"`
	} `json:"city"`
}

func (s openWeatherSample) snapshot(location, city, country string) domain.WeatherSnapshot {
	snap := domain.WeatherSnapshot{
		Location:     location,
		City:         city,
		Country:      country,
		TemperatureC: s.Main.Temp,
		FeelsLikeC:   s.Main.FeelsLike,
		HumidityPct:  s.Main.Humidity,
		WindSpeed:    s.Wind.Speed,
		Timestamp:    time.Unix(s.Dt, 0).UTC(),
	}
	if len(s.Weather) > 0 {
		snap.ConditionMain = s.Weather[0].Main
		snap.Description = s.Weather[0].Description
		snap.Icon = s.Weather[0].Icon
	}
	return snap
}

// GetCurrent fetches the current weather for location
func (s *WeatherService) GetCurrent(ctx context.Context, location string) (domain.WeatherSnapshot, error) {
	if s.apiKey == "" {
		return s.getMockWeather(location, s.clock.Now()), nil
	}

	body, err := s.fetch(ctx, "weather", location)
	if err != nil {
		return domain.WeatherSnapshot{}, err
	}

	var owResp OpenWeatherResponse
	if err := json.Unmarshal(body, &owResp); err != nil {
		return domain.WeatherSnapshot{}, domain.NewWeatherError(domain.ErrUnknownWeather, location,
			fmt.Errorf("failed to decode response: %w", err))
	}

	return owResp.snapshot(location, owResp.Name, owResp.Sys.Country), nil
}

// GetForecastSeries fetches the 3-hourly forecast samples for location
func (s *WeatherService) GetForecastSeries(ctx context.Context, location string) ([]domain.WeatherSnapshot, error) {
	if s.apiKey == "" {
		return s.getMockForecast(location, s.clock.Now()), nil
	}

	body, err := s.fetch(ctx, "forecast", location)
	if err != nil {
		return nil, err
	}

	var fcResp OpenWeatherForecastResponse
	if err := json.Unmarshal(body, &fcResp); err != nil {
		return nil, domain.NewWeatherError(domain.ErrUnknownWeather, location,
			fmt.Errorf("failed to decode forecast: %w", err))
	}

	series := make([]domain.WeatherSnapshot, 0, len(fcResp.List))
	for _, sample := range fcResp.List {
		snap := sample.snapshot(location, fcResp.City.Name, fcResp.City.Country)
		snap.IsForecast = true
		series = append(series, snap)
	}
	return series, nil
}

// fetch calls an OpenWeatherMap endpoint through the circuit breaker
func (s *WeatherService) fetch(ctx context.Context, endpoint, location string) ([]byte, error) {
	city := TranslateCity(location)

	q := url.Values{}
	q.Set("q", city.Name+","+city.CountryCode)
	q.Set("appid", s.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "kr")
	reqURL := fmt.Sprintf("%s/%s?%s", s.baseURL, endpoint, q.Encode())

	s.logger.Debug().
		Str("location", location).
		Str("city", city.Name).
		Str("country", city.CountryCode).
		Str("endpoint", endpoint).
		Msg("weather lookup")

	body, err := s.breaker.Execute(func() ([]byte, error) {
		return s.doRequest(ctx, reqURL, location)
	})
	if err != nil {
		if IsBreakerRejection(err) {
			return nil, domain.NewWeatherError(domain.ErrProviderUnreachable, location, err)
		}
		return nil, err
	}
	return body, nil
}

func (s *WeatherService) doRequest(ctx context.Context, reqURL, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, domain.NewWeatherError(domain.ErrUnknownWeather, location,
			fmt.Errorf("failed to create request: %w", err))
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewWeatherError(domain.ErrProviderUnreachable, location, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, domain.NewWeatherError(domain.ErrLocationNotFound, location, nil)
	case http.StatusUnauthorized:
		return nil, domain.NewWeatherError(domain.ErrProviderAuth, location, nil)
	default:
		return nil, domain.NewWeatherError(domain.ErrUnknownWeather, location,
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxWeatherBody))
	if err != nil {
		return nil, domain.NewWeatherError(domain.ErrProviderUnreachable, location,
			fmt.Errorf("failed to read response: %w", err))
	}
	return body, nil
}

// getMockWeather returns simulated seasonal weather
func (s *WeatherService) getMockWeather(location string, now time.Time) domain.WeatherSnapshot {
	var temp, feelsLike float64
	var main, description string

	switch month := now.Month(); {
	case month >= 12 || month <= 2: // Winter
		temp, feelsLike = -8.0, -15.0
		main, description = "Snow", "light snow"
	case month >= 3 && month <= 5: // Spring
		temp, feelsLike = 12.0, 10.0
		main, description = "Clouds", "partly cloudy"
	case month >= 6 && month <= 8: // Summer
		temp, feelsLike = 28.0, 30.0
		main, description = "Clear", "clear sky"
	default: // Autumn
		temp, feelsLike = 8.0, 5.0
		main, description = "Clouds", "overcast clouds"
	}

	city := TranslateCity(location)
	return domain.WeatherSnapshot{
		Location:      location,
		City:          city.Name,
		Country:       city.CountryCode,
		TemperatureC:  temp,
		FeelsLikeC:    feelsLike,
		HumidityPct:   65,
		ConditionMain: main,
		Description:   description,
		Icon:          "04d",
		WindSpeed:     3.5,
		Timestamp:     now.UTC(),
		IsMock:        true,
	}
}

// getMockForecast returns five days of 3-hourly mock samples
func (s *WeatherService) getMockForecast(location string, now time.Time) []domain.WeatherSnapshot {
	const samples = 40
	start := now.UTC().Truncate(3 * time.Hour).Add(3 * time.Hour)

	series := make([]domain.WeatherSnapshot, 0, samples)
	for i := 0; i < samples; i++ {
		at := start.Add(time.Duration(i) * 3 * time.Hour)
		snap := s.getMockWeather(location, at)
		snap.IsForecast = true
		series = append(series, snap)
	}
	return series
}
