package domain

import "errors"

var (
	// ErrInvalidTrip is returned when a trip violates its own invariants
	ErrInvalidTrip = errors.New("invalid trip")

	// ErrThemeNotFound is returned by a ThemeStore when no template exists
	ErrThemeNotFound = errors.New("theme template not found")
)

// Weather failure kinds. Match them with errors.Is.
var (
	ErrLocationNotFound    = errors.New("location not found")
	ErrProviderAuth        = errors.New("weather provider authentication failed")
	ErrProviderUnreachable = errors.New("weather provider unreachable")
	ErrNoForecastForDate   = errors.New("no forecast for date")
	ErrUnknownWeather      = errors.New("unknown weather error")
)

var weatherCodes = map[error]string{
	ErrLocationNotFound:    "LOCATION_NOT_FOUND",
	ErrProviderAuth:        "PROVIDER_AUTH_ERROR",
	ErrProviderUnreachable: "PROVIDER_UNREACHABLE",
	ErrNoForecastForDate:   "NO_FORECAST_FOR_DATE",
	ErrUnknownWeather:      "UNKNOWN",
}

// WeatherError is the tagged failure returned across the weather boundary
type WeatherError struct {
	Kind     error
	Location string
	Err      error
}

// NewWeatherError tags err with one of the weather failure kinds
func NewWeatherError(kind error, location string, err error) *WeatherError {
	if _, ok := weatherCodes[kind]; !ok {
		kind = ErrUnknownWeather
	}
	return &WeatherError{Kind: kind, Location: location, Err: err}
}

func (e *WeatherError) Error() string {
	msg := "weather: " + e.Kind.Error()
	if e.Location != "" {
		msg += " (" + e.Location + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *WeatherError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// Code returns the stable machine-readable failure code
func (e *WeatherError) Code() string {
	return weatherCodes[e.Kind]
}

// WeatherErrorCode extracts the failure code from err, or "" if err is not
// a weather failure
func WeatherErrorCode(err error) string {
	var werr *WeatherError
	if errors.As(err, &werr) {
		return werr.Code()
	}
	return ""
}
