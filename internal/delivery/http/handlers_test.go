package http

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/repository/postgres"
	"github.com/packmate/backend/internal/service"
)

var kst = time.FixedZone("KST", 9*3600)

// stubResolver implements service.SnapshotResolver for testing.
type stubResolver struct {
	snap   domain.WeatherSnapshot
	err    error
	block  bool
	target time.Time
}

func (s *stubResolver) Resolve(ctx context.Context, location string, target time.Time) (domain.WeatherSnapshot, error) {
	s.target = target
	if s.block {
		<-ctx.Done()
		return domain.WeatherSnapshot{}, domain.NewWeatherError(domain.ErrProviderUnreachable, location, ctx.Err())
	}
	if s.err != nil {
		return domain.WeatherSnapshot{}, s.err
	}
	snap := s.snap
	snap.Location = location
	return snap, nil
}

func newTestApp(t *testing.T, resolver *stubResolver) *fiber.App {
	t.Helper()
	return newTestAppWithTimeout(t, resolver, 0)
}

func newTestAppWithTimeout(t *testing.T, resolver *stubResolver, timeout time.Duration) *fiber.App {
	t.Helper()

	repo := postgres.NewMockRepository()
	_, err := repo.SeedThemeTemplates(context.Background(), postgres.DefaultThemeTemplates())
	require.NoError(t, err)

	recommender := service.NewRecommendationService(service.DefaultSources(repo, resolver)...)
	handler := NewHandler(recommender, resolver, repo, kst, timeout)
	handler.clock = service.ClockFunc(func() time.Time {
		return time.Date(2026, 10, 19, 10, 0, 0, 0, kst)
	})

	app := fiber.New(fiber.Config{
		ErrorHandler: ErrorHandler,
		JSONEncoder:  json.Marshal,
		JSONDecoder:  json.Unmarshal,
	})
	SetupRoutes(app, handler)
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	}
	return resp.StatusCode, out
}

func TestCreateRecommendation(t *testing.T) {
	resolver := &stubResolver{snap: domain.WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 18, HumidityPct: 50}}
	app := newTestApp(t, resolver)

	status, body := doRequest(t, app, "POST", "/api/v1/recommendations", `{
		"themes": ["camping"],
		"destination": "강릉",
		"startDate": "2026-10-20",
		"endDate": "2026-10-22",
		"transportType": "train"
	}`)
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]any)
	assert.Equal(t, false, data["degraded"])

	categories := data["categories"].([]any)
	require.Len(t, categories, len(domain.Categories))
	assert.Equal(t, "clothing", categories[0].(map[string]any)["category"])
	assert.Equal(t, "옷차림", categories[0].(map[string]any)["label"])

	var found []string
	for _, group := range categories {
		for _, item := range group.(map[string]any)["items"].([]any) {
			found = append(found, item.(map[string]any)["name"].(string))
		}
	}
	assert.Contains(t, found, "텐트")
	assert.Contains(t, found, "기차 티켓")
	assert.Len(t, found, int(data["total"].(float64)))

	assert.Equal(t, time.Date(2026, 10, 20, 0, 0, 0, 0, kst), resolver.target)
}

func TestCreateRecommendationRejectsBadInput(t *testing.T) {
	app := newTestApp(t, &stubResolver{})

	tests := []struct {
		name   string
		body   string
		fields bool
	}{
		{"malformed body", `{"themes": [`, false},
		{"bad date", `{"themes":["camping"],"destination":"서울","startDate":"20/10/2026","endDate":"2026-10-22"}`, false},
		{"end before start", `{"themes":["camping"],"destination":"서울","startDate":"2026-10-22","endDate":"2026-10-20"}`, true},
		{"no themes", `{"themes":[],"destination":"서울","startDate":"2026-10-20","endDate":"2026-10-22"}`, true},
		{"missing dates", `{"themes":["camping"],"destination":"서울"}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, app, "POST", "/api/v1/recommendations", tt.body)
			assert.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, true, body["error"])
			assert.NotEmpty(t, body["message"])
			_, hasFields := body["fields"]
			assert.Equal(t, tt.fields, hasFields)
		})
	}
}

func TestGetWeather(t *testing.T) {
	resolver := &stubResolver{snap: domain.WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 17}}
	app := newTestApp(t, resolver)

	status, body := doRequest(t, app, "GET", "/api/v1/weather?location=%EC%A0%9C%EC%A3%BC&date=2026-10-21", "")
	require.Equal(t, fiber.StatusOK, status, body)
	assert.Equal(t, "rain", body["condition"])
	assert.Equal(t, "제주", body["data"].(map[string]any)["location"])
	assert.Equal(t, time.Date(2026, 10, 21, 0, 0, 0, 0, kst), resolver.target)

	status, _ = doRequest(t, app, "GET", "/api/v1/weather?location=Seoul", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, 19, resolver.target.Day(), "date defaults to today")

	status, _ = doRequest(t, app, "GET", "/api/v1/weather", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = doRequest(t, app, "GET", "/api/v1/weather?location=Seoul&date=tomorrow", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestGetWeatherFailures(t *testing.T) {
	tests := []struct {
		kind   error
		status int
		code   string
	}{
		{domain.ErrLocationNotFound, fiber.StatusNotFound, "LOCATION_NOT_FOUND"},
		{domain.ErrNoForecastForDate, fiber.StatusNotFound, "NO_FORECAST_FOR_DATE"},
		{domain.ErrProviderUnreachable, fiber.StatusServiceUnavailable, "PROVIDER_UNREACHABLE"},
		{domain.ErrProviderAuth, fiber.StatusBadGateway, "PROVIDER_AUTH_ERROR"},
		{domain.ErrUnknownWeather, fiber.StatusBadGateway, "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			app := newTestApp(t, &stubResolver{err: domain.NewWeatherError(tt.kind, "Atlantis", nil)})

			status, body := doRequest(t, app, "GET", "/api/v1/weather?location=Atlantis", "")
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.code, body["code"])
			assert.Equal(t, true, body["error"])
		})
	}
}

func TestRecommendationSurvivesWeatherFailure(t *testing.T) {
	app := newTestApp(t, &stubResolver{err: domain.NewWeatherError(domain.ErrProviderUnreachable, "서울", nil)})

	status, body := doRequest(t, app, "POST", "/api/v1/recommendations",
		`{"themes":["beach"],"destination":"서울","startDate":"2026-10-20","endDate":"2026-10-20"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["degraded"])
}

func TestLocationEndpoints(t *testing.T) {
	app := newTestApp(t, &stubResolver{})

	status, body := doRequest(t, app, "GET", "/api/v1/locations/search?query=tok&limit=5", "")
	require.Equal(t, fiber.StatusOK, status)
	results := body["data"].([]any)
	require.NotEmpty(t, results)
	assert.Equal(t, "Tokyo", results[0].(map[string]any)["engName"])

	status, _ = doRequest(t, app, "GET", "/api/v1/locations/search", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, body = doRequest(t, app, "GET", "/api/v1/locations/translate?city=%EB%B6%80%EC%82%B0", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Busan", body["data"].(map[string]any)["name"])
	assert.Equal(t, "KR", body["data"].(map[string]any)["countryCode"])

	status, _ = doRequest(t, app, "GET", "/api/v1/locations/translate", "")
	assert.Equal(t, fiber.StatusBadRequest, status)
}

func TestListThemesAndHealth(t *testing.T) {
	app := newTestApp(t, &stubResolver{})

	status, body := doRequest(t, app, "GET", "/api/v1/themes", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, float64(len(postgres.DefaultThemeTemplates())), body["count"])
	assert.Contains(t, body["data"], "camping")

	status, body = doRequest(t, app, "GET", "/health", "")
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "ok", body["database"])

	status, _ = doRequest(t, app, "GET", "/metrics", "")
	assert.Equal(t, fiber.StatusOK, status)
}

func TestRequestDeadlineStopsHungWeather(t *testing.T) {
	app := newTestAppWithTimeout(t, &stubResolver{block: true}, 50*time.Millisecond)

	start := time.Now()
	status, body := doRequest(t, app, "GET", "/api/v1/weather?location=Seoul", "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "PROVIDER_UNREACHABLE", body["code"])

	status, body = doRequest(t, app, "POST", "/api/v1/recommendations",
		`{"themes":["camping"],"destination":"서울","startDate":"2026-10-20","endDate":"2026-10-21"}`)
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["data"].(map[string]any)["degraded"])

	assert.Less(t, time.Since(start), 5*time.Second)
}
