package service

import (
	"context"
	"errors"
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/packmate/backend/internal/domain"
)

func TestThemeItemSourceExpand(t *testing.T) {
	tent := domain.Item{Name: "텐트", Category: domain.CategoryEssentials, IsEssential: true}
	sunscreen := domain.Item{Name: "선크림", Category: domain.CategoryToiletries, IsEssential: true}
	store := &fakeThemeStore{templates: map[string][]domain.Item{
		"camping": {tent},
		"beach":   {sunscreen, {Name: "수영복", Category: domain.CategoryClothing, IsEssential: true}},
	}}
	src := NewThemeItemSource(store)

	items, err := src.Expand(context.Background(), []string{"beach", "unknown", "camping"})
	require.NoError(t, err)
	assert.Equal(t, []string{"선크림", "수영복", "텐트"}, names(items))

	items, err = src.Expand(context.Background(), []string{"unknown"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestThemeItemSourceStoreFailure(t *testing.T) {
	store := &fakeThemeStore{
		templates: map[string][]domain.Item{"beach": {{Name: "수영복", Category: domain.CategoryClothing}}},
		errs:      map[string]error{"camping": errors.New("connection reset")},
	}

	items, err := NewThemeItemSource(store).Expand(context.Background(), []string{"beach", "camping"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestItemsForWeather(t *testing.T) {
	tests := []struct {
		name string
		snap domain.WeatherSnapshot
		want []string
	}{
		{
			name: "rain with mild temperature",
			snap: domain.WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 18, HumidityPct: 60},
			want: []string{"우산", "비옷", "방수 가방 커버"},
		},
		{
			name: "humid rain",
			snap: domain.WeatherSnapshot{ConditionMain: "Rain", Description: "light rain", TemperatureC: 22, HumidityPct: 90},
			want: []string{"우산", "비옷", "방수 가방 커버", "제습제"},
		},
		{
			name: "snow adds thick socks",
			snap: domain.WeatherSnapshot{ConditionMain: "Snow", TemperatureC: -3},
			want: []string{"겨울 코트", "장갑", "목도리", "방한 모자", "방수 신발", "두꺼운 양말"},
		},
		{
			name: "hot adds a sweat towel",
			snap: domain.WeatherSnapshot{ConditionMain: "Clear", TemperatureC: 33},
			want: []string{"선크림", "모자", "선글라스", "시원한 옷", "물병", "땀 수건"},
		},
		{
			name: "cold",
			snap: domain.WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 2},
			want: []string{"겨울 코트", "장갑", "목도리", "방한 내의", "두꺼운 양말"},
		},
		{
			name: "normal",
			snap: domain.WeatherSnapshot{ConditionMain: "Clouds", TemperatureC: 15, HumidityPct: 70},
			want: []string{"가벼운 재킷"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(ItemsForWeather(tt.snap)))
		})
	}
}

func TestItemsForWeatherDoesNotAlias(t *testing.T) {
	items := ItemsForWeather(domain.WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 18})
	items[0].Name = "changed"

	again := ItemsForWeather(domain.WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 18})
	assert.Equal(t, "우산", again[0].Name)
}

func TestWeatherItemSourceSwallowsFailures(t *testing.T) {
	resolver := &fakeResolver{err: domain.NewWeatherError(domain.ErrProviderUnreachable, "서울", nil)}
	src := NewWeatherItemSource(resolver)

	items, err := src.Items(context.Background(), domain.TripInput{Destination: "서울", StartDate: resolverNow})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestWeatherItemSourceUsesResolvedSnapshot(t *testing.T) {
	resolver := &fakeResolver{snap: domain.WeatherSnapshot{ConditionMain: "Rain", TemperatureC: 18}}
	items, err := NewWeatherItemSource(resolver).Items(context.Background(), domain.TripInput{Destination: "서울", StartDate: resolverNow})
	require.NoError(t, err)

	umbrella, ok := findItem(items, "우산")
	require.True(t, ok)
	assert.True(t, umbrella.IsEssential)
	assert.Equal(t, int32(1), resolver.calls.Load())
}

func TestDeriveFromDuration(t *testing.T) {
	day := func(d int) time.Time { return time.Date(2026, 10, d, 0, 0, 0, 0, time.UTC) }

	tests := []struct {
		name       string
		start, end time.Time
		spare      int
		perDay     int
		laundry    bool
	}{
		{"day trip", day(20), day(20), 1, 1, false},
		{"three days", day(20), day(22), 3, 3, false},
		{"one week", day(1), day(7), 7, 7, false},
		{"ten days", day(1), day(10), 7, 10, true},
		{"clock time is ignored", day(20), day(21).Add(2 * time.Hour), 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := DeriveFromDuration(tt.start, tt.end)

			spare, ok := findItem(items, "여분 옷")
			require.True(t, ok)
			assert.Equal(t, tt.spare, spare.Count)

			for _, name := range []string{"속옷", "양말"} {
				item, ok := findItem(items, name)
				require.True(t, ok)
				assert.Equal(t, tt.perDay, item.Count)
				assert.True(t, item.IsEssential)
			}

			_, hasDetergent := findItem(items, "세탁 세제")
			_, hasIron := findItem(items, "여행용 다리미")
			assert.Equal(t, tt.laundry, hasDetergent)
			assert.Equal(t, tt.laundry, hasIron)
		})
	}
}

func TestDeriveFromDurationAcrossDaylightSaving(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2026-11-01 is 25h long in New York
	start := time.Date(2026, 11, 1, 0, 0, 0, 0, ny)
	end := time.Date(2026, 11, 2, 0, 0, 0, 0, ny)

	items := DeriveFromDuration(start, end)
	for _, name := range []string{"여분 옷", "속옷", "양말"} {
		item, ok := findItem(items, name)
		require.True(t, ok, name)
		assert.Equal(t, 2, item.Count, name)
	}
}

func TestDeriveFromTransport(t *testing.T) {
	plane := DeriveFromTransport(domain.TransportPlane)
	assert.Equal(t, []string{"여권/신분증", "지갑", "휴대폰 충전기", "여권", "비행기 탑승권", "목베개", "귀마개", "수면 안대", "이어폰/헤드폰"}, names(plane))

	walk := DeriveFromTransport(domain.TransportWalk)
	shoes, ok := findItem(walk, "편안한 신발")
	require.True(t, ok)
	assert.True(t, shoes.IsEssential)

	unknown := DeriveFromTransport(domain.TransportType("rocket"))
	assert.Equal(t, names(DeriveFromTransport(domain.TransportOther)), names(unknown))
	assert.Contains(t, names(unknown), "교통편 티켓")

	for _, mode := range []domain.TransportType{domain.TransportTrain, domain.TransportShip, domain.TransportBus} {
		items := DeriveFromTransport(mode)
		assert.Equal(t, "여권/신분증", items[0].Name, mode)
		assert.Greater(t, len(items), len(commonTransportItems), mode)
	}
}
