package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecommendationGroupsInOrder(t *testing.T) {
	t.Parallel()

	items := []Item{
		{Name: "우산", Category: CategoryEssentials, IsEssential: true},
		{Name: "양말", Category: CategoryClothing, IsEssential: true, Count: 3},
		{Name: "지갑", Category: CategoryEssentials, IsEssential: true},
		{Name: "기념품", Category: Category("souvenir")},
	}

	rec := NewRecommendation(items)

	require.Len(t, rec.Categories, len(Categories))
	assert.Equal(t, 4, rec.Total)
	for i, c := range Categories {
		assert.Equal(t, c, rec.Categories[i].Category)
		assert.NotNil(t, rec.Categories[i].Items)
	}

	essentials := rec.Items(CategoryEssentials)
	require.Len(t, essentials, 2)
	assert.Equal(t, "우산", essentials[0].Name)
	assert.Equal(t, "지갑", essentials[1].Name)

	other := rec.Items(CategoryOther)
	require.Len(t, other, 1)
	assert.Equal(t, "기념품", other[0].Name)
	assert.Equal(t, "기타", rec.Categories[6].Label)

	socks, ok := rec.Find("양말")
	require.True(t, ok)
	assert.Equal(t, 3, socks.Count)
	assert.Len(t, rec.All(), 4)
}

func TestCategoryLabel(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "옷차림", CategoryClothing.Label())
	assert.Equal(t, "기타", Category("bogus").Label())
	assert.False(t, Category("bogus").Valid())
}

func TestTripNormalize(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC)
	trip := TripInput{
		Themes:        []string{"camping", " beach ", "camping"},
		Destination:   "  제주 ",
		StartDate:     start,
		EndDate:       start,
		TransportType: "Plane",
	}.Normalize()

	assert.Equal(t, []string{"camping", "beach"}, trip.Themes)
	assert.Equal(t, "제주", trip.Destination)
	assert.Equal(t, TransportPlane, trip.TransportType)
}

func TestParseTransportType(t *testing.T) {
	t.Parallel()

	assert.Equal(t, TransportShip, ParseTransportType("ship"))
	assert.Equal(t, TransportOther, ParseTransportType(""))
	assert.Equal(t, TransportOther, ParseTransportType("rocket"))
}
