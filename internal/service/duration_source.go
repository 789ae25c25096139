package service

import (
	"context"
	"time"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/pkg/utils"
)

// Spare clothing is capped at one week; longer trips get laundry gear
const maxSpareClothing = 7

// DurationItemSource scales clothing quantities with trip length
type DurationItemSource struct{}

// NewDurationItemSource creates a duration source
func NewDurationItemSource() *DurationItemSource {
	return &DurationItemSource{}
}

// Name implements ItemSource
func (s *DurationItemSource) Name() string { return "duration" }

// Items implements ItemSource
func (s *DurationItemSource) Items(_ context.Context, trip domain.TripInput) ([]domain.Item, error) {
	return DeriveFromDuration(trip.StartDate, trip.EndDate), nil
}

// DeriveFromDuration emits per-day clothing counts for the inclusive span
// startDate..endDate
func DeriveFromDuration(startDate, endDate time.Time) []domain.Item {
	days := utils.InclusiveDays(startDate, endDate)

	items := []domain.Item{
		{Name: "여분 옷", Category: domain.CategoryClothing, IsEssential: true, Count: utils.Clamp(days, 1, maxSpareClothing)},
		{Name: "속옷", Category: domain.CategoryClothing, IsEssential: true, Count: days},
		{Name: "양말", Category: domain.CategoryClothing, IsEssential: true, Count: days},
	}

	if days > maxSpareClothing {
		items = append(items,
			domain.Item{Name: "세탁 세제", Category: domain.CategoryToiletries},
			domain.Item{Name: "여행용 다리미", Category: domain.CategoryElectronics},
		)
	}

	return items
}
