package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/metrics"
	"github.com/packmate/backend/internal/validation"
)

// PipelineFault is an unexpected failure inside an item source or the merge
// step: a returned error or a recovered panic
type PipelineFault struct {
	Source string
	Err    error
}

func (f *PipelineFault) Error() string {
	return fmt.Sprintf("recommend: %s source fault: %v", f.Source, f.Err)
}

func (f *PipelineFault) Unwrap() error { return f.Err }

// RecommendationService fans a trip out to every item source concurrently,
// merges their lists and groups the result by category
type RecommendationService struct {
	sources []ItemSource
	merger  *MergeEngine
	logger  zerolog.Logger
}

// NewRecommendationService creates the pipeline. Source order is the merge
// order, so it decides which category wins for shared item names.
func NewRecommendationService(sources ...ItemSource) *RecommendationService {
	return &RecommendationService{
		sources: sources,
		merger:  NewMergeEngine(),
		logger:  logging.Component("recommend"),
	}
}

// DefaultSources wires the theme, weather, duration and transport sources
// in that order
func DefaultSources(store domain.ThemeStore, resolver SnapshotResolver) []ItemSource {
	return []ItemSource{
		NewThemeItemSource(store),
		NewWeatherItemSource(resolver),
		NewDurationItemSource(),
		NewTransportItemSource(),
	}
}

// Recommend builds the packing list for trip. The only error it returns
// wraps domain.ErrInvalidTrip; any fault while building the list yields the
// generic default list with Degraded set.
func (s *RecommendationService) Recommend(ctx context.Context, trip domain.TripInput) (domain.Recommendation, error) {
	start := time.Now()
	trip = trip.Normalize()

	if err := validation.ValidateStruct(trip); err != nil {
		metrics.RecommendationsTotal.WithLabelValues("invalid").Inc()
		return domain.Recommendation{}, fmt.Errorf("%w: %w", domain.ErrInvalidTrip, err)
	}

	logger := s.logger.With().
		Strs("themes", trip.Themes).
		Str("destination", trip.Destination).
		Str("transport", string(trip.TransportType)).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	items, err := s.build(ctx, trip)
	if err != nil {
		logger.Error().Err(err).Msg("recommendation pipeline fault, returning default items")
		metrics.RecommendationsTotal.WithLabelValues("fallback").Inc()

		rec := domain.NewRecommendation(DefaultItems())
		rec.Degraded = true
		return rec, nil
	}

	rec := domain.NewRecommendation(items)

	metrics.RecommendationsTotal.WithLabelValues("tailored").Inc()
	metrics.RecommendationItems.Observe(float64(rec.Total))
	metrics.RecommendationDuration.Observe(time.Since(start).Seconds())
	logger.Info().
		Int("items", rec.Total).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return rec, nil
}

// build runs every source concurrently and merges their output in source
// order
func (s *RecommendationService) build(ctx context.Context, trip domain.TripInput) ([]domain.Item, error) {
	var (
		wg      sync.WaitGroup
		results = make([][]domain.Item, len(s.sources))
		faults  = make([]error, len(s.sources))
	)

	for i, src := range s.sources {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i], faults[i] = runSource(ctx, src, trip)
		}()
	}

	wg.Wait()

	if err := errors.Join(faults...); err != nil {
		return nil, err
	}

	return s.safeMerge(results)
}

func runSource(ctx context.Context, src ItemSource, trip domain.TripInput) (items []domain.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &PipelineFault{Source: src.Name(), Err: fmt.Errorf("panic: %v", r)}
		}
		if err != nil {
			metrics.SourceFaults.WithLabelValues(src.Name()).Inc()
		}
	}()

	items, err = src.Items(ctx, trip)
	if err != nil {
		return nil, &PipelineFault{Source: src.Name(), Err: err}
	}
	return items, nil
}

func (s *RecommendationService) safeMerge(lists [][]domain.Item) (items []domain.Item, err error) {
	defer func() {
		if r := recover(); r != nil {
			metrics.SourceFaults.WithLabelValues("merge").Inc()
			err = &PipelineFault{Source: "merge", Err: fmt.Errorf("panic: %v", r)}
		}
	}()

	return s.merger.Merge(lists), nil
}

// DefaultItems is the generic starter list returned when the pipeline
// cannot produce a tailored one
func DefaultItems() []domain.Item {
	return []domain.Item{
		{Name: "신분증", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "충전기", Category: domain.CategoryElectronics, IsEssential: true},
		{Name: "여행 서류", Category: domain.CategoryDocuments, IsEssential: true},
		{Name: "현금/카드", Category: domain.CategoryEssentials, IsEssential: true},
		{Name: "속옷", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "양말", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "여분 옷", Category: domain.CategoryClothing, IsEssential: true},
		{Name: "세면도구", Category: domain.CategoryToiletries, IsEssential: true},
		{Name: "상비약", Category: domain.CategoryMedicines, IsEssential: true},
	}
}
