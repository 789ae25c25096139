package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/metrics"
)

// ThemeItemSource expands theme tags into their stored template items
type ThemeItemSource struct {
	store  domain.ThemeStore
	logger zerolog.Logger
}

// NewThemeItemSource creates a theme source backed by store
func NewThemeItemSource(store domain.ThemeStore) *ThemeItemSource {
	return &ThemeItemSource{
		store:  store,
		logger: logging.Component("theme-source"),
	}
}

// Name implements ItemSource
func (s *ThemeItemSource) Name() string { return "theme" }

// Items implements ItemSource
func (s *ThemeItemSource) Items(ctx context.Context, trip domain.TripInput) ([]domain.Item, error) {
	return s.Expand(ctx, trip.Themes)
}

// Expand concatenates the templates of themes in the order given. Themes
// with no template are skipped; items repeated across themes are kept.
// A store failure drops every theme item so the other sources still
// produce a tailored list.
func (s *ThemeItemSource) Expand(ctx context.Context, themes []string) ([]domain.Item, error) {
	items := make([]domain.Item, 0)

	for _, theme := range themes {
		templateItems, err := s.store.GetThemeTemplate(ctx, theme)
		if errors.Is(err, domain.ErrThemeNotFound) {
			metrics.ThemeTemplateMisses.Inc()
			s.logger.Warn().Str("theme", theme).Msg("no template for theme, skipping")
			continue
		}
		if err != nil {
			metrics.ThemeStoreErrors.Inc()
			s.logger.Error().
				Err(fmt.Errorf("theme: failed to load template %q: %w", theme, err)).
				Strs("themes", themes).
				Msg("theme store unavailable, skipping theme items")
			return []domain.Item{}, nil
		}
		items = append(items, templateItems...)
	}

	return items, nil
}
