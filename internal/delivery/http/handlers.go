package http

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/packmate/backend/internal/domain"
	"github.com/packmate/backend/internal/logging"
	"github.com/packmate/backend/internal/service"
	"github.com/packmate/backend/internal/validation"
	"github.com/packmate/backend/pkg/utils"
)

// Recommender builds packing lists
type Recommender interface {
	Recommend(ctx context.Context, trip domain.TripInput) (domain.Recommendation, error)
}

// Handler contains all HTTP handlers
type Handler struct {
	recommender Recommender
	resolver    service.SnapshotResolver
	repo        service.DataRepository
	loc         *time.Location
	timeout     time.Duration
	clock       service.Clock
	logger      zerolog.Logger
}

// DefaultRequestTimeout bounds the work done for one request
const DefaultRequestTimeout = 15 * time.Second

// NewHandler creates a new handler. Dates in requests are read as calendar
// days in loc; timeout bounds the weather and store calls of one request.
func NewHandler(recommender Recommender, resolver service.SnapshotResolver, repo service.DataRepository, loc *time.Location, timeout time.Duration) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}
	return &Handler{
		recommender: recommender,
		resolver:    resolver,
		repo:        repo,
		loc:         loc,
		timeout:     timeout,
		clock:       service.SystemClock,
		logger:      logging.Component("http"),
	}
}

// RecommendationRequest is the body of POST /api/v1/recommendations
type RecommendationRequest struct {
	Themes        []string `json:"themes"`
	Destination   string   `json:"destination"`
	StartDate     string   `json:"startDate"`
	EndDate       string   `json:"endDate"`
	TransportType string   `json:"transportType"`
}

func (r RecommendationRequest) toTrip(loc *time.Location) (domain.TripInput, error) {
	trip := domain.TripInput{
		Themes:        r.Themes,
		Destination:   r.Destination,
		TransportType: domain.TransportType(r.TransportType),
	}

	var err error
	if trip.StartDate, err = parseOptionalDate("startDate", r.StartDate, loc); err != nil {
		return domain.TripInput{}, err
	}
	if trip.EndDate, err = parseOptionalDate("endDate", r.EndDate, loc); err != nil {
		return domain.TripInput{}, err
	}
	return trip, nil
}

// parseOptionalDate leaves an empty value as the zero time so validation
// reports it as missing
func parseOptionalDate(field, value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, nil
	}
	t, err := utils.ParseDate(value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD format", field)
	}
	return t, nil
}

// requestContext derives the per-request context. fasthttp never cancels
// the user context, so the deadline is what stops abandoned weather I/O.
func (h *Handler) requestContext(c *fiber.Ctx) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.UserContext(), h.timeout)
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	database := "ok"
	if err := h.repo.Health(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database health check failed")
		database = "unavailable"
	}

	return c.JSON(fiber.Map{
		"status":   "ok",
		"service":  "packmate-backend",
		"version":  "1.0.0",
		"database": database,
	})
}

// CreateRecommendation returns the packing list for a trip
func (h *Handler) CreateRecommendation(c *fiber.Ctx) error {
	var req RecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	trip, err := req.toTrip(h.loc)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	rec, err := h.recommender.Recommend(ctx, trip)
	if err != nil {
		var verr *validation.RequestValidationError
		if errors.As(err, &verr) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error":   true,
				"message": verr.Error(),
				"fields":  verr.Fields,
			})
		}
		if errors.Is(err, domain.ErrInvalidTrip) {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		h.logger.Error().Err(err).Msg("recommendation failed")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to build recommendation")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rec,
	})
}

// GetWeather returns the weather resolved for a location and calendar day.
// The date defaults to today.
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	location := strings.TrimSpace(c.Query("location"))
	if location == "" {
		return fiber.NewError(fiber.StatusBadRequest, "location is required")
	}

	target := h.clock.Now().In(h.loc)
	if raw := c.Query("date"); raw != "" {
		date, err := utils.ParseDate(raw, h.loc)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date must be a date in YYYY-MM-DD format")
		}
		target = date
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	snap, err := h.resolver.Resolve(ctx, location, target)
	if err != nil {
		return weatherError(c, err)
	}

	return c.JSON(domain.WeatherResponse{
		Data:      snap,
		Condition: domain.Classify(snap),
		Success:   true,
	})
}

// SearchLocations returns known cities matching query
func (h *Handler) SearchLocations(c *fiber.Ctx) error {
	query := c.Query("query")
	if strings.TrimSpace(query) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "query is required")
	}

	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 50 {
		limit = 10
	}

	results := service.SearchCities(query, limit)
	return c.JSON(fiber.Map{
		"success": true,
		"data":    results,
		"count":   len(results),
	})
}

// TranslateLocation maps a Korean city name to the weather provider's name
func (h *Handler) TranslateLocation(c *fiber.Ctx) error {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		return fiber.NewError(fiber.StatusBadRequest, "city is required")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    service.TranslateCity(city),
	})
}

// ListThemes returns every theme with a stored template
func (h *Handler) ListThemes(c *fiber.Ctx) error {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	themes, err := h.repo.ListThemes(ctx)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list themes")
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to fetch themes")
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    themes,
		"count":   len(themes),
	})
}

// weatherError maps a tagged weather failure onto a status and error code
func weatherError(c *fiber.Ctx, err error) error {
	status := fiber.StatusBadGateway
	switch {
	case errors.Is(err, domain.ErrLocationNotFound), errors.Is(err, domain.ErrNoForecastForDate):
		status = fiber.StatusNotFound
	case errors.Is(err, domain.ErrProviderUnreachable):
		status = fiber.StatusServiceUnavailable
	}

	return c.Status(status).JSON(fiber.Map{
		"error":   true,
		"code":    domain.WeatherErrorCode(err),
		"message": err.Error(),
	})
}
