package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

// SearchService drives the flight search pipeline: it retrieves normalized
// offers and exposes filtering and highlight derivation to the caller.
type SearchService struct {
	flightRepo repository.FlightRepository
	filter     *FilterEngine
	logger     logger.Logger
	metrics    *metrics.Metrics
}

// NewSearchService creates a new search service. The metrics argument may
// be nil.
func NewSearchService(flightRepo repository.FlightRepository, logger logger.Logger, m *metrics.Metrics) *SearchService {
	return &SearchService{
		flightRepo: flightRepo,
		filter:     NewFilterEngine(),
		logger:     logger,
		metrics:    m,
	}
}

// SearchFlights performs one search invocation and returns the normalized
// offer list with its metadata.
func (s *SearchService) SearchFlights(ctx context.Context, params entity.SearchParams) (*entity.SearchResult, error) {
	if params.Origin == "" || params.Destination == "" || params.DepartDate == "" {
		return nil, fmt.Errorf("origin, destination and departure date are required")
	}

	start := time.Now()
	s.logger.Info("Searching flight offers",
		"origin", params.Origin,
		"destination", params.Destination,
		"departDate", params.DepartDate,
		"roundTrip", params.IsRoundTrip())

	result, err := s.flightRepo.SearchOffers(ctx, params)
	if err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("search").Inc()
		}
		s.logger.Error("Flight offer search failed", "error", err)
		return nil, err
	}

	result.Meta.SearchTimeMs = time.Since(start).Milliseconds()
	if s.metrics != nil {
		s.metrics.SearchesTotal.Inc()
		s.metrics.SearchDuration.Observe(time.Since(start).Seconds())
	}
	s.logger.Info("Flight offer search completed",
		"count", result.Meta.Count,
		"elapsedMs", result.Meta.SearchTimeMs)

	return result, nil
}

// FilterBounds derives the filter options from the unfiltered offer set.
func (s *SearchService) FilterBounds(offers []entity.FlightOffer) entity.FilterOptions {
	return s.filter.ComputeFilterBounds(offers)
}

// ApplyFilters narrows an offer list with the given criteria.
func (s *SearchService) ApplyFilters(offers []entity.FlightOffer, criteria entity.FilterCriteria) []entity.FlightOffer {
	return s.filter.Apply(offers, criteria)
}

// Highlights derives the cheapest and fastest offers of a result set.
func (s *SearchService) Highlights(offers []entity.FlightOffer) []entity.Highlight {
	return SelectHighlights(offers)
}

// IsRetryableSearchError reports whether a failed search is worth another
// attempt: API and transport failures are, missing configuration is not.
func IsRetryableSearchError(err error) bool {
	if errors.Is(err, entity.ErrMissingCredentials) {
		return false
	}
	var apiErr *entity.APIError
	var netErr *entity.NetworkError
	var authErr *entity.AuthError
	return errors.As(err, &apiErr) || errors.As(err, &netErr) || errors.As(err, &authErr)
}
