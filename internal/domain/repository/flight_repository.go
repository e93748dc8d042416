package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// FlightRepository defines the interface for flight offer searches
type FlightRepository interface {
	SearchOffers(ctx context.Context, params entity.SearchParams) (*entity.SearchResult, error)
}
