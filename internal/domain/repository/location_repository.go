package repository

import (
	"context"

	"flightsearch-service/internal/domain/entity"
)

// LocationRepository defines the interface for location lookups. Results
// are the provider's flat list; grouping happens in the location directory.
type LocationRepository interface {
	SearchLocations(ctx context.Context, keyword string, limit int) ([]entity.LocationEntry, error)
}
