package amadeus

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
)

// LocationRepo implements the LocationRepository interface against the
// Amadeus reference-data locations endpoint
type LocationRepo struct {
	client *Client
	logger logger.Logger
}

// NewLocationRepo creates a new Amadeus location repository
func NewLocationRepo(client *Client, logger logger.Logger) repository.LocationRepository {
	return &LocationRepo{
		client: client,
		logger: logger,
	}
}

// SearchLocations retrieves the provider's flat list of city and airport
// records matching the keyword
func (r *LocationRepo) SearchLocations(ctx context.Context, keyword string, limit int) ([]entity.LocationEntry, error) {
	query := url.Values{}
	query.Set("keyword", keyword)
	query.Set("subType", "CITY,AIRPORT")
	if limit > 0 {
		query.Set("page[limit]", strconv.Itoa(limit))
	}

	var resp LocationsResponse
	if err := r.client.get(ctx, locationsPath, query, &resp); err != nil {
		return nil, fmt.Errorf("location search failed: %w", err)
	}

	entries := make([]entity.LocationEntry, 0, len(resp.Data))
	for _, raw := range resp.Data {
		entries = append(entries, normalizeLocation(raw))
	}
	return entries, nil
}

func normalizeLocation(raw RawLocationRecord) entity.LocationEntry {
	score := 0
	if raw.Analytics != nil {
		score = raw.Analytics.Travelers.Score
	}
	return entity.LocationEntry{
		ID:           raw.ID,
		Kind:         raw.SubType,
		Code:         raw.IataCode,
		Name:         raw.Name,
		CityCode:     raw.Address.CityCode,
		CountryCode:  raw.Address.CountryCode,
		DetailedName: raw.DetailedName,
		Score:        score,
	}
}
