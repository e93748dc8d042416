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

// FlightRepo implements the FlightRepository interface against the Amadeus
// flight-offers endpoint
type FlightRepo struct {
	client *Client
	logger logger.Logger
}

// NewFlightRepo creates a new Amadeus flight repository
func NewFlightRepo(client *Client, logger logger.Logger) repository.FlightRepository {
	return &FlightRepo{
		client: client,
		logger: logger,
	}
}

// SearchOffers retrieves and normalizes flight offers for the given params
func (r *FlightRepo) SearchOffers(ctx context.Context, params entity.SearchParams) (*entity.SearchResult, error) {
	query := buildOffersQuery(params)

	var resp FlightOffersResponse
	if err := r.client.get(ctx, flightOffersPath, query, &resp); err != nil {
		return nil, fmt.Errorf("flight offers search failed: %w", err)
	}

	r.logger.Debug("Flight offers retrieved",
		"origin", params.Origin,
		"destination", params.Destination,
		"count", len(resp.Data))

	return NormalizeOffers(&resp, params)
}

func buildOffersQuery(params entity.SearchParams) url.Values {
	query := url.Values{}
	query.Set("originLocationCode", params.Origin)
	query.Set("destinationLocationCode", params.Destination)
	query.Set("departureDate", params.DepartDate)
	if params.ReturnDate != "" {
		query.Set("returnDate", params.ReturnDate)
	}

	adults := params.Adults
	if adults <= 0 {
		adults = 1
	}
	query.Set("adults", strconv.Itoa(adults))
	if params.Children > 0 {
		query.Set("children", strconv.Itoa(params.Children))
	}
	if params.Infants > 0 {
		query.Set("infants", strconv.Itoa(params.Infants))
	}

	if params.TravelClass != "" {
		query.Set("travelClass", params.TravelClass)
	}
	if params.NonStopOnly {
		query.Set("nonStop", "true")
	}
	if params.MaxPrice > 0 {
		query.Set("maxPrice", strconv.Itoa(params.MaxPrice))
	}
	if params.MaxResults > 0 {
		query.Set("max", strconv.Itoa(params.MaxResults))
	}
	if params.CurrencyCode != "" {
		query.Set("currencyCode", params.CurrencyCode)
	}
	return query
}
