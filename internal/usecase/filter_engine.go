package usecase

import (
	"sort"

	"flightsearch-service/internal/domain/entity"
)

// FilterEngine narrows a normalized offer list with AND-combined criteria
// and derives the bounds available to filter controls.
type FilterEngine struct{}

// NewFilterEngine creates a new filter engine
func NewFilterEngine() *FilterEngine {
	return &FilterEngine{}
}

// ComputeFilterBounds derives the available filter options from an offer
// set. Bounds must always be computed from the unfiltered set so narrowing
// one dimension never shrinks the range of another.
func (f *FilterEngine) ComputeFilterBounds(offers []entity.FlightOffer) entity.FilterOptions {
	if len(offers) == 0 {
		return entity.FilterOptions{}
	}

	minPrice := offers[0].Price.Total
	maxPrice := offers[0].Price.Total
	maxDuration := 0
	airlineSeen := make(map[string]bool)
	var airlines []entity.AirlineOption
	categorySeen := make(map[entity.StopCategory]bool)

	for _, offer := range offers {
		if offer.Price.Total < minPrice {
			minPrice = offer.Price.Total
		}
		if offer.Price.Total > maxPrice {
			maxPrice = offer.Price.Total
		}

		for _, itin := range offer.Itineraries {
			if itin.Duration.TotalMinutes > maxDuration {
				maxDuration = itin.Duration.TotalMinutes
			}
			categorySeen[entity.CategorizeStops(itin.Stops)] = true
			for _, seg := range itin.Segments {
				if !airlineSeen[seg.Airline.Code] {
					airlineSeen[seg.Airline.Code] = true
					airlines = append(airlines, entity.AirlineOption{
						Code: seg.Airline.Code,
						Name: seg.Airline.Name,
					})
				}
			}
		}
	}

	sort.Slice(airlines, func(i, j int) bool {
		return airlines[i].Name < airlines[j].Name
	})

	categories := make([]entity.StopCategory, 0, len(categorySeen))
	for _, cat := range []entity.StopCategory{entity.StopsNone, entity.StopsOne, entity.StopsTwoPlus} {
		if categorySeen[cat] {
			categories = append(categories, cat)
		}
	}

	return entity.FilterOptions{
		Airlines:           airlines,
		MinPrice:           minPrice,
		MaxPrice:           maxPrice,
		MaxDurationMinutes: maxDuration,
		StopCategories:     categories,
	}
}

// Apply returns the offers matching every dimension of the criteria. An
// empty stop or airline selection and a nil range leave that dimension
// unrestricted.
func (f *FilterEngine) Apply(offers []entity.FlightOffer, criteria entity.FilterCriteria) []entity.FlightOffer {
	allowedStops := make(map[entity.StopCategory]bool, len(criteria.Stops))
	for _, cat := range criteria.Stops {
		allowedStops[cat] = true
	}
	allowedAirlines := make(map[string]bool, len(criteria.Airlines))
	for _, code := range criteria.Airlines {
		allowedAirlines[code] = true
	}

	matched := make([]entity.FlightOffer, 0, len(offers))
	for _, offer := range offers {
		if f.matches(offer, criteria, allowedStops, allowedAirlines) {
			matched = append(matched, offer)
		}
	}
	return matched
}

func (f *FilterEngine) matches(offer entity.FlightOffer, criteria entity.FilterCriteria, allowedStops map[entity.StopCategory]bool, allowedAirlines map[string]bool) bool {
	// Stops: every itinerary's category must be allowed. A round trip is
	// excluded when either leg falls outside the selection.
	if len(allowedStops) > 0 {
		for _, itin := range offer.Itineraries {
			if !allowedStops[entity.CategorizeStops(itin.Stops)] {
				return false
			}
		}
	}

	outbound := offer.Outbound()
	if outbound == nil || len(outbound.Segments) == 0 {
		return false
	}

	// Airlines: checked against the outbound itinerary only, even for
	// round trips. Inbound carriers do not participate.
	if len(allowedAirlines) > 0 {
		found := false
		for _, seg := range outbound.Segments {
			if allowedAirlines[seg.Airline.Code] {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if criteria.PriceRange != nil {
		if offer.Price.Total < criteria.PriceRange.Min || offer.Price.Total > criteria.PriceRange.Max {
			return false
		}
	}

	if criteria.DepartureHours != nil {
		hour := outbound.Segments[0].Departure.At.Hour()
		if !criteria.DepartureHours.Contains(hour) {
			return false
		}
	}
	if criteria.ArrivalHours != nil {
		hour := outbound.Segments[len(outbound.Segments)-1].Arrival.At.Hour()
		if !criteria.ArrivalHours.Contains(hour) {
			return false
		}
	}

	if criteria.MaxDurationMinutes > 0 && outbound.Duration.TotalMinutes > criteria.MaxDurationMinutes {
		return false
	}

	return true
}
