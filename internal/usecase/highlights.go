package usecase

import (
	"sort"

	"flightsearch-service/internal/domain/entity"
)

// SelectHighlights derives the cheapest and fastest offers of a result set.
// "Fastest" uses the mean itinerary duration so one-way and round-trip
// offers compare fairly. When both highlights land on the same offer the
// result is empty: a duplicate highlight carries no information. Ties go to
// the first occurrence in original order.
func SelectHighlights(offers []entity.FlightOffer) []entity.Highlight {
	if len(offers) == 0 {
		return nil
	}

	cheapest := SortByPrice(offers)[0]
	fastest := SortByDuration(offers)[0]

	if cheapest.ID == fastest.ID {
		return []entity.Highlight{}
	}

	return []entity.Highlight{
		{Kind: entity.HighlightCheapest, Offer: cheapest},
		{Kind: entity.HighlightFastest, Offer: fastest},
	}
}

// SortByPrice returns a copy of the offers stably sorted by ascending
// total price.
func SortByPrice(offers []entity.FlightOffer) []entity.FlightOffer {
	sorted := make([]entity.FlightOffer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Price.Total < sorted[j].Price.Total
	})
	return sorted
}

// SortByDuration returns a copy of the offers stably sorted by ascending
// mean itinerary duration.
func SortByDuration(offers []entity.FlightOffer) []entity.FlightOffer {
	sorted := make([]entity.FlightOffer, len(offers))
	copy(sorted, offers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MeanItineraryMinutes() < sorted[j].MeanItineraryMinutes()
	})
	return sorted
}
