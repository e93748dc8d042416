package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/utils"
)

// buildItinerary assembles an itinerary with one synthetic segment per
// carrier code, departing at departHour and arriving at arriveHour.
func buildItinerary(direction string, durationMinutes, departHour, arriveHour int, carriers ...string) entity.Itinerary {
	day := time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)
	segments := make([]entity.Segment, 0, len(carriers))
	for i, code := range carriers {
		segments = append(segments, entity.Segment{
			ID:          code,
			CarrierCode: code,
			Airline:     entity.Airline{Code: code, Name: code},
			Departure:   entity.FlightPoint{At: day.Add(time.Duration(departHour+i) * time.Hour)},
			Arrival:     entity.FlightPoint{At: day.Add(time.Duration(arriveHour) * time.Hour)},
		})
	}
	return entity.Itinerary{
		Direction: direction,
		Duration:  utils.NewDuration(durationMinutes/60, durationMinutes%60),
		Segments:  segments,
		Stops:     len(segments) - 1,
	}
}

func buildOffer(id string, price float64, itineraries ...entity.Itinerary) entity.FlightOffer {
	nonStop := true
	for _, itin := range itineraries {
		if itin.Stops > 0 {
			nonStop = false
		}
	}
	return entity.FlightOffer{
		ID:          id,
		Price:       entity.Money{Total: price, Currency: "USD"},
		Itineraries: itineraries,
		IsNonStop:   nonStop,
		IsOneWay:    len(itineraries) == 1,
	}
}

func sampleOffers() []entity.FlightOffer {
	return []entity.FlightOffer{
		// Non-stop round trip, early departure.
		buildOffer("A", 400,
			buildItinerary(entity.DirectionOutbound, 120, 8, 10, "AA"),
			buildItinerary(entity.DirectionInbound, 130, 9, 11, "AA")),
		// Direct outbound, connecting return.
		buildOffer("B", 300,
			buildItinerary(entity.DirectionOutbound, 150, 14, 17, "BB"),
			buildItinerary(entity.DirectionInbound, 300, 10, 15, "BB", "CC")),
		// One-way with two stops.
		buildOffer("C", 250,
			buildItinerary(entity.DirectionOutbound, 600, 22, 23, "CC", "DD", "AA")),
	}
}

func TestFilterEngine_EmptyCriteriaMatchesAll(t *testing.T) {
	engine := NewFilterEngine()
	offers := sampleOffers()

	matched := engine.Apply(offers, entity.FilterCriteria{})

	assert.Equal(t, offers, matched, "empty criteria restrict nothing")
}

func TestFilterEngine_Idempotent(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{
		Stops:      []entity.StopCategory{entity.StopsNone, entity.StopsOne},
		PriceRange: &entity.PriceRange{Min: 250, Max: 400},
	}

	once := engine.Apply(sampleOffers(), criteria)
	twice := engine.Apply(once, criteria)

	assert.Equal(t, once, twice)
}

func TestFilterEngine_StopsChecksEveryItinerary(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{Stops: []entity.StopCategory{entity.StopsNone}}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 1)
	assert.Equal(t, "A", matched[0].ID, "offer B has a connecting return and must be excluded")
}

func TestFilterEngine_StopsTwoPlusCategory(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{Stops: []entity.StopCategory{entity.StopsTwoPlus}}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 1)
	assert.Equal(t, "C", matched[0].ID)
}

func TestFilterEngine_AirlinesCheckOutboundOnly(t *testing.T) {
	engine := NewFilterEngine()

	// CC flies only the inbound of offer B but the outbound of offer C.
	matched := engine.Apply(sampleOffers(), entity.FilterCriteria{Airlines: []string{"CC"}})

	require.Len(t, matched, 1)
	assert.Equal(t, "C", matched[0].ID, "inbound airlines are not considered")
}

func TestFilterEngine_PriceRangeInclusive(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{PriceRange: &entity.PriceRange{Min: 250, Max: 300}}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 2)
	assert.Equal(t, "B", matched[0].ID)
	assert.Equal(t, "C", matched[1].ID)
}

func TestFilterEngine_DepartureHourRange(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{DepartureHours: &entity.HourRange{From: 8, To: 14}}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 2)
	assert.Equal(t, "A", matched[0].ID)
	assert.Equal(t, "B", matched[1].ID, "range bounds are inclusive")
}

func TestFilterEngine_ArrivalHourRange(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{ArrivalHours: &entity.HourRange{From: 16, To: 23}}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 2)
	assert.Equal(t, "B", matched[0].ID)
	assert.Equal(t, "C", matched[1].ID)
}

func TestFilterEngine_MaxDurationOnOutbound(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{MaxDurationMinutes: 150}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 2)
	assert.Equal(t, "A", matched[0].ID)
	assert.Equal(t, "B", matched[1].ID, "only the outbound duration is limited")
}

func TestFilterEngine_CriteriaAreANDCombined(t *testing.T) {
	engine := NewFilterEngine()
	criteria := entity.FilterCriteria{
		Airlines:   []string{"AA", "BB"},
		PriceRange: &entity.PriceRange{Min: 350, Max: 500},
	}

	matched := engine.Apply(sampleOffers(), criteria)

	require.Len(t, matched, 1)
	assert.Equal(t, "A", matched[0].ID)
}

func TestFilterEngine_ComputeFilterBounds(t *testing.T) {
	engine := NewFilterEngine()

	bounds := engine.ComputeFilterBounds(sampleOffers())

	assert.Equal(t, 250.0, bounds.MinPrice)
	assert.Equal(t, 400.0, bounds.MaxPrice)
	assert.Equal(t, 600, bounds.MaxDurationMinutes)
	assert.Equal(t, []entity.StopCategory{entity.StopsNone, entity.StopsOne, entity.StopsTwoPlus}, bounds.StopCategories)

	codes := make([]string, 0, len(bounds.Airlines))
	for _, a := range bounds.Airlines {
		codes = append(codes, a.Code)
	}
	assert.ElementsMatch(t, []string{"AA", "BB", "CC", "DD"}, codes)
}

func TestFilterEngine_BoundsFromUnfilteredSet(t *testing.T) {
	engine := NewFilterEngine()
	offers := sampleOffers()

	narrowed := engine.Apply(offers, entity.FilterCriteria{Airlines: []string{"AA"}})
	require.Less(t, len(narrowed), len(offers))

	// Recomputing from the unfiltered set keeps the full ranges available.
	bounds := engine.ComputeFilterBounds(offers)
	assert.Equal(t, 250.0, bounds.MinPrice)
	assert.Equal(t, 400.0, bounds.MaxPrice)
}

func TestFilterEngine_EmptyOffers(t *testing.T) {
	engine := NewFilterEngine()

	assert.Empty(t, engine.Apply(nil, entity.FilterCriteria{}))
	assert.Equal(t, entity.FilterOptions{}, engine.ComputeFilterBounds(nil))
}
