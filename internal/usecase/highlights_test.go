package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"flightsearch-service/internal/domain/entity"
)

func TestSelectHighlights_CheapestAndFastest(t *testing.T) {
	offers := []entity.FlightOffer{
		buildOffer("slow-cheap", 200, buildItinerary(entity.DirectionOutbound, 600, 8, 18, "AA")),
		buildOffer("fast-pricey", 500, buildItinerary(entity.DirectionOutbound, 120, 9, 11, "BB")),
		buildOffer("middle", 350, buildItinerary(entity.DirectionOutbound, 300, 10, 15, "CC")),
	}

	highlights := SelectHighlights(offers)

	require.Len(t, highlights, 2)
	assert.Equal(t, entity.HighlightCheapest, highlights[0].Kind)
	assert.Equal(t, "slow-cheap", highlights[0].Offer.ID)
	assert.Equal(t, entity.HighlightFastest, highlights[1].Kind)
	assert.Equal(t, "fast-pricey", highlights[1].Offer.ID)
}

func TestSelectHighlights_CoincidingOffersSuppressed(t *testing.T) {
	offers := []entity.FlightOffer{
		buildOffer("best", 200, buildItinerary(entity.DirectionOutbound, 120, 8, 10, "AA")),
		buildOffer("worse", 400, buildItinerary(entity.DirectionOutbound, 300, 9, 14, "BB")),
	}

	highlights := SelectHighlights(offers)

	assert.Empty(t, highlights, "no highlight when cheapest and fastest coincide")
}

func TestSelectHighlights_MeanDurationComparesRoundTripsFairly(t *testing.T) {
	offers := []entity.FlightOffer{
		// Round trip: mean (100+200)/2 = 150 minutes.
		buildOffer("round", 300,
			buildItinerary(entity.DirectionOutbound, 100, 8, 10, "AA"),
			buildItinerary(entity.DirectionInbound, 200, 9, 12, "AA")),
		// One-way: 160 minutes.
		buildOffer("oneway", 200, buildItinerary(entity.DirectionOutbound, 160, 8, 11, "BB")),
	}

	highlights := SelectHighlights(offers)

	require.Len(t, highlights, 2)
	assert.Equal(t, "oneway", highlights[0].Offer.ID)
	assert.Equal(t, "round", highlights[1].Offer.ID, "round trip wins on mean duration")
}

func TestSelectHighlights_TiesGoToFirstOccurrence(t *testing.T) {
	offers := []entity.FlightOffer{
		buildOffer("first", 200, buildItinerary(entity.DirectionOutbound, 300, 8, 13, "AA")),
		buildOffer("second", 200, buildItinerary(entity.DirectionOutbound, 300, 9, 14, "BB")),
		buildOffer("fast", 400, buildItinerary(entity.DirectionOutbound, 100, 9, 11, "CC")),
	}

	highlights := SelectHighlights(offers)

	require.Len(t, highlights, 2)
	assert.Equal(t, "first", highlights[0].Offer.ID, "stable sort keeps the earliest offer")
}

func TestSelectHighlights_Empty(t *testing.T) {
	assert.Nil(t, SelectHighlights(nil))
}

func TestSortByPrice_DoesNotMutateInput(t *testing.T) {
	offers := []entity.FlightOffer{
		buildOffer("b", 300, buildItinerary(entity.DirectionOutbound, 100, 8, 10, "AA")),
		buildOffer("a", 100, buildItinerary(entity.DirectionOutbound, 100, 8, 10, "BB")),
	}

	sorted := SortByPrice(offers)

	assert.Equal(t, "a", sorted[0].ID)
	assert.Equal(t, "b", offers[0].ID, "input order preserved")
}
