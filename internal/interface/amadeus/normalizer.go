package amadeus

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/pkg/utils"
)

// NormalizeOffers maps a raw flight-offers response into the domain model.
// It is a pure function: no I/O, deterministic for a given input. A payload
// that cannot be mapped fails the whole call rather than producing a
// partially populated offer.
func NormalizeOffers(resp *FlightOffersResponse, params entity.SearchParams) (*entity.SearchResult, error) {
	offers := make([]entity.FlightOffer, 0, len(resp.Data))
	for _, raw := range resp.Data {
		offer, err := normalizeOffer(raw, resp.Dictionaries)
		if err != nil {
			return nil, fmt.Errorf("offer %s: %w", raw.ID, err)
		}
		offers = append(offers, offer)
	}

	currency := params.CurrencyCode
	if len(offers) > 0 {
		currency = offers[0].Price.Currency
	}

	return &entity.SearchResult{
		Offers: offers,
		Meta: entity.SearchMeta{
			Count:    len(offers),
			Currency: currency,
		},
	}, nil
}

func normalizeOffer(raw RawOffer, dict Dictionaries) (entity.FlightOffer, error) {
	if len(raw.Itineraries) == 0 {
		return entity.FlightOffer{}, fmt.Errorf("%w: offer has no itineraries", entity.ErrMalformedResponse)
	}

	price, err := normalizePrice(raw.Price, len(raw.TravelerPricings))
	if err != nil {
		return entity.FlightOffer{}, err
	}

	itineraries := make([]entity.Itinerary, 0, len(raw.Itineraries))
	nonStop := true
	for i, rawItin := range raw.Itineraries {
		direction := entity.DirectionOutbound
		if i > 0 {
			direction = entity.DirectionInbound
		}
		itin, err := normalizeItinerary(rawItin, direction, dict)
		if err != nil {
			return entity.FlightOffer{}, err
		}
		if itin.Stops > 0 {
			nonStop = false
		}
		itineraries = append(itineraries, itin)
	}

	validating := entity.Airline{}
	if len(raw.ValidatingAirlineCodes) > 0 {
		validating = resolveAirline(raw.ValidatingAirlineCodes[0], dict)
	}

	return entity.FlightOffer{
		ID:                raw.ID,
		Price:             price,
		Itineraries:       itineraries,
		ValidatingAirline: validating,
		BookingClass:      bookingClass(raw.TravelerPricings),
		SeatsAvailable:    raw.NumberOfBookableSeats,
		LastTicketingDate: raw.LastTicketingDate,
		IsNonStop:         nonStop,
		IsOneWay:          len(itineraries) == 1,
	}, nil
}

// normalizePrice derives all money fields once. The per-traveler divisor is
// the count of traveler-pricing entries, not the summed passenger counts:
// infants on lap may not have a distinct pricing entry.
func normalizePrice(raw RawPrice, travelerPricings int) (entity.Money, error) {
	totalStr := raw.GrandTotal
	if totalStr == "" {
		totalStr = raw.Total
	}
	total, err := strconv.ParseFloat(totalStr, 64)
	if err != nil {
		return entity.Money{}, fmt.Errorf("%w: invalid total %q", entity.ErrMalformedResponse, totalStr)
	}

	base := total
	if raw.Base != "" {
		base, err = strconv.ParseFloat(raw.Base, 64)
		if err != nil {
			return entity.Money{}, fmt.Errorf("%w: invalid base %q", entity.ErrMalformedResponse, raw.Base)
		}
	}

	divisor := travelerPricings
	if divisor == 0 {
		divisor = 1
	}

	return entity.Money{
		Total:       total,
		Base:        base,
		Currency:    raw.Currency,
		PerTraveler: round2(total / float64(divisor)),
	}, nil
}

func normalizeItinerary(raw RawItinerary, direction string, dict Dictionaries) (entity.Itinerary, error) {
	if len(raw.Segments) == 0 {
		return entity.Itinerary{}, fmt.Errorf("%w: itinerary has no segments", entity.ErrMalformedResponse)
	}

	duration, err := utils.ParseISODuration(raw.Duration)
	if err != nil {
		return entity.Itinerary{}, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}

	segments := make([]entity.Segment, 0, len(raw.Segments))
	for _, rawSeg := range raw.Segments {
		seg, err := normalizeSegment(rawSeg, dict)
		if err != nil {
			return entity.Itinerary{}, err
		}
		segments = append(segments, seg)
	}

	return entity.Itinerary{
		Direction: direction,
		Duration:  duration,
		Segments:  segments,
		Stops:     len(segments) - 1,
	}, nil
}

func normalizeSegment(raw RawSegment, dict Dictionaries) (entity.Segment, error) {
	departure, err := normalizeEndpoint(raw.Departure, dict)
	if err != nil {
		return entity.Segment{}, err
	}
	arrival, err := normalizeEndpoint(raw.Arrival, dict)
	if err != nil {
		return entity.Segment{}, err
	}

	duration, err := utils.ParseISODuration(raw.Duration)
	if err != nil {
		return entity.Segment{}, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}

	seg := entity.Segment{
		ID:           raw.ID,
		Departure:    departure,
		Arrival:      arrival,
		Duration:     duration,
		CarrierCode:  raw.CarrierCode,
		FlightNumber: raw.CarrierCode + raw.Number,
		Airline:      resolveAirline(raw.CarrierCode, dict),
		Aircraft:     resolveAircraft(raw.Aircraft.Code, dict),
		Stops:        raw.NumberOfStops,
	}

	// The operating carrier is kept only when the provider reported one;
	// it is not backfilled from the marketing carrier.
	if raw.Operating != nil && raw.Operating.CarrierCode != "" {
		operating := resolveAirline(raw.Operating.CarrierCode, dict)
		seg.OperatingAirline = &operating
	}

	return seg, nil
}

func normalizeEndpoint(raw RawEndpoint, dict Dictionaries) (entity.FlightPoint, error) {
	at, err := parseDateTime(raw.At)
	if err != nil {
		return entity.FlightPoint{}, fmt.Errorf("%w: %v", entity.ErrMalformedResponse, err)
	}

	loc := dict.Locations[raw.IataCode]

	return entity.FlightPoint{
		AirportCode: raw.IataCode,
		CityCode:    loc.CityCode,
		CountryCode: loc.CountryCode,
		Terminal:    raw.Terminal,
		At:          at,
		Time:        at.Format("15:04"),
		Date:        at.Format("2006-01-02"),
	}, nil
}

// resolveAirline resolves a carrier code to a display name, falling back to
// the raw code when the dictionary has no entry.
func resolveAirline(code string, dict Dictionaries) entity.Airline {
	name := code
	if n, ok := dict.Carriers[code]; ok && n != "" {
		name = n
	}
	return entity.Airline{Code: code, Name: name}
}

func resolveAircraft(code string, dict Dictionaries) string {
	if name, ok := dict.Aircraft[code]; ok && name != "" {
		return name
	}
	return code
}

// bookingClass extracts the cabin of the first fare detail, the provider's
// representative class for the offer.
func bookingClass(pricings []RawTravelerPricing) string {
	if len(pricings) == 0 || len(pricings[0].FareDetailsBySegment) == 0 {
		return ""
	}
	return pricings[0].FareDetailsBySegment[0].Cabin
}

// parseDateTime parses the provider's local timestamps, which come with or
// without a zone offset.
func parseDateTime(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err == nil {
		return t, nil
	}
	t, err = time.Parse("2006-01-02T15:04:05", value)
	if err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("unable to parse datetime %q", value)
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}
