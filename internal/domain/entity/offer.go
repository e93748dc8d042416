package entity

import (
	"time"
)

// Itinerary directions.
const (
	DirectionOutbound = "outbound"
	DirectionInbound  = "inbound"
)

// Money holds the priced amounts of an offer. All fields are derived once
// during normalization; PerTraveler is the grand total divided by the number
// of traveler-pricing entries in the raw offer.
type Money struct {
	Total       float64
	Base        float64
	Currency    string
	PerTraveler float64
}

// Duration is a parsed flight duration. TotalMinutes = Hours*60 + Minutes
// always holds and Formatted is a deterministic rendering of the same value.
type Duration struct {
	Hours        int
	Minutes      int
	TotalMinutes int
	Formatted    string
}

// FlightPoint is one endpoint of a segment.
type FlightPoint struct {
	AirportCode string
	CityCode    string
	CountryCode string
	Terminal    string
	At          time.Time
	Time        string // local time of day, "15:04"
	Date        string // local date, "2006-01-02"
}

// Airline identifies a carrier by IATA code plus resolved display name.
type Airline struct {
	Code string
	Name string
}

// Segment is a single flown leg on one aircraft and flight number.
// OperatingAirline is nil when the provider did not report a distinct
// operating carrier.
type Segment struct {
	ID               string
	Departure        FlightPoint
	Arrival          FlightPoint
	Duration         Duration
	CarrierCode      string
	FlightNumber     string // carrier code + number, e.g. "GA204"
	Airline          Airline
	OperatingAirline *Airline
	Aircraft         string
	Stops            int
}

// Itinerary is an ordered, non-empty sequence of segments flown in one
// direction. Duration is the provider-declared total for the direction,
// which includes layovers and so may exceed the sum of segment durations.
type Itinerary struct {
	Direction string
	Duration  Duration
	Segments  []Segment
	Stops     int // len(Segments) - 1
}

// FlightOffer is one priced, bookable proposal of one or two itineraries.
type FlightOffer struct {
	ID                string
	Price             Money
	Itineraries       []Itinerary
	ValidatingAirline Airline
	BookingClass      string
	SeatsAvailable    int
	LastTicketingDate string
	IsNonStop         bool
	IsOneWay          bool
}

// Outbound returns the outbound itinerary. Offers always have at least one.
func (o *FlightOffer) Outbound() *Itinerary {
	if len(o.Itineraries) == 0 {
		return nil
	}
	return &o.Itineraries[0]
}

// Inbound returns the return itinerary, or nil for one-way offers.
func (o *FlightOffer) Inbound() *Itinerary {
	if len(o.Itineraries) < 2 {
		return nil
	}
	return &o.Itineraries[1]
}

// MeanItineraryMinutes is the average itinerary duration of the offer,
// which compares one-way and round-trip offers fairly.
func (o *FlightOffer) MeanItineraryMinutes() float64 {
	if len(o.Itineraries) == 0 {
		return 0
	}
	total := 0
	for _, it := range o.Itineraries {
		total += it.Duration.TotalMinutes
	}
	return float64(total) / float64(len(o.Itineraries))
}
