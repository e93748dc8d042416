package amadeus

// Wire types for the Amadeus self-service API. Field names follow the
// provider's JSON exactly; normalization maps them to domain entities.

// FlightOffersResponse is the raw flight-offers search payload.
type FlightOffersResponse struct {
	Meta         ResponseMeta `json:"meta"`
	Data         []RawOffer   `json:"data"`
	Dictionaries Dictionaries `json:"dictionaries"`
}

// ResponseMeta carries the provider's result count.
type ResponseMeta struct {
	Count int `json:"count"`
}

// Dictionaries resolve codes appearing in offers to display values.
type Dictionaries struct {
	Carriers  map[string]string      `json:"carriers"`
	Aircraft  map[string]string      `json:"aircraft"`
	Locations map[string]RawLocation `json:"locations"`
}

// RawLocation is a dictionary entry for an airport code.
type RawLocation struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

// RawOffer is one priced offer as returned by the provider.
type RawOffer struct {
	ID                     string               `json:"id"`
	OneWay                 bool                 `json:"oneWay"`
	LastTicketingDate      string               `json:"lastTicketingDate"`
	NumberOfBookableSeats  int                  `json:"numberOfBookableSeats"`
	Itineraries            []RawItinerary       `json:"itineraries"`
	Price                  RawPrice             `json:"price"`
	ValidatingAirlineCodes []string             `json:"validatingAirlineCodes"`
	TravelerPricings       []RawTravelerPricing `json:"travelerPricings"`
}

// RawItinerary is one direction of an offer.
type RawItinerary struct {
	Duration string       `json:"duration"`
	Segments []RawSegment `json:"segments"`
}

// RawSegment is one flown leg.
type RawSegment struct {
	ID            string        `json:"id"`
	Departure     RawEndpoint   `json:"departure"`
	Arrival       RawEndpoint   `json:"arrival"`
	CarrierCode   string        `json:"carrierCode"`
	Number        string        `json:"number"`
	Aircraft      RawAircraft   `json:"aircraft"`
	Operating     *RawOperating `json:"operating,omitempty"`
	Duration      string        `json:"duration"`
	NumberOfStops int           `json:"numberOfStops"`
}

// RawEndpoint is a segment departure or arrival point.
type RawEndpoint struct {
	IataCode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

// RawAircraft carries the aircraft type code.
type RawAircraft struct {
	Code string `json:"code"`
}

// RawOperating carries the operating carrier when it differs from the
// marketing carrier.
type RawOperating struct {
	CarrierCode string `json:"carrierCode"`
}

// RawPrice is the price block of an offer. Amounts are decimal strings.
type RawPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base"`
	GrandTotal string `json:"grandTotal"`
}

// RawTravelerPricing is the per-traveler fare breakdown. The number of
// these entries is the divisor for per-traveler pricing.
type RawTravelerPricing struct {
	TravelerID           string           `json:"travelerId"`
	FareOption           string           `json:"fareOption"`
	TravelerType         string           `json:"travelerType"`
	FareDetailsBySegment []RawFareDetails `json:"fareDetailsBySegment"`
}

// RawFareDetails is the fare class of one traveler on one segment.
type RawFareDetails struct {
	SegmentID string `json:"segmentId"`
	Cabin     string `json:"cabin"`
	Class     string `json:"class"`
}

// LocationsResponse is the raw reference-data locations payload.
type LocationsResponse struct {
	Data []RawLocationRecord `json:"data"`
}

// RawLocationRecord is one typed CITY or AIRPORT record.
type RawLocationRecord struct {
	ID           string        `json:"id"`
	SubType      string        `json:"subType"`
	Name         string        `json:"name"`
	DetailedName string        `json:"detailedName"`
	IataCode     string        `json:"iataCode"`
	Address      RawAddress    `json:"address"`
	Analytics    *RawAnalytics `json:"analytics,omitempty"`
}

// RawAddress holds the city and country codes of a location record.
type RawAddress struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

// RawAnalytics carries the provider's popularity score.
type RawAnalytics struct {
	Travelers RawTravelers `json:"travelers"`
}

// RawTravelers holds the traveler score of a location.
type RawTravelers struct {
	Score int `json:"score"`
}
