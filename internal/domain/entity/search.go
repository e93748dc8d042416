package entity

// SearchParams are the inputs of one flight-offer search.
type SearchParams struct {
	Origin       string
	Destination  string
	DepartDate   string // "2006-01-02"
	ReturnDate   string // empty for one-way
	Adults       int
	Children     int
	Infants      int
	TravelClass  string
	NonStopOnly  bool
	MaxPrice     int
	MaxResults   int
	CurrencyCode string
}

// IsRoundTrip reports whether a return leg was requested.
func (p SearchParams) IsRoundTrip() bool {
	return p.ReturnDate != ""
}

// SearchMeta describes one completed search.
type SearchMeta struct {
	Count        int
	Currency     string
	SearchTimeMs int64
}

// SearchResult is the normalized output of one search invocation.
type SearchResult struct {
	Offers []FlightOffer
	Meta   SearchMeta
}

// Highlight kinds.
const (
	HighlightCheapest = "cheapest"
	HighlightFastest  = "fastest"
)

// Highlight is a distinguished offer surfaced above the result list.
type Highlight struct {
	Kind  string
	Offer FlightOffer
}
