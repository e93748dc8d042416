package entity

// Location kinds as reported by the reference-data endpoint.
const (
	LocationKindCity    = "CITY"
	LocationKindAirport = "AIRPORT"
)

// LocationEntry represents a city or airport from the location directory.
// Only CITY entries carry ChildAirports; an airport appears either nested
// under its city or standalone in a result list, never both.
type LocationEntry struct {
	ID            string
	Kind          string
	Code          string
	Name          string
	CityCode      string
	CountryCode   string
	DetailedName  string
	Score         int
	ChildAirports []LocationEntry
}

// IsCity reports whether the entry is a city.
func (l *LocationEntry) IsCity() bool {
	return l.Kind == LocationKindCity
}
