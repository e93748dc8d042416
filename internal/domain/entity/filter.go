package entity

// StopCategory buckets an itinerary's stop count for filtering.
type StopCategory int

const (
	StopsNone StopCategory = iota // non-stop
	StopsOne                      // exactly one stop
	StopsTwoPlus                  // two or more stops
)

// CategorizeStops maps a raw stop count to its filter bucket.
func CategorizeStops(stops int) StopCategory {
	switch {
	case stops <= 0:
		return StopsNone
	case stops == 1:
		return StopsOne
	default:
		return StopsTwoPlus
	}
}

// PriceRange is an inclusive total-price window.
type PriceRange struct {
	Min float64
	Max float64
}

// HourRange is an inclusive hour-of-day window in [0, 24].
type HourRange struct {
	From int
	To   int
}

// Contains reports whether the hour lies within the window.
func (r HourRange) Contains(hour int) bool {
	return hour >= r.From && hour <= r.To
}

// FilterCriteria describes one filter pass over a result set. Dimensions
// are AND-combined. An empty Stops or Airlines slice and a nil range mean
// "no restriction on this dimension", never "match nothing".
type FilterCriteria struct {
	Stops              []StopCategory
	Airlines           []string
	PriceRange         *PriceRange
	DepartureHours     *HourRange
	ArrivalHours       *HourRange
	MaxDurationMinutes int // 0 = unlimited
}

// AirlineOption is one selectable airline in the filter bounds.
type AirlineOption struct {
	Code string
	Name string
}

// FilterOptions are the bounds available to filter controls, always derived
// from the unfiltered offer set so narrowing one dimension never shrinks
// the range of another.
type FilterOptions struct {
	Airlines           []AirlineOption
	MinPrice           float64
	MaxPrice           float64
	MaxDurationMinutes int
	StopCategories     []StopCategory
}
