package usecase

import (
	"context"
	"sort"
	"strings"
	"sync"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/domain/repository"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

const (
	// minKeywordLength is the shortest keyword worth a network call.
	minKeywordLength = 2
	// resolveSearchLimit bounds the fallback search used by ResolveByCode.
	resolveSearchLimit = 10
)

// LocationDirectory searches the location endpoint, groups airports under
// their cities and caches entries by IATA code for the process lifetime.
type LocationDirectory struct {
	repo    repository.LocationRepository
	logger  logger.Logger
	metrics *metrics.Metrics

	mu     sync.RWMutex
	byCode map[string]entity.LocationEntry
}

// NewLocationDirectory creates a new location directory. The metrics
// argument may be nil.
func NewLocationDirectory(repo repository.LocationRepository, logger logger.Logger, m *metrics.Metrics) *LocationDirectory {
	return &LocationDirectory{
		repo:    repo,
		logger:  logger,
		metrics: m,
		byCode:  make(map[string]entity.LocationEntry),
	}
}

// Search queries the location endpoint and returns grouped results: cities
// ordered by descending popularity score with their airports nested, then
// ungrouped airports in their original relative order. Keywords shorter
// than two characters return an empty list without a network call.
func (d *LocationDirectory) Search(ctx context.Context, keyword string, maxResults int) ([]entity.LocationEntry, error) {
	keyword = strings.TrimSpace(keyword)
	if len(keyword) < minKeywordLength {
		return []entity.LocationEntry{}, nil
	}

	flat, err := d.repo.SearchLocations(ctx, keyword, maxResults)
	if err != nil {
		return nil, err
	}

	grouped := GroupLocations(flat)
	d.cacheEntries(ctx, grouped)
	return grouped, nil
}

// ResolveByCode returns the directory entry for an IATA code, or nil when
// it cannot be resolved. It never returns an error: transport failures are
// logged and mapped to nil since resolution is a best-effort prefill.
func (d *LocationDirectory) ResolveByCode(ctx context.Context, code string) *entity.LocationEntry {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return nil
	}

	d.mu.RLock()
	cached, ok := d.byCode[code]
	d.mu.RUnlock()
	if ok {
		if d.metrics != nil {
			d.metrics.CacheHits.WithLabelValues("location").Inc()
		}
		return &cached
	}

	results, err := d.Search(ctx, code, resolveSearchLimit)
	if err != nil {
		d.logger.Warn("Location lookup failed", "code", code, "error", err)
		return nil
	}

	// Prefer the exact code match, checking nested airports too.
	for i := range results {
		if results[i].Code == code {
			return &results[i]
		}
		for j := range results[i].ChildAirports {
			if results[i].ChildAirports[j].Code == code {
				return &results[i].ChildAirports[j]
			}
		}
	}

	if len(results) > 0 {
		return &results[0]
	}
	return nil
}

// ClearCache drops every cached entry.
func (d *LocationDirectory) ClearCache() {
	d.mu.Lock()
	d.byCode = make(map[string]entity.LocationEntry)
	d.mu.Unlock()
}

// cacheEntries stores entries by code. Results of an abandoned request are
// discarded so a superseded search never publishes stale cache state.
func (d *LocationDirectory) cacheEntries(ctx context.Context, entries []entity.LocationEntry) {
	if ctx.Err() != nil {
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	for _, e := range entries {
		d.byCode[e.Code] = e
		for _, child := range e.ChildAirports {
			d.byCode[child.Code] = child
		}
	}
}

// GroupLocations partitions a flat result list into city entries owning
// their airports. An airport whose city is present in the list is nested
// under it and removed from the top level.
func GroupLocations(entries []entity.LocationEntry) []entity.LocationEntry {
	cities := make([]entity.LocationEntry, 0, len(entries))
	cityIndex := make(map[string]int)
	var airports []entity.LocationEntry

	for _, e := range entries {
		if e.IsCity() {
			cityIndex[e.Code] = len(cities)
			cities = append(cities, e)
			continue
		}
		airports = append(airports, e)
	}

	var ungrouped []entity.LocationEntry
	for _, a := range airports {
		if idx, ok := cityIndex[a.CityCode]; ok {
			cities[idx].ChildAirports = append(cities[idx].ChildAirports, a)
			continue
		}
		ungrouped = append(ungrouped, a)
	}

	sort.SliceStable(cities, func(i, j int) bool {
		return cities[i].Score > cities[j].Score
	})

	return append(cities, ungrouped...)
}
