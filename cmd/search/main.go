package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"flightsearch-service/internal/domain/entity"
	"flightsearch-service/internal/infrastructure/config"
	"flightsearch-service/internal/infrastructure/oauth"
	"flightsearch-service/internal/interface/amadeus"
	"flightsearch-service/internal/usecase"
	"flightsearch-service/pkg/logger"
	"flightsearch-service/pkg/metrics"
)

func main() {
	origin := flag.String("from", "", "origin IATA code")
	destination := flag.String("to", "", "destination IATA code")
	departDate := flag.String("depart", "", "departure date (YYYY-MM-DD)")
	returnDate := flag.String("return", "", "return date (YYYY-MM-DD), empty for one-way")
	adults := flag.Int("adults", 1, "number of adult travelers")
	children := flag.Int("children", 0, "number of child travelers")
	infants := flag.Int("infants", 0, "number of infant travelers")
	travelClass := flag.String("class", "", "travel class (ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST)")
	nonStop := flag.Bool("nonstop", false, "only non-stop offers")
	maxPrice := flag.Int("max-price", 0, "maximum total price, 0 for no limit")
	flag.Parse()

	// Create logger
	log := logger.NewLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Wire the pipeline
	m := metrics.NewMetrics("flightsearch")
	tokens := oauth.NewTokenCache(cfg.AmadeusBaseURL, cfg.AmadeusClientID, cfg.AmadeusClientSecret, log, m)
	client := amadeus.NewClient(cfg.AmadeusBaseURL, cfg.HTTPTimeout, tokens, log)
	flightRepo := amadeus.NewFlightRepo(client, log)
	locationRepo := amadeus.NewLocationRepo(client, log)
	directory := usecase.NewLocationDirectory(locationRepo, log, m)
	service := usecase.NewSearchService(flightRepo, log, m)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	params := entity.SearchParams{
		Origin:       *origin,
		Destination:  *destination,
		DepartDate:   *departDate,
		ReturnDate:   *returnDate,
		Adults:       *adults,
		Children:     *children,
		Infants:      *infants,
		TravelClass:  *travelClass,
		NonStopOnly:  *nonStop,
		MaxPrice:     *maxPrice,
		MaxResults:   cfg.MaxResults,
		CurrencyCode: cfg.CurrencyCode,
	}

	result, err := service.SearchFlights(ctx, params)
	if err != nil {
		log.Fatal("Search failed", "error", err)
	}

	printRoute(ctx, directory, params)
	fmt.Printf("%d offers (%s), %dms\n\n", result.Meta.Count, result.Meta.Currency, result.Meta.SearchTimeMs)

	for _, highlight := range service.Highlights(result.Offers) {
		fmt.Printf("[%s] offer %s, %.2f %s\n", highlight.Kind, highlight.Offer.ID, highlight.Offer.Price.Total, highlight.Offer.Price.Currency)
	}
	fmt.Println()

	for _, offer := range result.Offers {
		printOffer(offer)
	}

	bounds := service.FilterBounds(result.Offers)
	fmt.Printf("Price range: %.2f - %.2f | Max duration: %dm | Airlines: %d\n",
		bounds.MinPrice, bounds.MaxPrice, bounds.MaxDurationMinutes, len(bounds.Airlines))
}

func printRoute(ctx context.Context, directory *usecase.LocationDirectory, params entity.SearchParams) {
	from := params.Origin
	if entry := directory.ResolveByCode(ctx, params.Origin); entry != nil {
		from = fmt.Sprintf("%s (%s)", entry.Name, entry.Code)
	}
	to := params.Destination
	if entry := directory.ResolveByCode(ctx, params.Destination); entry != nil {
		to = fmt.Sprintf("%s (%s)", entry.Name, entry.Code)
	}
	fmt.Printf("%s -> %s, %s\n", from, to, params.DepartDate)
}

func printOffer(offer entity.FlightOffer) {
	fmt.Printf("Offer %s: %.2f %s (%.2f per traveler), %s, %d seats\n",
		offer.ID, offer.Price.Total, offer.Price.Currency, offer.Price.PerTraveler,
		offer.BookingClass, offer.SeatsAvailable)

	for _, itin := range offer.Itineraries {
		fmt.Printf("  %s: %s, %d stop(s)\n", itin.Direction, itin.Duration.Formatted, itin.Stops)
		for _, seg := range itin.Segments {
			operated := ""
			if seg.OperatingAirline != nil {
				operated = fmt.Sprintf(" (operated by %s)", seg.OperatingAirline.Name)
			}
			fmt.Printf("    %s %s %s %s -> %s %s%s\n",
				seg.FlightNumber, seg.Airline.Name,
				seg.Departure.AirportCode, seg.Departure.Time,
				seg.Arrival.AirportCode, seg.Arrival.Time, operated)
		}
	}
}
