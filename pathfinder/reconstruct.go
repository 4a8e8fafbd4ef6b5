package pathfinder

import (
	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/routegraph"
)

// Reconstruct walks the winning chain of res and returns the itinerary in
// chronological order. It returns ErrNoPath when res holds no path.
func Reconstruct(res *Result) (*models.Itinerary, error) {
	chain := res.Chain()
	if len(chain) == 0 {
		return nil, ErrNoPath
	}
	root, terminal := chain[0], chain[len(chain)-1]

	it := &models.Itinerary{
		Source:        root.CityKey,
		Destination:   terminal.CityKey,
		Legs:          make([]models.Leg, 0, len(chain)-1),
		TotalFlights:  terminal.FlightCount,
		TotalDistance: terminal.CumulativeDistance,
	}
	for i := 1; i < len(chain); i++ {
		prev, cur := chain[i-1], chain[i]
		it.Legs = append(it.Legs, models.Leg{
			Airline:         cur.Airline,
			Origin:          prev.AirportCode,
			Destination:     cur.AirportCode,
			OriginCity:      prev.CityKey,
			DestinationCity: cur.CityKey,
			Stops:           cur.Stops,
			DistanceKm:      cur.CumulativeDistance - prev.CumulativeDistance,
		})
		it.TotalStops += cur.Stops
	}
	return it, nil
}

// FindItinerary runs Search and Reconstruct. A search that finds nothing
// returns ErrNoPath.
func FindItinerary(g *routegraph.Graph, source, destination string, opts ...Option) (*models.Itinerary, error) {
	res, err := Search(g, source, destination, opts...)
	if err != nil {
		return nil, err
	}
	return Reconstruct(res)
}
