// models/itinerary.go
package models

import "math"

// OptimalityCriteria names what the path search minimises.
const OptimalityCriteria = "flights"

// Leg is one boarded flight of an itinerary.
type Leg struct {
	Airline         string  `json:"airline"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	OriginCity      string  `json:"origin_city"`
	DestinationCity string  `json:"destination_city"`
	Stops           int     `json:"stops"`
	DistanceKm      float64 `json:"distance_km"`
}

// Itinerary is a reconstructed path in chronological order.
type Itinerary struct {
	Source        string  `json:"source"`
	Destination   string  `json:"destination"`
	Legs          []Leg   `json:"legs"`
	TotalFlights  int     `json:"total_flights"`
	TotalStops    int     `json:"total_stops"`
	TotalDistance float64 `json:"total_distance_km"`
}

// RoundedDistance is the total distance rounded to the nearest kilometre.
func (it Itinerary) RoundedDistance() int64 {
	return int64(math.Round(it.TotalDistance))
}
