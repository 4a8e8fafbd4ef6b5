// models/airport.go
package models

// AirportRow is one record of the airport table (OpenFlights airports.dat
// column order). Only the first nine columns are read.
type AirportRow struct {
	Seq int64 `csv:"-" db:"seq" json:"-"` // position in the source table

	ID        string  `csv:"id" db:"airport_id" json:"id"`
	Name      string  `csv:"name" db:"name" json:"name"`
	City      string  `csv:"city" db:"city" json:"city"`
	Country   string  `csv:"country" db:"country" json:"country"`
	IATA      string  `csv:"iata" db:"iata" json:"iata"`
	ICAO      string  `csv:"icao" db:"icao" json:"icao"`
	Latitude  float64 `csv:"latitude" db:"latitude" json:"latitude"`
	Longitude float64 `csv:"longitude" db:"longitude" json:"longitude"`
	Altitude  float64 `csv:"altitude" db:"altitude" json:"altitude"`
}

// RouteRow is one record of the route table (OpenFlights routes.dat column
// order). Only the first eight columns are read.
type RouteRow struct {
	Seq int64 `csv:"-" db:"seq" json:"-"`

	Airline       string `csv:"airline" db:"airline" json:"airline"`
	AirlineID     string `csv:"airline_id" db:"airline_id" json:"airline_id"`
	Source        string `csv:"source" db:"source" json:"source"`
	SourceID      string `csv:"source_id" db:"source_id" json:"source_id"`
	Destination   string `csv:"destination" db:"destination" json:"destination"`
	DestinationID string `csv:"destination_id" db:"destination_id" json:"destination_id"`
	Codeshare     string `csv:"codeshare" db:"codeshare" json:"codeshare"`
	Stops         int    `csv:"stops" db:"stops" json:"stops"`
}

// Airport is an indexed airport. Values are immutable once the route graph
// is built.
type Airport struct {
	Code      string  `json:"code"`
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	City      string  `json:"city"`
	Country   string  `json:"country"`
	CityKey   string  `json:"city_key"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Altitude  float64 `json:"altitude"`
}

// Edge is an outgoing route annotated with the data of the route row that
// produced it. Destination is nil when the route names an airport code that
// is not indexed; consumers must skip such edges.
type Edge struct {
	Destination *Airport
	Airline     string
	Stops       int
}

// Valid reports whether the edge points at an indexed airport.
func (e Edge) Valid() bool {
	return e.Destination != nil
}
