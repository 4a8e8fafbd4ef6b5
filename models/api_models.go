// models/api_models.go
package models

// FindPathRequest is the expected JSON body for the /api/paths/find endpoint.
type FindPathRequest struct {
	Source      string `json:"source" validate:"required"`      // e.g., "London, United Kingdom"
	Destination string `json:"destination" validate:"required"` // e.g., "Accra, Ghana"
}

// FindPathResponse wraps the outcome of a path query.
type FindPathResponse struct {
	QueryID   string     `json:"query_id"`
	Found     bool       `json:"found"`
	Criteria  string     `json:"optimality_criteria"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}

// CityAirportsResponse lists the indexed airports of a city.
type CityAirportsResponse struct {
	City     string    `json:"city"`
	Airports []Airport `json:"airports"`
}
