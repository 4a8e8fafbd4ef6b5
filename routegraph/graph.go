package routegraph

import (
	"slices"

	"github.com/gewnthar/flightpath/models"
)

// Graph is the read-only route index. Build it with Build or FromRows.
type Graph struct {
	airports map[string]models.Airport
	routes   map[string][]models.Edge
	cities   map[string][]string
	stats    Stats
}

// Stats summarises what a build indexed and what it skipped.
type Stats struct {
	Airports            int `json:"airports"`
	Cities              int `json:"cities"`
	SourceAirports      int `json:"source_airports"`       // airports with at least one outgoing route
	Routes              int `json:"routes"`                // recorded edges, dangling ones included
	DanglingRoutes      int `json:"dangling_routes"`       // destination code not indexed
	UnknownSourceRoutes int `json:"unknown_source_routes"` // dropped, source code not indexed
	SkippedAirports     int `json:"skipped_airports"`      // blank or `\N` code
}

// Stats returns the build summary.
func (g *Graph) Stats() Stats {
	return g.stats
}

// Airport looks up an indexed airport by code.
func (g *Graph) Airport(code string) (models.Airport, bool) {
	a, ok := g.airports[code]
	return a, ok
}

// Edges returns a copy of the outgoing edges of code in route table order.
// Edges with a nil Destination are included.
func (g *Graph) Edges(code string) []models.Edge {
	return slices.Clone(g.routes[code])
}

// HasRoutes reports whether code has at least one outgoing edge.
func (g *Graph) HasRoutes(code string) bool {
	return len(g.routes[code]) > 0
}

// HasCity reports whether any indexed airport is located in cityKey.
func (g *Graph) HasCity(cityKey string) bool {
	_, ok := g.cities[cityKey]
	return ok
}

// CityAirports returns the codes of the airports located in cityKey, in
// airport table order.
func (g *Graph) CityAirports(cityKey string) []string {
	return slices.Clone(g.cities[cityKey])
}

// IsHub reports whether at least one airport of cityKey has outgoing routes.
func (g *Graph) IsHub(cityKey string) bool {
	for _, code := range g.cities[cityKey] {
		if g.HasRoutes(code) {
			return true
		}
	}
	return false
}

// Cities returns every indexed city key, sorted.
func (g *Graph) Cities() []string {
	keys := make([]string, 0, len(g.cities))
	for k := range g.cities {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
