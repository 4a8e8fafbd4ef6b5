package routegraph

import (
	"fmt"
	"strings"

	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/utils"
)

// Build decodes raw airport and route records and indexes them. Records are
// field slices in the column order of AirportColumns and RouteColumns.
func Build(airportRecords, routeRecords [][]string) (*Graph, error) {
	airports, err := DecodeAirports(airportRecords)
	if err != nil {
		return nil, err
	}
	routes, err := DecodeRoutes(routeRecords)
	if err != nil {
		return nil, err
	}
	return FromRows(airports, routes)
}

// FromRows indexes already typed rows. Row order matters: it fixes the order
// of city airports and outgoing edges and therefore search tie-breaking.
func FromRows(airports []models.AirportRow, routes []models.RouteRow) (*Graph, error) {
	g := &Graph{
		airports: make(map[string]models.Airport, len(airports)),
		routes:   make(map[string][]models.Edge),
		cities:   make(map[string][]string),
	}

	for i, row := range airports {
		if !utils.IsValidIATACode(row.IATA) {
			g.stats.SkippedAirports++
			continue
		}
		code := strings.TrimSpace(row.IATA)
		if _, dup := g.airports[code]; dup {
			return nil, &DataFormatError{
				Table: TableAirports,
				Row:   i + 1,
				Err:   fmt.Errorf("%w: %s", ErrDuplicateCode, code),
			}
		}
		cityKey := utils.CityKey(row.City, row.Country)
		g.airports[code] = models.Airport{
			Code:      code,
			ID:        row.ID,
			Name:      row.Name,
			City:      row.City,
			Country:   row.Country,
			CityKey:   cityKey,
			Latitude:  row.Latitude,
			Longitude: row.Longitude,
			Altitude:  row.Altitude,
		}
		g.cities[cityKey] = append(g.cities[cityKey], code)
	}

	for _, row := range routes {
		src := strings.TrimSpace(row.Source)
		if _, ok := g.airports[src]; !ok {
			g.stats.UnknownSourceRoutes++
			continue
		}
		edge := models.Edge{Airline: row.Airline, Stops: row.Stops}
		if dst, ok := g.airports[strings.TrimSpace(row.Destination)]; ok {
			// each edge carries its own copy of the destination
			edge.Destination = &dst
		} else {
			g.stats.DanglingRoutes++
		}
		g.routes[src] = append(g.routes[src], edge)
		g.stats.Routes++
	}

	g.stats.Airports = len(g.airports)
	g.stats.Cities = len(g.cities)
	g.stats.SourceAirports = len(g.routes)
	return g, nil
}
