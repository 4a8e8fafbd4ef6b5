package pathfinder_test

import (
	"fmt"

	"github.com/gewnthar/flightpath/pathfinder"
	"github.com/gewnthar/flightpath/routegraph"
)

// ExampleFindItinerary finds a two-flight connection through Paris.
func ExampleFindItinerary() {
	airports := [][]string{
		{"507", "Heathrow", "London", "United Kingdom", "LHR", "EGLL", "51.4706", "-0.461941", "83"},
		{"1382", "Charles de Gaulle", "Paris", "France", "CDG", "LFPG", "49.012779", "2.55", "392"},
		{"248", "Kotoka", "Accra", "Ghana", "ACC", "DGAA", "5.605186", "-0.166786", "205"},
	}
	routes := [][]string{
		{"AF", "137", "LHR", "507", "CDG", "1382", "", "0"},
		{"AF", "137", "CDG", "1382", "ACC", "248", "", "1"},
	}
	g, err := routegraph.Build(airports, routes)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	it, err := pathfinder.FindItinerary(g, "London, United Kingdom", "Accra, Ghana")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, leg := range it.Legs {
		fmt.Printf("%s From %s To %s %d Stops.\n", leg.Airline, leg.Origin, leg.Destination, leg.Stops)
	}
	fmt.Println("flights:", it.TotalFlights, "stops:", it.TotalStops)
	// Output:
	// AF From LHR To CDG 0 Stops.
	// AF From CDG To ACC 1 Stops.
	// flights: 2 stops: 1
}
