// report/writer.go
package report

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gewnthar/flightpath/models"
)

// NoSolution is written when no path connects the two cities.
const NoSolution = "No solution found"

// OutputSuffix is appended to the query name to form the report file name.
const OutputSuffix = "_output.txt"

// OutputPath returns the report file for a query name ("accra_london" →
// "accra_london_output.txt").
func OutputPath(queryName string) string {
	return queryName + OutputSuffix
}

// WriteItinerary renders one line per leg followed by the summary lines.
func WriteItinerary(w io.Writer, it *models.Itinerary) error {
	bw := bufio.NewWriter(w)
	for _, leg := range it.Legs {
		fmt.Fprintf(bw, "%s From %s To %s %d Stops.\n", leg.Airline, leg.Origin, leg.Destination, leg.Stops)
	}
	fmt.Fprintf(bw, "Total flights: %d\n", it.TotalFlights)
	fmt.Fprintf(bw, "Total additional stops: %d\n", it.TotalStops)
	fmt.Fprintf(bw, "Total distance: %d Km\n", it.RoundedDistance())
	fmt.Fprintf(bw, "Optimality criteria: %s\n", models.OptimalityCriteria)
	return bw.Flush()
}

// WriteNoSolution renders the report of a query without a path.
func WriteNoSolution(w io.Writer) error {
	_, err := fmt.Fprintln(w, NoSolution)
	return err
}

// WriteFile writes the report for it to path. A nil itinerary writes the
// no-solution report.
func WriteFile(path string, it *models.Itinerary) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("failed to close report %s: %w", path, cerr)
		}
	}()

	if it == nil {
		err = WriteNoSolution(f)
	} else {
		err = WriteItinerary(f, it)
	}
	if err != nil {
		return fmt.Errorf("failed to write report %s: %w", path, err)
	}
	return nil
}
