package pathfinder_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightpath/models"
	"github.com/gewnthar/flightpath/pathfinder"
)

func TestReconstruct_ThreeLegs(t *testing.T) {
	g := mustGraph(t, baseAirports(), []models.RouteRow{
		route("AF", "LHR", "CDG", 0),
		route("KL", "CDG", "AMS", 2),
		route("KL", "AMS", "ACC", 1),
	})
	res, err := pathfinder.Search(g, london, accra)
	require.NoError(t, err)

	got, err := pathfinder.Reconstruct(res)
	require.NoError(t, err)

	want := &models.Itinerary{
		Source:      london,
		Destination: accra,
		Legs: []models.Leg{
			{Airline: "AF", Origin: "LHR", Destination: "CDG", OriginCity: london, DestinationCity: paris, Stops: 0},
			{Airline: "KL", Origin: "CDG", Destination: "AMS", OriginCity: paris, DestinationCity: "Amsterdam, Netherlands", Stops: 2},
			{Airline: "KL", Origin: "AMS", Destination: "ACC", OriginCity: "Amsterdam, Netherlands", DestinationCity: accra, Stops: 1},
		},
		TotalFlights: 3,
		TotalStops:   3,
	}
	ignoreDistance := cmpopts.IgnoreFields(models.Leg{}, "DistanceKm")
	ignoreTotal := cmpopts.IgnoreFields(models.Itinerary{}, "TotalDistance")
	if diff := cmp.Diff(want, got, ignoreDistance, ignoreTotal); diff != "" {
		t.Errorf("Reconstruct() mismatch (-want +got):\n%s", diff)
	}

	var sum float64
	for _, leg := range got.Legs {
		sum += leg.DistanceKm
	}
	require.InDelta(t, got.TotalDistance, sum, 1e-6)
	require.Equal(t, int64(got.TotalDistance+0.5), got.RoundedDistance())
}

func TestReconstruct_NilResult(t *testing.T) {
	_, err := pathfinder.Reconstruct(nil)
	require.ErrorIs(t, err, pathfinder.ErrNoPath)
}
