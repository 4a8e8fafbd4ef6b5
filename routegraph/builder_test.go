package routegraph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gewnthar/flightpath/routegraph"
)

func airportRecord(id, city, country, code, lat, lon string) []string {
	return []string{id, code + " Airport", city, country, code, "X" + code, lat, lon, "0", "0", "E", "Europe/London", "airport", "OurAirports"}
}

func routeRecord(airline, src, dst, stops string) []string {
	return []string{airline, "1", src, "10", dst, "20", "", stops, "738"}
}

func sampleAirports() [][]string {
	return [][]string{
		airportRecord("507", "London", "United Kingdom", "LHR", "51.4706", "-0.461941"),
		airportRecord("502", "London", "United Kingdom", "LGW", "51.148102", "-0.190278"),
		airportRecord("248", "Accra", "Ghana", "ACC", "5.605186", "-0.166786"),
		airportRecord("1382", "Paris", "France", "CDG", "49.012779", "2.55"),
		airportRecord("9999", "Nowhere", "Atlantis", `\N`, "1", "1"),
	}
}

func TestBuild_Indexes(t *testing.T) {
	routes := [][]string{
		routeRecord("BA", "LHR", "ACC", "0"),
		routeRecord("AF", "LHR", "CDG", "0"),
		routeRecord("AF", "CDG", "ACC", "1"),
	}
	g, err := routegraph.Build(sampleAirports(), routes)
	require.NoError(t, err)

	assert.Equal(t, []string{"LHR", "LGW"}, g.CityAirports("London, United Kingdom"))
	assert.Equal(t, []string{"ACC"}, g.CityAirports("Accra, Ghana"))

	lhr, ok := g.Airport("LHR")
	require.True(t, ok)
	assert.Equal(t, "London, United Kingdom", lhr.CityKey)
	assert.InDelta(t, 51.4706, lhr.Latitude, 1e-9)

	edges := g.Edges("LHR")
	require.Len(t, edges, 2)
	assert.Equal(t, "BA", edges[0].Airline)
	assert.Equal(t, "ACC", edges[0].Destination.Code)
	assert.Equal(t, "AF", edges[1].Airline)
	assert.Equal(t, "CDG", edges[1].Destination.Code)

	cdg := g.Edges("CDG")
	require.Len(t, cdg, 1)
	assert.Equal(t, 1, cdg[0].Stops)

	assert.True(t, g.IsHub("London, United Kingdom"))
	assert.False(t, g.IsHub("Accra, Ghana"))
	assert.False(t, g.HasRoutes("LGW"))

	st := g.Stats()
	assert.Equal(t, 4, st.Airports)
	assert.Equal(t, 3, st.Cities)
	assert.Equal(t, 3, st.Routes)
	assert.Equal(t, 2, st.SourceAirports)
	assert.Equal(t, 1, st.SkippedAirports)
}

func TestBuild_InvalidCodeNeverIndexed(t *testing.T) {
	g, err := routegraph.Build(sampleAirports(), [][]string{routeRecord("XX", "LHR", `\N`, "0")})
	require.NoError(t, err)

	_, ok := g.Airport(`\N`)
	assert.False(t, ok)
	assert.False(t, g.HasCity("Nowhere, Atlantis"))
	assert.NotContains(t, g.Cities(), "Nowhere, Atlantis")
}

func TestBuild_DanglingDestinationKept(t *testing.T) {
	routes := [][]string{
		routeRecord("ZZ", "LHR", "QQQ", "0"),
		routeRecord("BA", "LHR", "ACC", "0"),
	}
	g, err := routegraph.Build(sampleAirports(), routes)
	require.NoError(t, err)

	edges := g.Edges("LHR")
	require.Len(t, edges, 2)
	assert.Nil(t, edges[0].Destination)
	assert.False(t, edges[0].Valid())
	assert.Equal(t, "ZZ", edges[0].Airline)
	assert.True(t, edges[1].Valid())
	assert.Equal(t, 1, g.Stats().DanglingRoutes)
}

func TestBuild_UnknownSourceDropped(t *testing.T) {
	g, err := routegraph.Build(sampleAirports(), [][]string{routeRecord("ZZ", "QQQ", "ACC", "0")})
	require.NoError(t, err)

	assert.False(t, g.HasRoutes("QQQ"))
	assert.Equal(t, 1, g.Stats().UnknownSourceRoutes)
	assert.Zero(t, g.Stats().Routes)
}

func TestBuild_EdgesAreCopies(t *testing.T) {
	g, err := routegraph.Build(sampleAirports(), [][]string{routeRecord("BA", "LHR", "ACC", "0")})
	require.NoError(t, err)

	edges := g.Edges("LHR")
	edges[0].Airline = "mutated"
	assert.Equal(t, "BA", g.Edges("LHR")[0].Airline)
}

func TestBuild_DataFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		airports [][]string
		routes   [][]string
		table    string
		row      int
		wrapped  error
	}{
		{
			name:     "short airport row",
			airports: [][]string{sampleAirports()[0], {"1", "Short", "Accra", "Ghana", "ACC"}},
			table:    routegraph.TableAirports,
			row:      2,
			wrapped:  routegraph.ErrShortRow,
		},
		{
			name:     "latitude not a number",
			airports: [][]string{airportRecord("1", "Accra", "Ghana", "ACC", "north", "0")},
			table:    routegraph.TableAirports,
			row:      1,
		},
		{
			name:     "duplicate code",
			airports: [][]string{sampleAirports()[0], airportRecord("2", "Elsewhere", "United Kingdom", "LHR", "1", "1")},
			table:    routegraph.TableAirports,
			row:      2,
			wrapped:  routegraph.ErrDuplicateCode,
		},
		{
			name:     "stops not a number",
			airports: sampleAirports(),
			routes:   [][]string{routeRecord("BA", "LHR", "ACC", "0"), routeRecord("BA", "LHR", "ACC", "many")},
			table:    routegraph.TableRoutes,
			row:      2,
		},
		{
			name:     "short route row",
			airports: sampleAirports(),
			routes:   [][]string{{"BA", "1", "LHR"}},
			table:    routegraph.TableRoutes,
			row:      1,
			wrapped:  routegraph.ErrShortRow,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := routegraph.Build(tt.airports, tt.routes)
			require.Error(t, err)
			assert.Nil(t, g)
			assert.True(t, errors.Is(err, routegraph.ErrDataFormat))

			var dfe *routegraph.DataFormatError
			require.True(t, errors.As(err, &dfe))
			assert.Equal(t, tt.table, dfe.Table)
			assert.Equal(t, tt.row, dfe.Row)
			if tt.wrapped != nil {
				assert.ErrorIs(t, err, tt.wrapped)
			}
		})
	}
}

func TestDecodeAirports_ExtraColumnsIgnored(t *testing.T) {
	rows, err := routegraph.DecodeAirports(sampleAirports()[:1])
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "LHR", rows[0].IATA)
	assert.Equal(t, "XLHR", rows[0].ICAO)
	assert.Equal(t, int64(1), rows[0].Seq)
}
