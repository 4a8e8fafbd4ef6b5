package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	airportsCSV = `1,"Goroka Airport","Goroka","Papua New Guinea","GKA","AYGA",-6.081689834590001,145.391998291,5282,10,"U","Pacific/Port_Moresby","airport","OurAirports"
507,"London Heathrow Airport","London","United Kingdom","LHR","EGLL",51.4706,-0.461941,83,0,"E","Europe/London","airport","OurAirports"
248,"Kotoka International Airport","Accra","Ghana","ACC","DGAA",5.605189800262451,-0.16678600013256073,205,0,"N","Africa/Accra","airport","OurAirports"
1382,"Charles de Gaulle International Airport","Paris","France","CDG","LFPG",49.012798,2.55,392,1,"E","Europe/Paris","airport","OurAirports"
`
	routesCSV = `AF,137,ACC,248,CDG,1382,,0,332
AF,137,CDG,1382,LHR,507,,0,320
BA,1355,LHR,507,ACC,248,,0,777
`
)

type fixture struct {
	dir, airports, routes string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	f := fixture{dir: dir, airports: filepath.Join(dir, "airports.csv"), routes: filepath.Join(dir, "routes.csv")}
	require.NoError(t, os.WriteFile(f.airports, []byte(airportsCSV), 0o644))
	require.NoError(t, os.WriteFile(f.routes, []byte(routesCSV), 0o644))
	return f
}

func (f fixture) query(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(f.dir, name)
	require.NoError(t, os.WriteFile(path+".txt", []byte(body), 0o644))
	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := New()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestFindWritesReport(t *testing.T) {
	f := newFixture(t)
	q := f.query(t, "accra-london", "Accra, Ghana\nLondon, United Kingdom\n")

	out, err := run(t, "find", q, "--airports", f.airports, "--routes", f.routes, "--print")
	require.NoError(t, err)

	report, err := os.ReadFile(q + "_output.txt")
	require.NoError(t, err)
	assert.Equal(t, out, string(report))
	assert.Contains(t, string(report), "AF From ACC To CDG 0 Stops.\n")
	assert.Contains(t, string(report), "AF From CDG To LHR 0 Stops.\n")
	assert.Contains(t, string(report), "Total flights: 2\n")
	assert.Contains(t, string(report), "Optimality criteria: flights\n")
}

func TestFindAcceptsTxtSuffix(t *testing.T) {
	f := newFixture(t)
	q := f.query(t, "london-accra", "London, United Kingdom\nAccra, Ghana\n")

	_, err := run(t, "find", q+".txt", "--airports", f.airports, "--routes", f.routes)
	require.NoError(t, err)
	assert.FileExists(t, q+"_output.txt")
}

func TestFindNoSolution(t *testing.T) {
	f := newFixture(t)
	q := f.query(t, "accra-goroka", "Accra, Ghana\nGoroka, Papua New Guinea\n")
	output := filepath.Join(f.dir, "custom.txt")

	_, err := run(t, "find", q, "--airports", f.airports, "--routes", f.routes, "-o", output)
	require.NoError(t, err)

	report, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "No solution found\n", string(report))
}

func TestFindFailures(t *testing.T) {
	f := newFixture(t)
	tests := []struct {
		name string
		args func() []string
	}{
		{"missing query file", func() []string {
			return []string{"find", filepath.Join(f.dir, "absent"), "--airports", f.airports, "--routes", f.routes}
		}},
		{"trivial query", func() []string {
			return []string{"find", f.query(t, "same", "Accra, Ghana\nAccra, Ghana\n"), "--airports", f.airports, "--routes", f.routes}
		}},
		{"unknown city", func() []string {
			return []string{"find", f.query(t, "unknown", "Accra, Ghana\nAtlantis, Ocean\n"), "--airports", f.airports, "--routes", f.routes}
		}},
		{"malformed query", func() []string {
			return []string{"find", f.query(t, "short", "Accra, Ghana\n"), "--airports", f.airports, "--routes", f.routes}
		}},
		{"missing table", func() []string {
			return []string{"find", f.query(t, "ok", "Accra, Ghana\nParis, France\n"), "--airports", filepath.Join(f.dir, "none.csv"), "--routes", f.routes}
		}},
		{"no arguments", func() []string { return []string{"find"} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.args()...)
			assert.Error(t, err)
		})
	}
}

func TestVersion(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "flightpath dev\n", out)
}
