package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const airportsSample = `507,"London Heathrow Airport","London","United Kingdom","LHR","EGLL",51.4706,-0.461941,83,0,"E","Europe/London","airport","OurAirports"
1,"Goroka Airport","Goroka","Papua New Guinea","GKA","AYGA",-6.081689834590001,145.391998291,5282,10,"U","Pacific/Port_Moresby","airport","OurAirports"

5,"Strange, Quoted ""Name""","Somewhere","Nowhere",\N,\N,1,2,3
`

func TestReadRecords(t *testing.T) {
	records, err := ReadRecords(strings.NewReader(airportsSample))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "London", records[0][2])
	assert.Equal(t, "LHR", records[0][4])
	assert.Len(t, records[0], 14)

	assert.Equal(t, `Strange, Quoted "Name"`, records[2][1])
	assert.Equal(t, `\N`, records[2][4])
	assert.Len(t, records[2], 9)
}

func TestReadRecordsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "airports.dat")
	require.NoError(t, os.WriteFile(path, []byte(airportsSample), 0o644))

	f, err := ReadRecordsFile(path)
	require.NoError(t, err)
	assert.Len(t, f.Records, 3)
	assert.Len(t, f.SHA256, 64)

	_, err = ReadRecordsFile(filepath.Join(t.TempDir(), "missing.dat"))
	assert.Error(t, err)
}
