package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadQuery(t *testing.T) {
	q, err := ReadQuery(strings.NewReader("Accra, Ghana\r\n\nLondon,  United Kingdom\nignored\n"))
	require.NoError(t, err)
	assert.Equal(t, Query{Source: "Accra, Ghana", Destination: "London, United Kingdom"}, q)
}

func TestReadQuery_Malformed(t *testing.T) {
	_, err := ReadQuery(strings.NewReader("Accra, Ghana\n"))
	assert.ErrorIs(t, err, ErrMalformedQuery)

	_, err = ReadQuery(strings.NewReader(""))
	assert.ErrorIs(t, err, ErrMalformedQuery)
}

func TestReadQueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "accra_london.txt")
	require.NoError(t, os.WriteFile(path, []byte("Accra, Ghana\nLondon, United Kingdom\n"), 0o644))

	q, err := ReadQueryFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Accra, Ghana", q.Source)

	_, err = ReadQueryFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}
