// dataset/query.go
package dataset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gewnthar/flightpath/utils"
)

// ErrMalformedQuery is returned when a query does not hold two city keys.
var ErrMalformedQuery = errors.New("query must hold a source and a destination city")

// Query is a source/destination pair of city keys.
type Query struct {
	Source      string
	Destination string
}

// ReadQuery parses a query: the first non-blank line is the source city key,
// the second the destination, both in "City, Country" form.
func ReadQuery(r io.Reader) (Query, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() && len(lines) < 2 {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, utils.NormalizeCityKey(line))
	}
	if err := sc.Err(); err != nil {
		return Query{}, fmt.Errorf("failed to read query: %w", err)
	}
	if len(lines) < 2 {
		return Query{}, fmt.Errorf("%w: got %d line(s)", ErrMalformedQuery, len(lines))
	}
	return Query{Source: lines[0], Destination: lines[1]}, nil
}

// ReadQueryFile reads a query from path.
func ReadQueryFile(path string) (Query, error) {
	f, err := os.Open(path)
	if err != nil {
		return Query{}, fmt.Errorf("failed to open query file %s: %w", path, err)
	}
	defer f.Close()

	q, err := ReadQuery(f)
	if err != nil {
		return Query{}, fmt.Errorf("%s: %w", path, err)
	}
	return q, nil
}
