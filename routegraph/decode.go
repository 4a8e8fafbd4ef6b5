package routegraph

import (
	"errors"
	"fmt"
	"io"

	"github.com/jszwec/csvutil"

	"github.com/gewnthar/flightpath/models"
)

// Table names used in DataFormatError.
const (
	TableAirports = "airports"
	TableRoutes   = "routes"
)

// Column layouts of the two tables. Extra trailing columns are ignored.
var (
	AirportColumns = []string{"id", "name", "city", "country", "iata", "icao", "latitude", "longitude", "altitude"}
	RouteColumns   = []string{"airline", "airline_id", "source", "source_id", "destination", "destination_id", "codeshare", "stops"}
)

// recordReader feeds in-memory records to a csvutil.Decoder, rejecting short
// records and cutting long ones to the table width.
type recordReader struct {
	table   string
	records [][]string
	width   int
	next    int
}

func (r *recordReader) Read() ([]string, error) {
	if r.next >= len(r.records) {
		return nil, io.EOF
	}
	rec := r.records[r.next]
	r.next++
	if len(rec) < r.width {
		return nil, &DataFormatError{
			Table: r.table,
			Row:   r.next,
			Err:   fmt.Errorf("%w: got %d, want at least %d", ErrShortRow, len(rec), r.width),
		}
	}
	return rec[:r.width], nil
}

// DecodeAirports converts raw airport records into typed rows.
func DecodeAirports(records [][]string) ([]models.AirportRow, error) {
	rows := make([]models.AirportRow, 0, len(records))
	err := decodeAll(TableAirports, records, AirportColumns, func(d *csvutil.Decoder) error {
		var row models.AirportRow
		if err := d.Decode(&row); err != nil {
			return err
		}
		row.Seq = int64(len(rows) + 1)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DecodeRoutes converts raw route records into typed rows.
func DecodeRoutes(records [][]string) ([]models.RouteRow, error) {
	rows := make([]models.RouteRow, 0, len(records))
	err := decodeAll(TableRoutes, records, RouteColumns, func(d *csvutil.Decoder) error {
		var row models.RouteRow
		if err := d.Decode(&row); err != nil {
			return err
		}
		row.Seq = int64(len(rows) + 1)
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func decodeAll(table string, records [][]string, header []string, decodeOne func(*csvutil.Decoder) error) error {
	r := &recordReader{table: table, records: records, width: len(header)}
	dec, err := csvutil.NewDecoder(r, header...)
	if err != nil {
		return fmt.Errorf("routegraph: create %s decoder: %w", table, err)
	}
	for {
		err := decodeOne(dec)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			var dfe *DataFormatError
			if errors.As(err, &dfe) {
				return dfe
			}
			return &DataFormatError{Table: table, Row: r.next, Err: err}
		}
	}
}
