package routegraph

import (
	"errors"
	"fmt"
)

// ErrDataFormat matches every *DataFormatError via errors.Is.
var ErrDataFormat = errors.New("routegraph: malformed data")

// ErrShortRow is wrapped when a record has fewer fields than the table needs.
var ErrShortRow = errors.New("too few fields")

// ErrDuplicateCode is wrapped when two airport rows carry the same IATA code.
var ErrDuplicateCode = errors.New("duplicate airport code")

// DataFormatError reports a malformed row of the airport or route table.
// Row is 1-based.
type DataFormatError struct {
	Table string
	Row   int
	Err   error
}

func (e *DataFormatError) Error() string {
	return fmt.Sprintf("routegraph: %s row %d: %v", e.Table, e.Row, e.Err)
}

func (e *DataFormatError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrDataFormat) match any DataFormatError.
func (e *DataFormatError) Is(target error) bool {
	return target == ErrDataFormat
}
