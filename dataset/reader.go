// dataset/reader.go
package dataset

import (
	"crypto/sha256"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
)

// ReadRecords splits comma-delimited rows into fields. Fields may be double
// quoted and may then contain commas. Rows may have any number of fields;
// width checks belong to the row decoder. Blank lines are skipped.
func ReadRecords(r io.Reader) ([][]string, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = false

	var records [][]string
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return records, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record %d: %w", len(records)+1, err)
		}
		records = append(records, rec)
	}
}

// File is the content of one tabular file.
type File struct {
	Path    string
	Records [][]string
	SHA256  string
}

// ReadRecordsFile reads every record of the file at path.
func ReadRecordsFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	records, err := ReadRecords(io.TeeReader(f, h))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return &File{Path: path, Records: records, SHA256: hex.EncodeToString(h.Sum(nil))}, nil
}
