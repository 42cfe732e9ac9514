package presets

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"conway-life/pkg/sims/life"
)

// ParseMatrix reads a comma separated table of 0/1 values. Blank lines are
// skipped and whitespace around values is ignored.
func ParseMatrix(r io.Reader) ([][]uint8, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	var matrix [][]uint8
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %v", life.ErrMalformedPreset, err)
		}
		row := make([]uint8, len(record))
		for i, field := range record {
			switch strings.TrimSpace(field) {
			case "0":
			case "1":
				row[i] = 1
			default:
				return nil, fmt.Errorf("%w: line %d column %d: %q is not 0 or 1", life.ErrMalformedPreset, len(matrix)+1, i+1, field)
			}
		}
		matrix = append(matrix, row)
	}
	if err := life.ValidateMatrix(matrix); err != nil {
		return nil, err
	}
	return matrix, nil
}

// FormatMatrix writes matrix in the format accepted by ParseMatrix.
func FormatMatrix(w io.Writer, matrix [][]uint8) error {
	cw := csv.NewWriter(w)
	record := make([]string, 0)
	for _, row := range matrix {
		record = record[:0]
		for _, v := range row {
			if v != 0 {
				record = append(record, "1")
			} else {
				record = append(record, "0")
			}
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
