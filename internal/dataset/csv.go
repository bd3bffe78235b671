package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// ReadCSV reads a raw grid from CSV input. Rows are allowed to have varying
// lengths; blank lines are dropped so row indices in the Layout refer to
// non-empty lines only.
func ReadCSV(r io.Reader) (Grid, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	grid := make(Grid, 0, len(records))
	for _, record := range records {
		if isBlankRow(record) {
			continue
		}
		grid = append(grid, record)
	}
	return grid, nil
}

// LoadFile reads a CSV file and transforms it into datasets using layout.
func LoadFile(path string, layout Layout) ([]Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset file: %w", err)
	}
	defer f.Close()

	grid, err := ReadCSV(f)
	if err != nil {
		return nil, err
	}
	return FromGrid(grid, layout)
}

func isBlankRow(record []string) bool {
	for _, cell := range record {
		if cell != "" {
			return false
		}
	}
	return true
}
