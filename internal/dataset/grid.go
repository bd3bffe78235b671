package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Grid is a raw 2-D sheet of cells as read from the input file. Rows may be
// ragged; empty strings mark blank cells.
type Grid [][]string

// Layout describes where the datasets live inside a Grid: targets sit in a
// single row, numbers fill the rows below, and each dataset occupies every
// ColumnStep-th column (the columns in between are blank spacers).
type Layout struct {
	TargetRow    int
	DataStartRow int
	SetCount     int
	ColumnStep   int
}

// DefaultLayout matches the canonical input sheet: 8 sets A through H in
// every second column, targets in row 4, numbers from row 7 onwards
// (zero-based 3 and 6).
func DefaultLayout() Layout {
	return Layout{
		TargetRow:    3,
		DataStartRow: 6,
		SetCount:     8,
		ColumnStep:   2,
	}
}

func (l Layout) validate() error {
	if l.TargetRow < 0 || l.DataStartRow <= l.TargetRow || l.SetCount <= 0 || l.ColumnStep <= 0 {
		return ErrInvalidLayout
	}
	return nil
}

// FromGrid transforms a raw grid into datasets according to the layout.
// Dataset IDs are assigned alphabetically (A, B, C, ...) by column order.
// Blank cells below the data start row are skipped; a dataset with no
// numbers at all is returned with an empty pool so the caller can report it
// as unresolved rather than aborting the whole sheet.
func FromGrid(grid Grid, layout Layout) ([]Dataset, error) {
	if err := layout.validate(); err != nil {
		return nil, err
	}
	if len(grid) <= layout.DataStartRow {
		return nil, ErrGridTooSmall
	}

	datasets := make([]Dataset, 0, layout.SetCount)
	for i := 0; i < layout.SetCount; i++ {
		col := i * layout.ColumnStep
		id := setID(i)

		target, ok, err := parseCell(cellAt(grid, layout.TargetRow, col))
		if err != nil || !ok {
			return nil, fmt.Errorf("set %s: target cell at row %d column %d: %w", id, layout.TargetRow, col, ErrMalformedCell)
		}

		numbers := make([]float64, 0, len(grid)-layout.DataStartRow)
		for row := layout.DataStartRow; row < len(grid); row++ {
			value, ok, err := parseCell(cellAt(grid, row, col))
			if err != nil {
				return nil, fmt.Errorf("set %s: number cell at row %d column %d: %w", id, row, col, ErrMalformedCell)
			}
			if !ok {
				continue
			}
			numbers = append(numbers, value)
		}

		datasets = append(datasets, Dataset{ID: id, Target: target, Numbers: numbers})
	}

	return datasets, nil
}

// setID labels dataset columns A, B, ..., Z, AA, AB, ... like spreadsheet
// column headers.
func setID(index int) string {
	id := ""
	for index >= 0 {
		id = string(rune('A'+index%26)) + id
		index = index/26 - 1
	}
	return id
}

func cellAt(grid Grid, row, col int) string {
	if row >= len(grid) || col >= len(grid[row]) {
		return ""
	}
	return grid[row][col]
}

// parseCell parses a cell into a float. The second return reports whether
// the cell held anything at all; blanks and NaN markers are not errors.
func parseCell(raw string) (float64, bool, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return 0, false, nil
	}
	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, false, err
	}
	if math.IsNaN(value) {
		return 0, false, nil
	}
	return value, true, nil
}
