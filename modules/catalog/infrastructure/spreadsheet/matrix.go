package spreadsheet

import (
	"github.com/go-faster/errors"
	"github.com/xuri/excelize/v2"
)

// ErrBadShape is returned when a workbook does not carry the expected layout:
// three header rows (Theme, Subtheme, Category) and at least one data column
// next to the name column.
var ErrBadShape = errors.New("workbook must have 3 header rows and a name column followed by at least one data column")

const headerRows = 3

// Matrix is the in-memory form of an import workbook. Header slices and cell
// rows cover the data columns only (everything right of column A); values are
// raw and normalized by the importer.
type Matrix struct {
	Themes     []string
	Subthemes  []string
	Categories []string
	NameLabels []string
	Cells      [][]string
}

func (m *Matrix) Columns() int { return len(m.Themes) }

func (m *Matrix) Rows() int { return len(m.NameLabels) }

// ReadWorkbook loads the sheet into a Matrix. An empty sheet name selects the
// first sheet. Merged header cells are expanded so every covered column sees
// the label, matching how the source workbooks group columns under one theme
// or subtheme.
func ReadWorkbook(path, sheet string) (*Matrix, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open workbook")
	}
	defer f.Close()

	return readSheet(f, sheet)
}

func readSheet(f *excelize.File, sheet string) (*Matrix, error) {
	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read sheet")
	}
	if len(rows) < headerRows {
		return nil, ErrBadShape
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if width < 2 {
		return nil, ErrBadShape
	}

	// excelize trims trailing empty cells per row; pad to a rectangle so
	// column indexes line up across rows.
	grid := make([][]string, len(rows))
	for i, row := range rows {
		grid[i] = make([]string, width)
		copy(grid[i], row)
	}

	if err := expandMergedHeaders(f, sheet, grid); err != nil {
		return nil, err
	}

	m := &Matrix{
		Themes:     grid[0][1:],
		Subthemes:  grid[1][1:],
		Categories: grid[2][1:],
	}
	for _, row := range grid[headerRows:] {
		m.NameLabels = append(m.NameLabels, row[0])
		m.Cells = append(m.Cells, row[1:])
	}
	return m, nil
}

// expandMergedHeaders copies the value of each merged range intersecting the
// header rows into every covered cell. Only the top-left cell of a merge
// carries the value in the raw rows.
func expandMergedHeaders(f *excelize.File, sheet string, grid [][]string) error {
	merges, err := f.GetMergeCells(sheet)
	if err != nil {
		return errors.Wrap(err, "failed to read merged cells")
	}

	for _, merge := range merges {
		startCol, startRow, err := excelize.CellNameToCoordinates(merge.GetStartAxis())
		if err != nil {
			return errors.Wrap(err, "failed to parse merge range")
		}
		endCol, endRow, err := excelize.CellNameToCoordinates(merge.GetEndAxis())
		if err != nil {
			return errors.Wrap(err, "failed to parse merge range")
		}
		if startRow > headerRows {
			continue
		}

		value := merge.GetCellValue()
		for row := startRow; row <= min(endRow, headerRows); row++ {
			for col := startCol; col <= endCol; col++ {
				if row-1 < len(grid) && col-1 < len(grid[row-1]) {
					grid[row-1][col-1] = value
				}
			}
		}
	}
	return nil
}
