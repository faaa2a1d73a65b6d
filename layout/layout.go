// Package layout converts between the two ways of numbering the cells of a
// partially filled grid.
//
// Grouped choices such as radio buttons and check boxes are built row by row
// but read column by column. For n items in a grid of rows × cols, the
// rows*cols - n empty cells all sit at the right end of the last row:
//
//	row-major (build order)   column-major (reading order)
//	 0  1  2  3                0  3  6  8
//	 4  5  6  7                1  4  7  9
//	 8  9                      2  5
//
// ColumnMajorToRowMajor maps a reading-order index to the position the item
// was built at; RowMajorToColumnMajor goes the other way.
package layout

import (
	"errors"
	"fmt"
)

// ErrInvalidIndex is returned when an index or grid geometry cannot
// describe a populated cell.
var ErrInvalidIndex = errors.New("layout: invalid index")

// ColumnMajorToRowMajor converts index, counted column by column over a grid
// of numRows × numCols holding n items, into the equivalent row-major index.
//
// The grid splits into a full left part of numRows × (numCols - numEmpty)
// cells and a ragged right part of (numRows - 1) × numEmpty cells. Reading
// order fills the full part first.
func ColumnMajorToRowMajor(index, n, numRows, numCols int) (int, error) {
	numEmpty, err := check(index, n, numRows, numCols)
	if err != nil {
		return 0, err
	}

	fullCols := numCols - numEmpty
	fullCells := numRows * fullCols

	var row, col int
	if index < fullCells {
		row = index % numRows
		col = index / numRows
	} else {
		offset := index - fullCells
		row = offset % (numRows - 1)
		col = fullCols + offset/(numRows-1)
	}
	return row*numCols + col, nil
}

// RowMajorToColumnMajor is the inverse of ColumnMajorToRowMajor.
func RowMajorToColumnMajor(index, n, numRows, numCols int) (int, error) {
	numEmpty, err := check(index, n, numRows, numCols)
	if err != nil {
		return 0, err
	}

	fullCols := numCols - numEmpty
	row := index / numCols
	col := index % numCols

	if col < fullCols {
		return col*numRows + row, nil
	}
	return numRows*fullCols + (col-fullCols)*(numRows-1) + row, nil
}

// GridShape returns the rows and columns a group of n items occupies when
// laid out over at most cols columns. The column count shrinks when there
// are fewer items than columns.
func GridShape(n, cols int) (rows, columns int) {
	if n <= 0 || cols <= 0 {
		return 0, 0
	}
	if cols > n {
		cols = n
	}
	rows = (n + cols - 1) / cols
	return rows, cols
}

// check validates the arguments shared by both conversions and returns the
// number of empty cells in the last row.
func check(index, n, numRows, numCols int) (int, error) {
	if numRows <= 0 || numCols <= 0 {
		return 0, fmt.Errorf("%w: grid %dx%d has no cells", ErrInvalidIndex, numRows, numCols)
	}
	if index < 0 || index >= n {
		return 0, fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidIndex, index, n)
	}
	numEmpty := numRows*numCols - n
	if numEmpty < 0 {
		return 0, fmt.Errorf("%w: %d items do not fit in a %dx%d grid", ErrInvalidIndex, n, numRows, numCols)
	}
	if numEmpty >= numCols {
		return 0, fmt.Errorf("%w: %d items leave the last row of a %dx%d grid empty", ErrInvalidIndex, n, numRows, numCols)
	}
	return numEmpty, nil
}
