package grid

// Coordinate helpers for the flat cell layout. Malformed inputs return
// sentinel values (-1, or false) rather than errors, so callers can treat
// them as "not applicable" inline.

// Index converts a (row, col) pair to a linear cell index. It returns -1 if
// the column count is not positive, or if row/col are out of range.
func Index(row, col, columns int) int {
	if columns <= 0 || row < 0 || col < 0 || col >= columns {
		return -1
	}
	return row*columns + col
}

// RowCol converts a linear cell index back to a (row, col) pair, or (-1, -1)
// for malformed inputs.
func RowCol(index, columns int) (int, int) {
	if columns <= 0 || index < 0 {
		return -1, -1
	}
	return index / columns, index % columns
}

// IsValidColumn reports whether col names a real column.
func IsValidColumn(col, columns int) bool {
	return columns > 0 && col >= 0 && col < columns
}
