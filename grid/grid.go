// Package grid holds the playing field for a letter-drop game: a fixed
// rows×columns arrangement of cells addressed by linear index
// (row*columns + col). A Grid is a value; mutating operations return a new
// Grid and never touch the receiver's backing storage, which is what makes
// snapshot/rewind of game states safe.
package grid

import (
	"fmt"
	"strings"
)

type Direction uint8

const (
	Horizontal Direction = iota
	Vertical
)

func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	} else if d == Vertical {
		return "vertical"
	}
	return "none"
}

// A DirectionSet is a bitmask of directions currently holding a cell pending.
type DirectionSet uint8

func (ds DirectionSet) Has(d Direction) bool {
	return ds&(1<<d) != 0
}

func (ds DirectionSet) With(d Direction) DirectionSet {
	return ds | (1 << d)
}

func (ds DirectionSet) Without(d Direction) DirectionSet {
	return ds &^ (1 << d)
}

// A Cell is the occupant of one grid position. Cells are treated as
// immutable once placed in a Grid; transitions that change a cell replace it
// with a fresh copy.
type Cell struct {
	// Char is a single uppercase letter.
	Char rune
	// ID is a stable tile identity; it survives gravity moves.
	ID      string
	Matched bool
	// PendingDirs holds the directions with a live grace period on this
	// cell. The cell is pending iff the set is non-empty.
	PendingDirs DirectionSet
	// PendingResetCount is bumped each time a pending timer restarts while
	// the cell is already pending; presentation layers key re-triggered
	// animations off it.
	PendingResetCount int
	// Initial marks cells pre-placed by a game mode at start.
	Initial bool
}

func (c Cell) Pending() bool {
	return c.PendingDirs != 0
}

func (c Cell) String() string {
	return fmt.Sprintf("<%c (%s)>", c.Char, c.ID)
}

// Grid is the board. The zero value is unusable; create one with NewGrid.
type Grid struct {
	cells []*Cell
	rows  int
	cols  int
}

func NewGrid(rows, cols int) Grid {
	return Grid{
		cells: make([]*Cell, rows*cols),
		rows:  rows,
		cols:  cols,
	}
}

func (g Grid) Rows() int { return g.rows }
func (g Grid) Cols() int { return g.cols }
func (g Grid) Size() int { return len(g.cells) }

// At returns the cell at the given linear index, or nil if the position is
// empty or the index is out of range.
func (g Grid) At(idx int) *Cell {
	if idx < 0 || idx >= len(g.cells) {
		return nil
	}
	return g.cells[idx]
}

func (g Grid) Occupied(idx int) bool {
	return g.At(idx) != nil
}

// OccupiedCount returns the number of non-empty positions.
func (g Grid) OccupiedCount() int {
	n := 0
	for _, c := range g.cells {
		if c != nil {
			n++
		}
	}
	return n
}

// WithCell returns a copy of the grid with position idx holding cell (nil
// empties the position). Out-of-range indices return the grid unchanged.
func (g Grid) WithCell(idx int, cell *Cell) Grid {
	if idx < 0 || idx >= len(g.cells) {
		return g
	}
	cp := g.copyCells()
	cp[idx] = cell
	return Grid{cells: cp, rows: g.rows, cols: g.cols}
}

// WithCells applies several placements in one copy. Out-of-range indices in
// the map are skipped.
func (g Grid) WithCells(placements map[int]*Cell) Grid {
	cp := g.copyCells()
	for idx, cell := range placements {
		if idx < 0 || idx >= len(cp) {
			continue
		}
		cp[idx] = cell
	}
	return Grid{cells: cp, rows: g.rows, cols: g.cols}
}

func (g Grid) copyCells() []*Cell {
	cp := make([]*Cell, len(g.cells))
	copy(cp, g.cells)
	return cp
}

// Equal reports whether two grids have the same dimensions and the same
// cell values at every position.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		a, b := g.cells[i], other.cells[i]
		if (a == nil) != (b == nil) {
			return false
		}
		if a != nil && *a != *b {
			return false
		}
	}
	return true
}

// ToDisplayText returns a plain-text rendering of the grid, suitable for
// the console.
func (g Grid) ToDisplayText() string {
	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < g.cols; c++ {
		fmt.Fprintf(&sb, " %d", c)
	}
	sb.WriteString("\n")
	for r := 0; r < g.rows; r++ {
		fmt.Fprintf(&sb, "%2d|", r)
		for c := 0; c < g.cols; c++ {
			cell := g.cells[r*g.cols+c]
			if cell == nil {
				sb.WriteString(" .")
			} else if cell.Matched {
				fmt.Fprintf(&sb, " %c*", cell.Char)
			} else {
				fmt.Fprintf(&sb, " %c", cell.Char)
			}
		}
		sb.WriteString("|\n")
	}
	return sb.String()
}
