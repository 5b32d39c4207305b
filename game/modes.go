package game

import (
	"fmt"

	"lukechampine.com/frand"

	"github.com/domino14/letterfall/grid"
	"github.com/domino14/letterfall/lettergen"
)

// ClearModeInitializer seeds the bottom rows of the grid with blocks the
// player has to clear. The blocks use weighted-random letters so they can
// participate in words.
type ClearModeInitializer struct {
	Rows      int
	Cols      int
	BlockRows int
	rng       lettergen.Source
}

func NewClearModeInitializer(rows, cols, blockRows int) *ClearModeInitializer {
	if blockRows >= rows {
		blockRows = rows - 1
	}
	return &ClearModeInitializer{
		Rows:      rows,
		Cols:      cols,
		BlockRows: blockRows,
		rng:       frand.New(),
	}
}

// PopulateInitialGrid builds the seeded grid and returns the indices of the
// placed blocks.
func (ci *ClearModeInitializer) PopulateInitialGrid() (grid.Grid, []int) {
	seq := lettergen.GenerateLetterSequenceWithSource(ci.BlockRows*ci.Cols, ci.rng)
	placements := map[int]*grid.Cell{}
	var targets []int
	n := 0
	for row := ci.Rows - ci.BlockRows; row < ci.Rows; row++ {
		for col := 0; col < ci.Cols; col++ {
			idx := grid.Index(row, col, ci.Cols)
			placements[idx] = &grid.Cell{
				Char:    seq[n].Char,
				ID:      fmt.Sprintf("init-%d", n),
				Initial: true,
			}
			targets = append(targets, idx)
			n++
		}
	}
	g := grid.NewGrid(ci.Rows, ci.Cols).WithCells(placements)
	return g, targets
}
