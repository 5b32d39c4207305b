// Package matcher scans a grid snapshot for dictionary words. Scanning is
// strictly horizontal and vertical; there is no diagonal detection.
package matcher

import (
	"github.com/samber/lo"

	"github.com/domino14/letterfall/grid"
	"github.com/domino14/letterfall/lexicon"
)

// MinWordLength is the shortest run substring tested against the lexicon.
const MinWordLength = 3

// A Match is one dictionary word found on the grid. Positions are linear
// grid indices in scan order: left-to-right for horizontal matches,
// top-to-bottom for vertical ones.
type Match struct {
	Word      string
	Direction grid.Direction
	Positions []int
}

// Anchor returns the (row, col) of the match's first cell.
func (m Match) Anchor(columns int) (int, int) {
	if len(m.Positions) == 0 {
		return -1, -1
	}
	return grid.RowCol(m.Positions[0], columns)
}

// FindWords returns every word of length >= 3 readable along a row or
// column of the grid. Every run substring that is in the lexicon is
// reported independently, so nested words ("CAT" inside "CATS") each get
// their own match. A nil lexicon or an empty grid yields no matches.
func FindWords(g grid.Grid, lex lexicon.Lexicon) []Match {
	if lex == nil || g.OccupiedCount() == 0 {
		return nil
	}
	var matches []Match
	for row := 0; row < g.Rows(); row++ {
		line := make([]int, g.Cols())
		for col := 0; col < g.Cols(); col++ {
			line[col] = grid.Index(row, col, g.Cols())
		}
		matches = append(matches, scanLine(g, lex, line, grid.Horizontal)...)
	}
	for col := 0; col < g.Cols(); col++ {
		line := make([]int, g.Rows())
		for row := 0; row < g.Rows(); row++ {
			line[row] = grid.Index(row, col, g.Cols())
		}
		matches = append(matches, scanLine(g, lex, line, grid.Vertical)...)
	}
	return matches
}

// scanLine finds the maximal runs of occupied cells along one line of
// indices and tests every substring of each run.
func scanLine(g grid.Grid, lex lexicon.Lexicon, line []int, dir grid.Direction) []Match {
	var matches []Match
	runs := occupiedRuns(g, line)
	for _, run := range runs {
		matches = append(matches, runMatches(g, lex, run, dir)...)
	}
	return matches
}

// occupiedRuns splits a line into maximal contiguous stretches of occupied
// positions. A run ends at an empty cell or the line boundary.
func occupiedRuns(g grid.Grid, line []int) [][]int {
	var runs [][]int
	var current []int
	for _, idx := range line {
		if g.Occupied(idx) {
			current = append(current, idx)
			continue
		}
		if len(current) >= MinWordLength {
			runs = append(runs, current)
		}
		current = nil
	}
	if len(current) >= MinWordLength {
		runs = append(runs, current)
	}
	return runs
}

func runMatches(g grid.Grid, lex lexicon.Lexicon, run []int, dir grid.Direction) []Match {
	letters := lo.Map(run, func(idx int, _ int) rune {
		return g.At(idx).Char
	})
	var matches []Match
	for i := 0; i < len(run); i++ {
		for j := i + MinWordLength - 1; j < len(run); j++ {
			word := string(letters[i : j+1])
			if !lex.Contains(word) {
				continue
			}
			positions := make([]int, j-i+1)
			copy(positions, run[i:j+1])
			matches = append(matches, Match{
				Word:      word,
				Direction: dir,
				Positions: positions,
			})
		}
	}
	return matches
}
