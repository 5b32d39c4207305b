package game

import (
	"testing"

	"github.com/matryer/is"

	"github.com/domino14/letterfall/grid"
)

func TestClearModeInitializer(t *testing.T) {
	is := is.New(t)
	ci := NewClearModeInitializer(6, 7, 2)
	g, targets := ci.PopulateInitialGrid()

	is.Equal(len(targets), 14)
	is.Equal(g.OccupiedCount(), 14)
	for _, idx := range targets {
		c := g.At(idx)
		is.True(c != nil)
		is.True(c.Initial)
		is.True(c.Char >= 'A' && c.Char <= 'Z')
		row, _ := grid.RowCol(idx, 7)
		is.True(row >= 4) // blocks sit in the bottom two rows
	}
}

func TestClearModeStartGame(t *testing.T) {
	is := is.New(t)
	r := testRules("CATS")
	r.RegisterInitializer(ModeClear, NewClearModeInitializer(6, 7, 2))

	st := r.Transition(r.InitialState(), StartGame{Mode: ModeClear})
	is.Equal(st.Mode, ModeClear)
	is.Equal(st.Status, StatusPlaying)
	is.Equal(len(st.TargetIndices), 14)
	is.Equal(st.Grid.OccupiedCount(), 14)
}

func TestClearModeWon(t *testing.T) {
	is := is.New(t)
	g := grid.NewGrid(6, 7)
	is.True(ClearModeWon(g))

	g = g.WithCell(35, &grid.Cell{Char: 'A', ID: "init-0", Initial: true})
	is.True(!ClearModeWon(g))

	// non-initial cells don't block the win
	g2 := grid.NewGrid(6, 7).WithCell(35, &grid.Cell{Char: 'A', ID: "tile-0"})
	is.True(ClearModeWon(g2))
}

func TestClearModeWonSurvivesGravityMoves(t *testing.T) {
	is := is.New(t)
	r := testRules("AB")
	r.RegisterInitializer(ModeClear, NewClearModeInitializer(6, 7, 1))
	st := r.Transition(r.InitialState(), StartGame{Mode: ModeClear})

	// clear one block; the rest keep their Initial flag through gravity
	st = r.Transition(st, RemoveWords{Words: []WordRemoval{
		{Word: "XXX", Indices: st.TargetIndices[:1]},
	}})
	st = r.Transition(st, ApplyGravity{})
	is.True(!ClearModeWon(st.Grid))

	var remaining []int
	for i := 0; i < st.Grid.Size(); i++ {
		if c := st.Grid.At(i); c != nil && c.Initial {
			remaining = append(remaining, i)
		}
	}
	st = r.Transition(st, RemoveWords{Words: []WordRemoval{
		{Word: "XXX", Indices: remaining},
	}})
	is.True(ClearModeWon(st.Grid))
}
