package game

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/domino14/letterfall/grid"
	"github.com/domino14/letterfall/lettergen"
	"github.com/domino14/letterfall/scoring"
)

// A ModeInitializer builds the starting grid for a non-classic game mode
// and returns the indices of the blocks a player must clear to win.
type ModeInitializer interface {
	PopulateInitialGrid() (grid.Grid, []int)
}

// Rules encapsulates the instantiated objects needed to run games of one
// configuration: dimensions, letter budget, the scoring policy, and the
// per-mode grid initializers. Rules itself carries no game state.
type Rules struct {
	rows         int
	cols         int
	letterCount  int
	scoring      scoring.Policy
	initializers map[Mode]ModeInitializer
	// letterFn generates the drop queue; tests pin it to fixed sequences.
	letterFn func(count int) []lettergen.LetterTile
}

func NewRules(rows, cols, letterCount int, policy scoring.Policy) *Rules {
	if policy == nil {
		policy = scoring.LengthQuadratic
	}
	return &Rules{
		rows:         rows,
		cols:         cols,
		letterCount:  letterCount,
		scoring:      policy,
		initializers: map[Mode]ModeInitializer{},
		letterFn:     lettergen.GenerateLetterSequence,
	}
}

func (r *Rules) Rows() int { return r.rows }

func (r *Rules) Cols() int { return r.cols }

func (r *Rules) LetterCount() int { return r.letterCount }

func (r *Rules) Scoring() scoring.Policy { return r.scoring }

// RegisterInitializer installs the grid initializer for a mode.
func (r *Rules) RegisterInitializer(mode Mode, init ModeInitializer) {
	r.initializers[mode] = init
}

// SetLetterFunc overrides queue generation. Used by tests.
func (r *Rules) SetLetterFunc(fn func(count int) []lettergen.LetterTile) {
	r.letterFn = fn
}

// InitialState is the canonical pre-game state.
func (r *Rules) InitialState() GameState {
	return GameState{
		Grid:   grid.NewGrid(r.rows, r.cols),
		Status: StatusIdle,
		Mode:   ModeNone,
	}
}

// Transition applies one action to a state and returns the resulting
// state. The input state is never mutated. Unrecognized actions return the
// input unchanged.
func (r *Rules) Transition(st GameState, action Action) GameState {
	switch a := action.(type) {
	case StartGame:
		return r.startGame(a)
	case DropLetter:
		return r.dropLetter(st, a)
	case SetPending:
		return r.setPending(st, a)
	case ClearPending:
		return r.clearPending(st, a)
	case SetMatchedIndices:
		return r.setMatched(st, a)
	case RemoveWords:
		return r.removeWords(st, a)
	case ApplyGravity:
		return r.applyGravity(st)
	case EndGame:
		st.Status = StatusGameOver
		return st
	case Reset:
		return r.InitialState()
	default:
		log.Debug().Type("action", action).Msg("unrecognized action, ignoring")
		return st
	}
}

func (r *Rules) startGame(a StartGame) GameState {
	g := grid.NewGrid(r.rows, r.cols)
	var targets []int
	if init, ok := r.initializers[a.Mode]; ok {
		g, targets = init.PopulateInitialGrid()
	}
	return GameState{
		Grid:          g,
		Queue:         r.letterFn(r.letterCount),
		Status:        StatusPlaying,
		Mode:          a.Mode,
		TargetIndices: targets,
	}
}

func (r *Rules) dropLetter(st GameState, a DropLetter) GameState {
	if st.Status != StatusPlaying || len(st.Queue) == 0 {
		return st
	}
	if !grid.IsValidColumn(a.Column, r.cols) {
		return st
	}
	target := -1
	for row := r.rows - 1; row >= 0; row-- {
		idx := grid.Index(row, a.Column, r.cols)
		if !st.Grid.Occupied(idx) {
			target = idx
			break
		}
	}
	if target == -1 {
		// column is full
		return st
	}
	tile := st.Queue[0]
	st.Queue = append([]lettergen.LetterTile(nil), st.Queue[1:]...)
	st.Grid = st.Grid.WithCell(target, &grid.Cell{Char: tile.Char, ID: tile.ID})
	if len(st.Queue) == 0 {
		st.Status = StatusGameOver
	}
	return st
}

func (r *Rules) setPending(st GameState, a SetPending) GameState {
	placements := map[int]*grid.Cell{}
	for _, idx := range a.Indices {
		c := st.Grid.At(idx)
		if c == nil {
			continue
		}
		nc := *c
		if nc.Pending() {
			nc.PendingResetCount++
		}
		nc.PendingDirs = nc.PendingDirs.With(a.Direction)
		placements[idx] = &nc
	}
	if len(placements) == 0 {
		return st
	}
	st.Grid = st.Grid.WithCells(placements)
	return st
}

func (r *Rules) clearPending(st GameState, a ClearPending) GameState {
	placements := map[int]*grid.Cell{}
	for _, idx := range a.Indices {
		c := st.Grid.At(idx)
		if c == nil {
			continue
		}
		nc := *c
		nc.PendingDirs = nc.PendingDirs.Without(a.Direction)
		if !nc.Pending() {
			nc.PendingResetCount = 0
		}
		placements[idx] = &nc
	}
	if len(placements) == 0 {
		return st
	}
	st.Grid = st.Grid.WithCells(placements)
	return st
}

func (r *Rules) setMatched(st GameState, a SetMatchedIndices) GameState {
	placements := map[int]*grid.Cell{}
	for _, idx := range a.Indices {
		c := st.Grid.At(idx)
		if c == nil {
			continue
		}
		nc := *c
		nc.Matched = true
		nc.PendingDirs = 0
		nc.PendingResetCount = 0
		placements[idx] = &nc
	}
	st.Grid = st.Grid.WithCells(placements)
	st.Status = StatusProcessing
	return st
}

func (r *Rules) removeWords(st GameState, a RemoveWords) GameState {
	placements := map[int]*grid.Cell{}
	history := append([]string(nil), st.MadeWords...)
	score := st.Score
	for _, w := range a.Words {
		score += r.scoring.WordScore(w.Word)
		history = append([]string{w.Word}, history...)
		for _, idx := range w.Indices {
			placements[idx] = nil
		}
	}
	st.Score = score
	st.MadeWords = lo.Slice(history, 0, MaxWordHistory)
	st.Grid = st.Grid.WithCells(placements)
	st.Status = StatusPlaying
	return st
}

// applyGravity compacts each column independently: occupied cells keep
// their top-to-bottom order and land bottom-aligned. Transient flags
// (matched, pending, reset counts) do not survive a gravity pass; the
// initial-block flag does.
func (r *Rules) applyGravity(st GameState) GameState {
	placements := map[int]*grid.Cell{}
	for col := 0; col < r.cols; col++ {
		var stack []*grid.Cell
		for row := 0; row < r.rows; row++ {
			if c := st.Grid.At(grid.Index(row, col, r.cols)); c != nil {
				stack = append(stack, c)
			}
		}
		for row := 0; row < r.rows; row++ {
			idx := grid.Index(row, col, r.cols)
			stackPos := row - (r.rows - len(stack))
			if stackPos < 0 {
				placements[idx] = nil
				continue
			}
			c := stack[stackPos]
			placements[idx] = &grid.Cell{
				Char:    c.Char,
				ID:      c.ID,
				Initial: c.Initial,
			}
		}
	}
	st.Grid = st.Grid.WithCells(placements)
	st.Status = StatusPlaying
	return st
}
