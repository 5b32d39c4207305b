package game

import "github.com/domino14/letterfall/grid"

// An Action is a request to transition the game state. Concrete action
// structs are matched by type in Transition; anything unrecognized is a
// silent no-op, which keeps old consumers forward-compatible with new
// action sets.
type Action interface{}

// StartGame begins a fresh game in the given mode, generating the full
// letter queue and building the starting grid.
type StartGame struct {
	Mode Mode
}

// DropLetter consumes the head of the queue and places it in the lowest
// empty cell of the column. A full column or an empty queue leaves the
// state unchanged.
type DropLetter struct {
	Column int
}

// SetPending adds a direction to each target cell's pending set.
type SetPending struct {
	Indices   []int
	Direction grid.Direction
}

// ClearPending removes a direction from each target cell's pending set.
type ClearPending struct {
	Indices   []int
	Direction grid.Direction
}

// SetMatchedIndices marks cells matched, clears pending flags, and freezes
// drops by moving status to PROCESSING.
type SetMatchedIndices struct {
	Indices []int
}

// A WordRemoval names one matched word and the cells it occupies.
type WordRemoval struct {
	Word    string
	Indices []int
}

// RemoveWords scores and clears the given words, returning status to
// PLAYING.
type RemoveWords struct {
	Words []WordRemoval
}

// ApplyGravity compacts every column downward, stripping transient
// matched/pending flags.
type ApplyGravity struct{}

// EndGame forces GAME_OVER.
type EndGame struct{}

// Reset returns to the canonical initial state.
type Reset struct{}
