// Package game holds the state-transition machine for a letter-drop game.
// GameState is an immutable value: Transition never mutates its input, it
// returns a fresh state. That discipline is what makes snapshotting (for
// step-rewind features in consumers) and equality-based testing work.
package game

import (
	"github.com/domino14/letterfall/grid"
	"github.com/domino14/letterfall/lettergen"
)

type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusProcessing
	StatusGameOver
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "IDLE"
	case StatusPlaying:
		return "PLAYING"
	case StatusProcessing:
		return "PROCESSING"
	case StatusGameOver:
		return "GAME_OVER"
	}
	return "UNKNOWN"
}

type Mode string

const (
	ModeNone    Mode = ""
	ModeClassic Mode = "classic"
	ModeClear   Mode = "clear"
)

// MaxWordHistory caps the made-words list.
const MaxWordHistory = 20

// GameState is one snapshot of a game. Treat it as read-only; every change
// goes through Rules.Transition.
type GameState struct {
	Grid  grid.Grid
	Queue []lettergen.LetterTile
	Score int
	// MadeWords is most-recent-first, at most MaxWordHistory entries.
	MadeWords []string
	Status    Status
	Mode      Mode
	// TargetIndices are the starting positions of mode-placed blocks, for
	// clear-mode win detection.
	TargetIndices []int
}

// LettersRemaining returns the number of queued tiles not yet dropped.
func (s GameState) LettersRemaining() int {
	return len(s.Queue)
}

// NextTile returns the head of the queue without consuming it.
func (s GameState) NextTile() (lettergen.LetterTile, bool) {
	if len(s.Queue) == 0 {
		return lettergen.LetterTile{}, false
	}
	return s.Queue[0], true
}

// ClearModeWon reports whether every mode-placed block has been cleared.
// Initial blocks keep their flag through gravity moves, so we scan for the
// flag rather than the original indices.
func ClearModeWon(g grid.Grid) bool {
	for i := 0; i < g.Size(); i++ {
		if c := g.At(i); c != nil && c.Initial {
			return false
		}
	}
	return true
}
