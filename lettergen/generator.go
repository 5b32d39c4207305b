// Package lettergen produces the weighted-random letter streams fed into the
// drop queue. Letters follow English frequency, with adjacency constraints:
// never three identical letters in a row, and never three vowels or three
// consonants in a row.
package lettergen

import (
	"errors"
	"fmt"

	"lukechampine.com/frand"
)

// ErrExhausted is returned by GenerateLetter once the generator has produced
// its configured number of letters. Callers are expected to consult
// RemainingCount rather than rely on this error for flow control.
var ErrExhausted = errors.New("letter generator exhausted")

// maxSampleAttempts bounds the rejection-sampling loop; past it we pick a
// valid letter directly so generation always terminates.
const maxSampleAttempts = 100

// A Source is the randomness the generator consumes. *frand.RNG satisfies
// it; tests substitute deterministic sequences.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// TileType tags a LetterTile's lifecycle stage.
type TileType string

const (
	TileQueued TileType = "letter"
	TileFilled TileType = "filled"
)

// A LetterTile is one queued letter awaiting placement.
type LetterTile struct {
	Char rune
	ID   string
	Type TileType
}

// Generator produces up to a fixed number of letters, remembering what it
// has generated so the adjacency constraints can look back at history.
type Generator struct {
	capacity int
	history  []rune
	rng      Source
}

func NewGenerator(capacity int) *Generator {
	return NewGeneratorWithSource(capacity, frand.New())
}

func NewGeneratorWithSource(capacity int, rng Source) *Generator {
	return &Generator{capacity: capacity, rng: rng}
}

// RemainingCount returns how many more letters this generator may produce.
func (g *Generator) RemainingCount() int {
	return g.capacity - len(g.history)
}

// GeneratedLetters returns a copy of the generated history. Mutating the
// result does not affect the generator.
func (g *Generator) GeneratedLetters() []rune {
	cp := make([]rune, len(g.history))
	copy(cp, g.history)
	return cp
}

// Reset clears the generated history.
func (g *Generator) Reset() {
	g.history = g.history[:0]
}

// GenerateLetter produces the next letter and appends it to the history. It
// returns ErrExhausted if the generator already produced its full capacity.
func (g *Generator) GenerateLetter() (rune, error) {
	if len(g.history) >= g.capacity {
		return 0, fmt.Errorf("%w: %d letters already generated", ErrExhausted, g.capacity)
	}
	var p1, p2 rune
	if n := len(g.history); n >= 2 {
		p1, p2 = g.history[n-1], g.history[n-2]
	} else if n == 1 {
		p1 = g.history[0]
	}
	letter := forceValidLetter(g.rng, p1, p2, len(g.history))
	g.history = append(g.history, letter)
	return letter, nil
}

// GenerateAllLetters generates letters until the full capacity exists, and
// returns a copy of the history.
func (g *Generator) GenerateAllLetters() ([]rune, error) {
	for g.RemainingCount() > 0 {
		if _, err := g.GenerateLetter(); err != nil {
			return nil, err
		}
	}
	return g.GeneratedLetters(), nil
}

// isValidLetter checks a candidate against the two letters generated before
// it; p1 is the immediate predecessor. With fewer than two predecessors
// every letter is valid.
func isValidLetter(candidate, p1, p2 rune, generated int) bool {
	if generated < 2 {
		return true
	}
	if candidate == p1 && candidate == p2 {
		return false
	}
	cv, v1, v2 := IsVowel(candidate), IsVowel(p1), IsVowel(p2)
	if cv && v1 && v2 {
		return false
	}
	if !cv && !v1 && !v2 {
		return false
	}
	return true
}

// forceValidLetter samples until a valid letter appears, up to
// maxSampleAttempts. Past the bound it falls back to a direct pick: a
// uniform vowel if a consonant run of 3 is imminent, otherwise a uniform
// consonant other than the immediate predecessor.
func forceValidLetter(rng Source, p1, p2 rune, generated int) rune {
	for i := 0; i < maxSampleAttempts; i++ {
		candidate := sampleWeighted(rng)
		if isValidLetter(candidate, p1, p2, generated) {
			return candidate
		}
	}
	if generated >= 2 && !IsVowel(p1) && !IsVowel(p2) {
		return vowelList[rng.Intn(len(vowelList))]
	}
	for {
		c := consonantList[rng.Intn(len(consonantList))]
		if c != p1 {
			return c
		}
	}
}

// GenerateLetterSequence is the stateless batch variant: it produces count
// tiles with sequential ids, applying the same adjacency constraints using
// only the trailing state of the sequence built so far.
func GenerateLetterSequence(count int) []LetterTile {
	return GenerateLetterSequenceWithSource(count, frand.New())
}

func GenerateLetterSequenceWithSource(count int, rng Source) []LetterTile {
	tiles := make([]LetterTile, 0, count)
	seq := make([]rune, 0, count)
	for i := 0; i < count; i++ {
		var p1, p2 rune
		if n := len(seq); n >= 2 {
			p1, p2 = seq[n-1], seq[n-2]
		} else if n == 1 {
			p1 = seq[0]
		}
		var letter rune
		found := false
		for attempt := 0; attempt < maxSampleAttempts; attempt++ {
			candidate := sampleWeighted(rng)
			if isValidLetter(candidate, p1, p2, len(seq)) {
				letter = candidate
				found = true
				break
			}
		}
		if !found {
			if trailingConsonantRun(seq) >= 2 {
				letter = vowelList[rng.Intn(len(vowelList))]
			} else {
				for {
					c := consonantList[rng.Intn(len(consonantList))]
					if c != p1 {
						letter = c
						break
					}
				}
			}
		}
		seq = append(seq, letter)
		tiles = append(tiles, LetterTile{
			Char: letter,
			ID:   fmt.Sprintf("tile-%d", i),
			Type: TileQueued,
		})
	}
	return tiles
}

// trailingConsonantRun counts consecutive consonants at the end of the
// sequence, scanning backward until a vowel or the start.
func trailingConsonantRun(seq []rune) int {
	run := 0
	for i := len(seq) - 1; i >= 0; i-- {
		if IsVowel(seq[i]) {
			break
		}
		run++
	}
	return run
}
