package lettergen

import "sync"

// English letter frequencies (relative weights, per ~120k-word corpora).
// The distribution is fixed; there is no per-language loading here the way a
// crossword engine would do it, since the drop game is English-only.
type letterWeight struct {
	letter rune
	weight float64
}

var letterWeights = []letterWeight{
	{'E', 12.70}, {'T', 9.06}, {'A', 8.17}, {'O', 7.51}, {'I', 6.97},
	{'N', 6.75}, {'S', 6.33}, {'H', 6.09}, {'R', 5.99}, {'D', 4.25},
	{'L', 4.03}, {'C', 2.78}, {'U', 2.76}, {'M', 2.41}, {'W', 2.36},
	{'F', 2.23}, {'G', 2.02}, {'Y', 1.97}, {'P', 1.93}, {'B', 1.29},
	{'V', 0.98}, {'K', 0.77}, {'J', 0.15}, {'X', 0.15}, {'Q', 0.10},
	{'Z', 0.07},
}

var vowels = map[rune]bool{'A': true, 'E': true, 'I': true, 'O': true, 'U': true}

var vowelList = []rune{'A', 'E', 'I', 'O', 'U'}

var consonantList = []rune{
	'B', 'C', 'D', 'F', 'G', 'H', 'J', 'K', 'L', 'M', 'N', 'P', 'Q', 'R',
	'S', 'T', 'V', 'W', 'X', 'Y', 'Z',
}

type cumulativeTable struct {
	letters []rune
	bounds  []float64
	total   float64
}

// The cumulative table is computed once from the static weights and shared
// process-wide; it is never mutated after initialization.
var cumulative = sync.OnceValue(func() *cumulativeTable {
	t := &cumulativeTable{
		letters: make([]rune, len(letterWeights)),
		bounds:  make([]float64, len(letterWeights)),
	}
	running := 0.0
	for i, lw := range letterWeights {
		running += lw.weight
		t.letters[i] = lw.letter
		t.bounds[i] = running
	}
	t.total = running
	return t
})

// IsVowel reports whether the letter is one of AEIOU.
func IsVowel(letter rune) bool {
	return vowels[letter]
}

// sampleWeighted draws one letter from the frequency distribution. The draw
// is a uniform value in [0, totalWeight); we return the first letter whose
// cumulative weight reaches it. On floating-point edge cases where no bound
// is reached, return 'E'.
func sampleWeighted(rng Source) rune {
	t := cumulative()
	draw := rng.Float64() * t.total
	for i, bound := range t.bounds {
		if bound >= draw {
			return t.letters[i]
		}
	}
	return 'E'
}
