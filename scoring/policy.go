// Package scoring defines the word-scoring contract. The concrete formula is
// a pluggable policy: the engine only requires that a policy be
// deterministic and return a positive score for any word of length >= 3.
package scoring

// A Policy maps a word to points.
type Policy interface {
	WordScore(word string) int
}

// PolicyFunc adapts a plain function to the Policy interface.
type PolicyFunc func(word string) int

func (f PolicyFunc) WordScore(word string) int { return f(word) }

// LengthQuadratic is the default policy used by the console: longer words
// are worth disproportionately more. It is a stand-in, not a balanced
// formula; deployments inject their own.
var LengthQuadratic = PolicyFunc(func(word string) int {
	n := len(word)
	if n < 1 {
		return 1
	}
	return n * n
})
